package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoyaltyAccount holds a customer's running point balance.
// The balance is only ever mutated by checkout settlement, through an
// atomic increment at the repository layer.
type LoyaltyAccount struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerID primitive.ObjectID `bson:"customerId" json:"customerId"`
	Points     int                `bson:"points" json:"points"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
