package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PointTransaction records points awarded for a single product at
// checkout. Transactions are append-only; they are never updated or
// deleted once written.
type PointTransaction struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AccountID       primitive.ObjectID `bson:"accountId" json:"accountId"`
	ProductID       primitive.ObjectID `bson:"productId" json:"productId"`
	PointsEarned    int                `bson:"pointsEarned" json:"pointsEarned"`
	TransactionDate time.Time          `bson:"transactionDate" json:"transactionDate"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
