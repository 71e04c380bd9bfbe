package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents an item available at checkout.
// CategoryID is a raw reference and is the source of truth for rule
// lookups; a product with no category earns no points.
type Product struct {
	ID         primitive.ObjectID    `bson:"_id,omitempty" json:"id,omitempty"`
	Name       string                `bson:"name,omitempty" json:"name,omitempty"`
	Price      *primitive.Decimal128 `bson:"price,omitempty" json:"price,omitempty"`
	CategoryID primitive.ObjectID    `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	ImageURL   string                `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}
