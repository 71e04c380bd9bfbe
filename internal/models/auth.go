package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerLoginRequest defines the structure for customer login requests.
// Customers authenticate by id only; this mirrors the storefront flow
// where the id comes from the loyalty card.
type CustomerLoginRequest struct {
	CustomerID string `json:"customerId" binding:"required"`
}

// LoginRequest defines the structure for admin login requests
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest defines the structure for admin registration requests
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	Token string `json:"token"`
}

// AdminUser represents a back-office account used for provisioning
// categories, rules and products. Stored in the "admin_users"
// collection, separate from customers.
type AdminUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"` // bcrypt hash, omitted from JSON responses
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
