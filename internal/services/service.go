package services

import (
	"context"
	"errors"
	"time"

	"github.com/quickmart/loyalty-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel errors surfaced to callers. Per-product problems during a
// checkout are never errors; they land in the CheckoutResult buckets.
var (
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrLoyaltyAccountNotFound = errors.New("loyalty account not found")
	ErrProductNotFound        = errors.New("product not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
)

// LoyaltyService defines the interface for checkout settlement
type LoyaltyService interface {
	// Checkout settles a basket of product ids against the customer's
	// loyalty account: it computes points per product under the rules
	// active on txDate, records a transaction per earning product, and
	// applies the accumulated total to the balance in a single update.
	// The transaction date is an explicit input so settlement stays
	// deterministic; the HTTP layer passes the current time.
	Checkout(ctx context.Context, customerID primitive.ObjectID, productIDs []string, txDate time.Time) (*models.CheckoutResult, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	// CustomerLogin issues a token for a storefront customer
	CustomerLogin(ctx context.Context, customerID primitive.ObjectID) (string, error)
	// AdminRegister creates a back-office account with a hashed password
	AdminRegister(ctx context.Context, req *models.RegisterRequest) (*models.AdminUser, error)
	// AdminLogin verifies credentials and issues a token with the admin role
	AdminLogin(ctx context.Context, req *models.LoginRequest) (string, error)
}

// CustomerService defines the interface for customer-facing reads and
// customer provisioning
type CustomerService interface {
	GetCustomerByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error)
	GetAccountByCustomerID(ctx context.Context, customerID primitive.ObjectID) (*models.LoyaltyAccount, error)
	GetTransactionsByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.PointTransaction, error)
	CreateCustomer(ctx context.Context, customer *models.Customer, openingPoints int) (*models.Customer, error)
}

// CatalogService defines the interface for product and category
// provisioning and storefront reads
type CatalogService interface {
	GetAllProducts(ctx context.Context) ([]*models.Product, error)
	GetProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	GetAllCategories(ctx context.Context) ([]*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	AddEarningRule(ctx context.Context, categoryID primitive.ObjectID, rule models.PointEarningRule) error
}
