package repositories

import (
	"context"

	"github.com/quickmart/loyalty-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error)
	FindAll(ctx context.Context) ([]*models.Customer, error)
}

// LoyaltyAccountRepository defines the interface for loyalty account
// operations. IncrementPoints is the only balance mutation: it adds the
// settlement delta atomically at the storage layer, so concurrent
// settlements against the same account cannot lose updates.
type LoyaltyAccountRepository interface {
	Create(ctx context.Context, account *models.LoyaltyAccount) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.LoyaltyAccount, error)
	FindByCustomerID(ctx context.Context, customerID primitive.ObjectID) (*models.LoyaltyAccount, error)
	IncrementPoints(ctx context.Context, accountID primitive.ObjectID, points int) error
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindAll(ctx context.Context) ([]*models.Product, error)
}

// CategoryRepository defines the interface for category data
// operations. Categories carry their earning rules embedded in
// insertion order; AddRule appends, preserving that order.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindAll(ctx context.Context) ([]*models.Category, error)
	AddRule(ctx context.Context, categoryID primitive.ObjectID, rule models.PointEarningRule) error
}

// PointTransactionRepository defines the interface for point
// transaction operations. Transactions are append-only.
type PointTransactionRepository interface {
	Create(ctx context.Context, transaction *models.PointTransaction) error
	FindByAccountID(ctx context.Context, accountID primitive.ObjectID) ([]*models.PointTransaction, error)
}

// AdminUserRepository defines the interface for admin user data operations
type AdminUserRepository interface {
	Create(ctx context.Context, adminUser *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
}
