package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/quickmart/loyalty-backend/internal/models"
	"github.com/quickmart/loyalty-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure LoyaltyAccountRepository implements the interface
var _ repositories.LoyaltyAccountRepository = (*LoyaltyAccountRepository)(nil)

// LoyaltyAccountRepository handles MongoDB operations for LoyaltyAccount
type LoyaltyAccountRepository struct {
	collection *mongo.Collection
}

// NewLoyaltyAccountRepository creates a new LoyaltyAccountRepository
func NewLoyaltyAccountRepository(db *mongo.Database) *LoyaltyAccountRepository {
	return &LoyaltyAccountRepository{
		collection: db.Collection("loyalty_accounts"),
	}
}

// Create inserts a new loyalty account
func (r *LoyaltyAccountRepository) Create(ctx context.Context, account *models.LoyaltyAccount) error {
	if account.ID.IsZero() {
		account.ID = primitive.NewObjectID()
	}
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, account)
	return err
}

// FindByID finds a loyalty account by ID
func (r *LoyaltyAccountRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.LoyaltyAccount, error) {
	var account models.LoyaltyAccount
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &account, nil
}

// FindByCustomerID finds the loyalty account owned by a customer
func (r *LoyaltyAccountRepository) FindByCustomerID(ctx context.Context, customerID primitive.ObjectID) (*models.LoyaltyAccount, error) {
	var account models.LoyaltyAccount
	filter := bson.M{"customerId": customerID}
	err := r.collection.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &account, nil
}

// IncrementPoints atomically adds points to an account balance. Using
// $inc rather than read-then-overwrite keeps concurrent settlements
// against the same account from losing updates. A zero delta is
// allowed: settlement issues exactly one balance update per checkout
// even when nothing was earned.
func (r *LoyaltyAccountRepository) IncrementPoints(ctx context.Context, accountID primitive.ObjectID, points int) error {
	if points < 0 {
		return errors.New("points to add must not be negative")
	}
	filter := bson.M{"_id": accountID}
	update := bson.M{
		"$inc": bson.M{"points": points},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
