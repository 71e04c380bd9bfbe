package mongodb

import (
	"context"
	"time"

	"github.com/quickmart/loyalty-backend/internal/models"
	"github.com/quickmart/loyalty-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure AdminUserRepository implements the interface
var _ repositories.AdminUserRepository = (*AdminUserRepository)(nil)

// AdminUserRepository handles MongoDB operations for AdminUser
type AdminUserRepository struct {
	collection *mongo.Collection
}

// NewAdminUserRepository creates a new AdminUserRepository
func NewAdminUserRepository(db *mongo.Database) *AdminUserRepository {
	return &AdminUserRepository{
		collection: db.Collection("admin_users"),
	}
}

// Create inserts a new admin user
func (r *AdminUserRepository) Create(ctx context.Context, adminUser *models.AdminUser) error {
	adminUser.ID = primitive.NewObjectID()
	adminUser.CreatedAt = time.Now()
	adminUser.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, adminUser)
	return err
}

// FindByEmail finds an admin user by email
func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var adminUser models.AdminUser
	filter := bson.M{"email": email}
	err := r.collection.FindOne(ctx, filter).Decode(&adminUser)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &adminUser, nil
}

// FindByID finds an admin user by ID
func (r *AdminUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error) {
	var adminUser models.AdminUser
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&adminUser)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &adminUser, nil
}
