package mongodb

import (
	"context"

	"github.com/quickmart/loyalty-backend/internal/models"
	"github.com/quickmart/loyalty-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure CategoryRepository implements the interface
var _ repositories.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository handles MongoDB operations for Category. Earning
// rules live embedded in the category document so a single read returns
// the category with its rules in insertion order.
type CategoryRepository struct {
	collection *mongo.Collection
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{
		collection: db.Collection("categories"),
	}
}

// Create inserts a new category
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	if category.Rules == nil {
		category.Rules = []models.PointEarningRule{}
	}
	_, err := r.collection.InsertOne(ctx, category)
	return err
}

// FindByID finds a category, with its embedded rules, by ID
func (r *CategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category models.Category
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&category)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &category, nil
}

// FindAll finds all categories
func (r *CategoryRepository) FindAll(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []*models.Category{}
	}
	return categories, nil
}

// AddRule appends an earning rule to a category. $push preserves
// insertion order, which is what the rule resolver ties on.
func (r *CategoryRepository) AddRule(ctx context.Context, categoryID primitive.ObjectID, rule models.PointEarningRule) error {
	if rule.ID.IsZero() {
		rule.ID = primitive.NewObjectID()
	}
	filter := bson.M{"_id": categoryID}
	update := bson.M{"$push": bson.M{"rules": rule}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
