package mongodb

import (
	"context"

	"github.com/quickmart/loyalty-backend/internal/models"
	"github.com/quickmart/loyalty-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure ProductRepository implements the interface
var _ repositories.ProductRepository = (*ProductRepository)(nil)

// ProductRepository handles MongoDB operations for Product
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("products"),
	}
}

// Create inserts a new product
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// FindByID finds a product by ID
func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&product)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &product, nil
}

// FindAll finds all products
func (r *ProductRepository) FindAll(ctx context.Context) ([]*models.Product, error) {
	var products []*models.Product
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []*models.Product{}
	}
	return products, nil
}
