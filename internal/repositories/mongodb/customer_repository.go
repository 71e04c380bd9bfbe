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

// Compile-time check to ensure CustomerRepository implements the interface
var _ repositories.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository handles MongoDB operations for Customer
type CustomerRepository struct {
	collection *mongo.Collection
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{
		collection: db.Collection("customers"),
	}
}

// Create inserts a new customer
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if customer.ID.IsZero() {
		customer.ID = primitive.NewObjectID()
	}
	customer.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, customer)
	return err
}

// FindByID finds a customer by ID
func (r *CustomerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	var customer models.Customer
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&customer)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &customer, nil
}

// FindAll finds all customers
func (r *CustomerRepository) FindAll(ctx context.Context) ([]*models.Customer, error) {
	var customers []*models.Customer
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []*models.Customer{}
	}
	return customers, nil
}
