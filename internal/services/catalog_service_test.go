package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quickmart/loyalty-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newCatalogFixture() (*CatalogServiceImpl, *mockProductRepo, *mockCategoryRepo) {
	products := &mockProductRepo{products: map[primitive.ObjectID]*models.Product{}}
	categories := &mockCategoryRepo{categories: map[primitive.ObjectID]*models.Category{}}
	return NewCatalogService(products, categories), products, categories
}

// ─── Provisioning ───

func TestCatalog_ProvisionCategoryWithRules(t *testing.T) {
	service, _, categories := newCatalogFixture()

	category, err := service.CreateCategory(context.Background(), &models.Category{Name: "Books"})
	require.NoError(t, err)
	assert.False(t, category.ID.IsZero())

	first := models.PointEarningRule{
		PointsPerDollar: intPtr(1),
		StartDate:       datePtr(2024, time.January, 1),
		EndDate:         datePtr(2024, time.June, 30),
	}
	second := models.PointEarningRule{
		PointsPerDollar: intPtr(3),
		StartDate:       datePtr(2024, time.January, 1),
		EndDate:         datePtr(2024, time.December, 31),
	}
	require.NoError(t, service.AddEarningRule(context.Background(), category.ID, first))
	require.NoError(t, service.AddEarningRule(context.Background(), category.ID, second))

	stored := categories.categories[category.ID]
	require.Len(t, stored.Rules, 2)
	// Rules keep append order; the resolver ties on it.
	assert.Equal(t, 1, *stored.Rules[0].PointsPerDollar)
	assert.Equal(t, 3, *stored.Rules[1].PointsPerDollar)
	assert.False(t, stored.Rules[0].ID.IsZero())
}

func TestCatalog_AddRuleToUnknownCategory(t *testing.T) {
	service, _, _ := newCatalogFixture()

	err := service.AddEarningRule(context.Background(), primitive.NewObjectID(), models.PointEarningRule{
		PointsPerDollar: intPtr(2),
	})

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCatalog_CreateProductRequiresExistingCategory(t *testing.T) {
	service, products, _ := newCatalogFixture()

	_, err := service.CreateProduct(context.Background(), &models.Product{
		Name:       "Orphan",
		Price:      mustDecimal(t, "9.99"),
		CategoryID: primitive.NewObjectID(),
	})

	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.Empty(t, products.products)
}

func TestCatalog_CreateProductWithoutCategory(t *testing.T) {
	service, products, _ := newCatalogFixture()

	product, err := service.CreateProduct(context.Background(), &models.Product{
		Name:  "Gift Card",
		Price: mustDecimal(t, "25.00"),
	})

	require.NoError(t, err)
	assert.False(t, product.ID.IsZero())
	assert.Contains(t, products.products, product.ID)
}

func TestCatalog_CategoryLookupFaultIsNotNotFound(t *testing.T) {
	service, _, categories := newCatalogFixture()
	categories.findErr = errors.New("connection reset")

	_, err := service.CreateProduct(context.Background(), &models.Product{
		Name:       "Laptop",
		CategoryID: primitive.NewObjectID(),
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCategoryNotFound)
}

func TestCatalog_GetProductByIDNotFound(t *testing.T) {
	service, _, _ := newCatalogFixture()

	_, err := service.GetProductByID(context.Background(), primitive.NewObjectID())

	assert.ErrorIs(t, err, ErrProductNotFound)
}

// ─── Round trip ───

// A catalog provisioned through the service earns points at checkout
// without any direct repository writes.
func TestCatalog_ProvisionedCatalogEarnsAtCheckout(t *testing.T) {
	f := newSettlementFixture()
	catalog := NewCatalogService(f.products, f.categories)

	books, err := catalog.CreateCategory(context.Background(), &models.Category{Name: "Books"})
	require.NoError(t, err)
	require.NoError(t, catalog.AddEarningRule(context.Background(), books.ID, models.PointEarningRule{
		PointsPerDollar: intPtr(1),
		StartDate:       datePtr(2024, time.January, 1),
		EndDate:         datePtr(2024, time.December, 31),
	}))
	book, err := catalog.CreateProduct(context.Background(), &models.Product{
		Name:       "Science Fiction Book",
		Price:      mustDecimal(t, "15.99"),
		CategoryID: books.ID,
	})
	require.NoError(t, err)

	result, err := f.service.Checkout(context.Background(),
		f.customerID, []string{book.ID.Hex()}, checkoutDate)
	require.NoError(t, err)

	assert.Equal(t, 15, result.TotalPointsEarned)
	assert.Empty(t, result.InvalidProducts)
	require.Len(t, f.transactions.created, 1)
}
