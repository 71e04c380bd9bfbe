package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickmart/loyalty-backend/internal/models"
	"github.com/quickmart/loyalty-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure CatalogServiceImpl implements CatalogService
var _ CatalogService = (*CatalogServiceImpl)(nil)

type CatalogServiceImpl struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

func NewCatalogService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// GetAllProducts retrieves the storefront product listing
func (s *CatalogServiceImpl) GetAllProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProductByID retrieves a product
func (s *CatalogServiceImpl) GetProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return product, nil
}

// CreateProduct provisions a product. A product referencing a category
// must reference one that exists; a product with no category is
// allowed and simply earns no points.
func (s *CatalogServiceImpl) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if !product.CategoryID.IsZero() {
		if _, err := s.categoryRepo.FindByID(ctx, product.CategoryID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrCategoryNotFound
			}
			return nil, fmt.Errorf("failed to retrieve category: %w", err)
		}
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	slog.Info("Product created", "productId", product.ID.Hex(), "name", product.Name)
	return product, nil
}

// GetAllCategories retrieves all categories with their earning rules
func (s *CatalogServiceImpl) GetAllCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory provisions a category
func (s *CatalogServiceImpl) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	slog.Info("Category created", "categoryId", category.ID.Hex(), "name", category.Name)
	return category, nil
}

// AddEarningRule appends an earning rule to a category. Later rules
// only apply on dates the earlier rules don't cover.
func (s *CatalogServiceImpl) AddEarningRule(ctx context.Context, categoryID primitive.ObjectID, rule models.PointEarningRule) error {
	if err := s.categoryRepo.AddRule(ctx, categoryID, rule); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to add earning rule: %w", err)
	}

	slog.Info("Earning rule added", "categoryId", categoryID.Hex())
	return nil
}
