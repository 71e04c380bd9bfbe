package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quickmart/loyalty-backend/internal/models"
	"github.com/quickmart/loyalty-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogHandler handles product and category HTTP requests
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GetAllProducts handles GET /products
func (h *CatalogHandler) GetAllProducts(c *gin.Context) {
	products, err := h.catalogService.GetAllProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get products: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProductByID handles GET /products/:id
func (h *CatalogHandler) GetProductByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	product, err := h.catalogService.GetProductByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /products (admin provisioning)
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := &models.Product{Name: req.Name, ImageURL: req.ImageURL}

	if req.Price != "" {
		price, err := primitive.ParseDecimal128(req.Price)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price format"})
			return
		}
		product.Price = &price
	}

	if req.CategoryID != "" {
		categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID format"})
			return
		}
		product.CategoryID = categoryID
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), product)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetAllCategories handles GET /categories
func (h *CatalogHandler) GetAllCategories(c *gin.Context) {
	categories, err := h.catalogService.GetAllCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get categories: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /categories (admin provisioning)
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := &models.Category{Name: req.Name}
	category, err := h.catalogService.CreateCategory(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// AddEarningRule handles POST /categories/:id/rules (admin
// provisioning). Rules append in request order; that order decides
// ties between overlapping validity windows.
func (h *CatalogHandler) AddEarningRule(c *gin.Context) {
	categoryID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req models.AddRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule := models.PointEarningRule{PointsPerDollar: req.PointsPerDollar}

	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date format (YYYY-MM-DD)"})
			return
		}
		rule.StartDate = &start
	}

	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date format (YYYY-MM-DD)"})
			return
		}
		rule.EndDate = &end
	}

	if rule.StartDate != nil && rule.EndDate != nil && rule.EndDate.Before(*rule.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must not precede start date"})
		return
	}

	if err := h.catalogService.AddEarningRule(c.Request.Context(), categoryID, rule); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add rule: " + err.Error()})
		return
	}

	c.Status(http.StatusCreated)
}
