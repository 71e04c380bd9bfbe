package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickmart/loyalty-backend/internal/models"
	"github.com/quickmart/loyalty-backend/internal/services"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService services.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// GetMe handles GET /customers/me. Returns the authenticated customer
// together with their loyalty account.
func (h *CustomerHandler) GetMe(c *gin.Context) {
	customerID, ok := customerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Customer not logged in"})
		return
	}

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get customer: " + err.Error()})
		return
	}

	account, err := h.customerService.GetAccountByCustomerID(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, services.ErrLoyaltyAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Loyalty account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get loyalty account: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": customer, "account": account})
}

// GetMyTransactions handles GET /customers/me/transactions
func (h *CustomerHandler) GetMyTransactions(c *gin.Context) {
	customerID, ok := customerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Customer not logged in"})
		return
	}

	transactions, err := h.customerService.GetTransactionsByCustomerID(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, services.ErrLoyaltyAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Loyalty account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transactions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// CreateCustomer handles POST /customers (admin provisioning). The
// customer is created together with their loyalty account.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req models.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := &models.Customer{Name: req.Name, Email: req.Email}
	customer, err := h.customerService.CreateCustomer(c.Request.Context(), customer, req.OpeningPoints)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, customer)
}
