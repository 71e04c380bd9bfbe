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

// CheckoutHandler handles checkout settlement HTTP requests
type CheckoutHandler struct {
	loyaltyService services.LoyaltyService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(loyaltyService services.LoyaltyService) *CheckoutHandler {
	return &CheckoutHandler{
		loyaltyService: loyaltyService,
	}
}

// Checkout handles POST /checkout. The customer id comes from the
// authenticated token, the transaction date is the server's current
// time; the settlement core itself takes both as explicit inputs.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	customerID, ok := customerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Customer not logged in"})
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.loyaltyService.Checkout(c.Request.Context(), customerID, req.ProductIDs, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		case errors.Is(err, services.ErrLoyaltyAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Loyalty account not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// customerIDFromContext reads the authenticated customer id set by the
// JWT middleware.
func customerIDFromContext(c *gin.Context) (primitive.ObjectID, bool) {
	subject, exists := c.Get("subjectID")
	if !exists {
		return primitive.ObjectID{}, false
	}
	hex, ok := subject.(string)
	if !ok {
		return primitive.ObjectID{}, false
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.ObjectID{}, false
	}
	return id, true
}
