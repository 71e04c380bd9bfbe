package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickmart/loyalty-backend/internal/models"
	"github.com/quickmart/loyalty-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHandler handles authentication related HTTP requests
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// CustomerLogin handles POST /auth/login. Customers present their
// loyalty card id and receive a bearer token for the storefront.
func (h *AuthHandler) CustomerLogin(c *gin.Context) {
	var req models.CustomerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing customer ID"})
		return
	}

	customerID, err := primitive.ObjectIDFromHex(req.CustomerID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid customer ID"})
		return
	}

	token, err := h.authService.CustomerLogin(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid customer ID"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token})
}

// AdminRegister handles POST /auth/admin/register
func (h *AuthHandler) AdminRegister(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminUser, err := h.authService.AdminRegister(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyRegistered) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, adminUser)
}

// AdminLogin handles POST /auth/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.AdminLogin(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token})
}
