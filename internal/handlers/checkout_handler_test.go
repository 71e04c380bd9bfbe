package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quickmart/loyalty-backend/internal/models"
	"github.com/quickmart/loyalty-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockLoyaltyService struct {
	result *models.CheckoutResult
	err    error

	calls         int
	gotCustomerID primitive.ObjectID
	gotProductIDs []string
}

func (m *mockLoyaltyService) Checkout(_ context.Context, customerID primitive.ObjectID, productIDs []string, _ time.Time) (*models.CheckoutResult, error) {
	m.calls++
	m.gotCustomerID = customerID
	m.gotProductIDs = productIDs
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// newCheckoutRouter wires the handler behind a stub auth middleware
// that injects the given subject claim.
func newCheckoutRouter(svc services.LoyaltyService, subjectID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/checkout", func(c *gin.Context) {
		if subjectID != "" {
			c.Set("subjectID", subjectID)
		}
		c.Next()
	}, NewCheckoutHandler(svc).Checkout)
	return router
}

func postCheckout(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCheckoutHandler_Success(t *testing.T) {
	customerID := primitive.NewObjectID()
	productID := primitive.NewObjectID().Hex()
	svc := &mockLoyaltyService{result: &models.CheckoutResult{
		TotalPointsEarned:        2400,
		InvalidProducts:          []string{},
		ProductsMissingCategory:  []string{},
		PointEarningRulesMissing: []string{},
	}}
	router := newCheckoutRouter(svc, customerID.Hex())

	w := postCheckout(t, router, models.CheckoutRequest{ProductIDs: []string{productID}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, customerID, svc.gotCustomerID)
	assert.Equal(t, []string{productID}, svc.gotProductIDs)

	var result models.CheckoutResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2400, result.TotalPointsEarned)
	assert.Empty(t, result.InvalidProducts)
}

func TestCheckoutHandler_CustomerNotFound(t *testing.T) {
	svc := &mockLoyaltyService{err: services.ErrCustomerNotFound}
	router := newCheckoutRouter(svc, primitive.NewObjectID().Hex())

	w := postCheckout(t, router, models.CheckoutRequest{ProductIDs: []string{"x"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Customer not found")
}

func TestCheckoutHandler_AccountNotFound(t *testing.T) {
	svc := &mockLoyaltyService{err: services.ErrLoyaltyAccountNotFound}
	router := newCheckoutRouter(svc, primitive.NewObjectID().Hex())

	w := postCheckout(t, router, models.CheckoutRequest{ProductIDs: []string{"x"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Loyalty account not found")
}

func TestCheckoutHandler_NoToken(t *testing.T) {
	svc := &mockLoyaltyService{}
	router := newCheckoutRouter(svc, "")

	w := postCheckout(t, router, models.CheckoutRequest{ProductIDs: []string{"x"}})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, svc.calls)
}

func TestCheckoutHandler_MissingProductIDs(t *testing.T) {
	svc := &mockLoyaltyService{}
	router := newCheckoutRouter(svc, primitive.NewObjectID().Hex())

	w := postCheckout(t, router, gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}
