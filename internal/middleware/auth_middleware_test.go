package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/quickmart/loyalty-backend/internal/config"
	"github.com/quickmart/loyalty-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
	}
}

func newProtectedRouter(cfg *config.Config, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chain := append([]gin.HandlerFunc{JWTAuthMiddleware(cfg)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		subject, _ := c.Get("subjectID")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"subject": subject, "role": role})
	})
	router.GET("/secure", chain...)
	return router
}

func get(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	cfg := testConfig()
	token, err := utils.GenerateJWT("abc123", "customer", cfg)
	require.NoError(t, err)

	w := get(newProtectedRouter(cfg), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc123")
	assert.Contains(t, w.Body.String(), "customer")
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	w := get(newProtectedRouter(testConfig()), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_WrongScheme(t *testing.T) {
	w := get(newProtectedRouter(testConfig()), "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_BadSignature(t *testing.T) {
	otherCfg := &config.Config{JWT: config.JWTConfig{Secret: "other-secret", ExpiresIn: 3600}}
	token, err := utils.GenerateJWT("abc123", "customer", otherCfg)
	require.NoError(t, err)

	w := get(newProtectedRouter(testConfig()), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	claims := jwt.MapClaims{
		"sub":  "abc123",
		"role": "customer",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	w := get(newProtectedRouter(cfg), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestRequireRole(t *testing.T) {
	cfg := testConfig()
	router := newProtectedRouter(cfg, RequireRole("admin"))

	customerToken, err := utils.GenerateJWT("abc123", "customer", cfg)
	require.NoError(t, err)
	adminToken, err := utils.GenerateJWT("def456", "admin", cfg)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, get(router, "Bearer "+customerToken).Code)
	assert.Equal(t, http.StatusOK, get(router, "Bearer "+adminToken).Code)
}
