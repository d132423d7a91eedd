package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedRouter() (*gin.Engine, *uint) {
	gin.SetMode(gin.TestMode)
	var gotID uint
	r := gin.New()
	r.GET("/customer", ValidateToken, func(c *gin.Context) {
		id, _ := c.Get("customer_id")
		gotID = id.(uint)
		c.JSON(http.StatusOK, gin.H{"id": gotID})
	})
	return r, &gotID
}

func TestValidateToken_Valid(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, gotID := protectedRouter()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"customer_id": 42,
		"name":        "Dana",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/customer", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), *gotID)
}

func TestValidateToken_MissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, _ := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/customer", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, _ := protectedRouter()

	token := signToken(t, "other-secret", jwt.MapClaims{
		"customer_id": 42,
		"exp":         time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/customer", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, _ := protectedRouter()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"customer_id": 42,
		"exp":         time.Now().Add(-time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/customer", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
