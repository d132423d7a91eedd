package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveline-rentals/carrental-api/cart"
)

// mockStorage implements cart.Storage for testing
type mockStorage struct {
	items []cart.LineItem
	saved []cart.LineItem
}

func (m *mockStorage) Load(customerID uint) ([]cart.LineItem, error) {
	return m.items, nil
}

func (m *mockStorage) Save(customerID uint, items []cart.LineItem) error {
	m.saved = append([]cart.LineItem(nil), items...)
	return nil
}

func setupRouter(storage cart.Storage, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if authed {
			c.Set("customer_id", uint(1))
			c.Set("customer_name", "Dana")
		}
	})
	r.GET("/customer/cart", GetCart(storage))
	r.POST("/customer/cart", AddItem(nil, storage))
	r.PATCH("/customer/cart/:item_id", UpdateItemField(storage))
	r.DELETE("/customer/cart/:item_id", RemoveItem(storage))
	r.DELETE("/customer/cart", ClearCart(storage))
	return r
}

func TestGetCart_RepairsStaleDerivedFields(t *testing.T) {
	storage := &mockStorage{items: []cart.LineItem{{
		ID:          "a",
		ProductName: "Economy Hatchback",
		PricePerDay: 75,
		PickupTime:  "2024-01-01T10:00",
		DropoffTime: "2024-01-03T10:00",
	}}}
	r := setupRouter(storage, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/customer/cart", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var items []cart.LineItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].RentalDays)
	assert.Equal(t, 150.0, items[0].TotalPrice)

	// The repaired list was written back
	require.Len(t, storage.saved, 1)
	assert.Equal(t, 2, storage.saved[0].RentalDays)
}

func TestGetCart_Unauthorized(t *testing.T) {
	r := setupRouter(&mockStorage{}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/customer/cart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddItem_WithoutCatalogLookup(t *testing.T) {
	storage := &mockStorage{}
	r := setupRouter(storage, true)

	body := `{"product_name":"Economy Hatchback","price_per_day":75,"pickup_time":"2024-01-01T10:00","dropoff_time":"2024-01-03T10:00"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/customer/cart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var item cart.LineItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, 2, item.RentalDays)
	assert.Equal(t, 150.0, item.TotalPrice)
	assert.Len(t, storage.saved, 1)
}

func TestAddItem_RequiresNameOrCar(t *testing.T) {
	r := setupRouter(&mockStorage{}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/customer/cart", strings.NewReader(`{"price_per_day":75}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateItemField(t *testing.T) {
	storage := &mockStorage{items: []cart.LineItem{{ID: "a", ProductName: "Economy Hatchback", PricePerDay: 75}}}
	r := setupRouter(storage, true)

	body := `{"field":"pickupLocation","value":"Airport"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/customer/cart/a", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, storage.saved, 1)
	assert.Equal(t, "Airport", storage.saved[0].PickupLocation)
}

func TestUpdateItemField_UnknownItem(t *testing.T) {
	r := setupRouter(&mockStorage{}, true)

	body := `{"field":"pickupLocation","value":"Airport"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/customer/cart/missing", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveItemAndClear(t *testing.T) {
	storage := &mockStorage{items: []cart.LineItem{{ID: "a"}, {ID: "b"}}}
	r := setupRouter(storage, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/customer/cart/a", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, storage.saved, 1)
	assert.Equal(t, "b", storage.saved[0].ID)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/customer/cart", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, storage.saved)
}
