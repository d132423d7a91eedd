package paymentControllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveline-rentals/carrental-api/checkout"
)

func setStripeEnv(t *testing.T, apiURL string) {
	t.Helper()
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_API_URL", apiURL)
	t.Setenv("STRIPE_SUCCESS_URL", "https://shop.example/checkout-success")
	t.Setenv("STRIPE_CANCEL_URL", "https://shop.example/cart")
}

func TestCreateSession(t *testing.T) {
	var gotForm map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "sk_test_123", user)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs_test_1","url":"https://checkout.example/c/cs_test_1"}`))
	}))
	defer server.Close()
	setStripeEnv(t, server.URL)

	client := NewSessionClient(7)
	sessionID, err := client.CreateSession(context.Background(), []checkout.PriceLine{
		{Name: "Economy Hatchback", UnitAmount: 7500, Quantity: 2},
		{Name: "Luxury Sedan", UnitAmount: 15000, Quantity: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", sessionID)

	assert.Equal(t, "payment", gotForm["mode"][0])
	assert.Equal(t, "7", gotForm["client_reference_id"][0])
	assert.Equal(t, "Economy Hatchback", gotForm["line_items[0][price_data][product_data][name]"][0])
	assert.Equal(t, "7500", gotForm["line_items[0][price_data][unit_amount]"][0])
	assert.Equal(t, "2", gotForm["line_items[0][quantity]"][0])
	assert.Equal(t, "15000", gotForm["line_items[1][price_data][unit_amount]"][0])
	assert.Equal(t, "1", gotForm["line_items[1][quantity]"][0])
}

func TestCreateSession_NoSessionID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()
	setStripeEnv(t, server.URL)

	_, err := NewSessionClient(7).CreateSession(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no session id")
}

func TestCreateSession_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"type":"invalid_request_error","message":"bad key"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()
	setStripeEnv(t, server.URL)

	_, err := NewSessionClient(7).CreateSession(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stripe API error (401)")
}

func TestCreateSession_MissingConfig(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")
	t.Setenv("STRIPE_SUCCESS_URL", "")
	t.Setenv("STRIPE_CANCEL_URL", "")

	_, err := NewSessionClient(7).CreateSession(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration missing")
}

func TestHostedRedirector(t *testing.T) {
	t.Setenv("STRIPE_CHECKOUT_PAGE_URL", "")

	url, err := NewHostedRedirector().Redirect("cs_test_1")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_1", url)

	_, err = NewHostedRedirector().Redirect("")
	require.Error(t, err)
}
