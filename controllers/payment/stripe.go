package paymentControllers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/driveline-rentals/carrental-api/checkout"
)

const defaultSessionsURL = "https://api.stripe.com/v1/checkout/sessions"
const defaultHostedPageURL = "https://checkout.stripe.com/pay"

// stripeSessionResponse represents the checkout-session response
type stripeSessionResponse struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// getStripeConfig reads the hosted-checkout configuration
func getStripeConfig() (secretKey, apiURL, successURL, cancelURL, currency string, err error) {
	secretKey = os.Getenv("STRIPE_SECRET_KEY")
	successURL = os.Getenv("STRIPE_SUCCESS_URL")
	cancelURL = os.Getenv("STRIPE_CANCEL_URL")

	apiURL = os.Getenv("STRIPE_API_URL")
	if apiURL == "" {
		apiURL = defaultSessionsURL
	}
	currency = os.Getenv("STRIPE_CURRENCY")
	if currency == "" {
		currency = "usd"
	}

	if secretKey == "" || successURL == "" || cancelURL == "" {
		return "", "", "", "", "", fmt.Errorf("stripe configuration missing")
	}
	return secretKey, apiURL, successURL, cancelURL, currency, nil
}

// SessionClient creates hosted checkout sessions. It implements
// checkout.SessionCreator; the customer id travels as the session's client
// reference so the webhook can tie the payment back to its orders.
type SessionClient struct {
	CustomerID uint
	HTTPClient *http.Client
}

func NewSessionClient(customerID uint) *SessionClient {
	return &SessionClient{
		CustomerID: customerID,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (sc *SessionClient) CreateSession(ctx context.Context, lines []checkout.PriceLine) (string, error) {
	secretKey, apiURL, successURL, cancelURL, currency, err := getStripeConfig()
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)
	form.Set("client_reference_id", strconv.FormatUint(uint64(sc.CustomerID), 10))
	for i, line := range lines {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", currency)
		form.Set(prefix+"[price_data][product_data][name]", line.Name)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(line.UnitAmount, 10))
		form.Set(prefix+"[quantity]", strconv.FormatInt(line.Quantity, 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(secretKey, "")

	resp, err := sc.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach stripe: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("stripe API error (%d): %s", resp.StatusCode, string(body))
	}

	var sessionResp stripeSessionResponse
	if err := json.Unmarshal(body, &sessionResp); err != nil {
		return "", fmt.Errorf("failed to parse stripe response: %v", err)
	}

	if sessionResp.Error != nil {
		return "", fmt.Errorf("stripe error: %s", sessionResp.Error.Message)
	}

	if sessionResp.ID == "" {
		return "", fmt.Errorf("stripe returned no session id")
	}

	return sessionResp.ID, nil
}

// HostedRedirector resolves a session id into the hosted payment page URL.
// It implements checkout.Redirector.
type HostedRedirector struct{}

func NewHostedRedirector() *HostedRedirector {
	return &HostedRedirector{}
}

func (hr *HostedRedirector) Redirect(sessionID string) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("missing payment session id")
	}

	base := os.Getenv("STRIPE_CHECKOUT_PAGE_URL")
	if base == "" {
		base = defaultHostedPageURL
	}
	return strings.TrimSuffix(base, "/") + "/" + sessionID, nil
}
