package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/driveline-rentals/carrental-api/cart"
	"github.com/driveline-rentals/carrental-api/checkout"
	orderControllers "github.com/driveline-rentals/carrental-api/controllers/order"
	paymentControllers "github.com/driveline-rentals/carrental-api/controllers/payment"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// statusFor maps a checkout failure kind to an HTTP status. The response
// body carries only the generic category message.
func statusFor(err error) int {
	switch {
	case errors.Is(err, checkout.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, checkout.ErrIncompleteFields):
		return http.StatusBadRequest
	case errors.Is(err, checkout.ErrSessionCreationFailed), errors.Is(err, checkout.ErrRedirectFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// POST /customer/checkout
// Runs the full checkout flow for the caller's cart and returns the hosted
// payment page URL. The cart is not cleared here; the payment webhook clears
// it once the session is paid.
func CheckoutHandler(db *gorm.DB, storage cart.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user *checkout.UserRef
		if customerIDVal, exists := c.Get("customer_id"); exists {
			name, _ := c.Get("customer_name")
			nameStr, _ := name.(string)
			user = &checkout.UserRef{ID: customerIDVal.(uint), Name: nameStr}
		}

		var items []cart.LineItem
		if user != nil {
			store := cart.NewStore(user.ID, storage)
			store.Load()
			store.RecomputeAll()
			items = store.Items()

			if len(items) == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
				return
			}
		}

		orchestrator := checkout.NewOrchestrator(
			orderControllers.NewCreator(db),
			paymentControllers.NewSessionClient(userID(user)),
			paymentControllers.NewHostedRedirector(),
		)

		result := orchestrator.Checkout(c.Request.Context(), user, items)
		if result.Failed() {
			c.JSON(statusFor(result.Err), gin.H{"error": result.Message})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id":   result.SessionID,
			"checkout_url": result.RedirectURL,
		})
	}
}

func userID(user *checkout.UserRef) uint {
	if user == nil {
		return 0
	}
	return user.ID
}
