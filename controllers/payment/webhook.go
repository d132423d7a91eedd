package paymentControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/driveline-rentals/carrental-api/cart"
	"github.com/driveline-rentals/carrental-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// stripeWebhookEvent is the slice of the event payload we act on.
type stripeWebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID                string `json:"id"`
			ClientReferenceID string `json:"client_reference_id"`
			PaymentStatus     string `json:"payment_status"`
		} `json:"object"`
	} `json:"data"`
}

// StripeWebhookHandler confirms a customer's pending orders once the hosted
// payment page reports the session paid, and clears their cart. The cart is
// left intact at checkout time; this callback is what empties it.
func StripeWebhookHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event stripeWebhookEvent
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse event"})
			return
		}

		if event.Type != "checkout.session.completed" {
			c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
			return
		}

		log.Printf("payment: checkout session %s completed, payment_status=%s",
			event.Data.Object.ID, event.Data.Object.PaymentStatus)

		if event.Data.Object.PaymentStatus != "paid" {
			c.JSON(http.StatusOK, gin.H{"message": "Payment not successful"})
			return
		}

		customerID, err := strconv.ParseUint(event.Data.Object.ClientReferenceID, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing client_reference_id"})
			return
		}

		if err := db.Model(&models.Order{}).
			Where("customer_id = ? AND status = ? AND payment_status = ?",
				uint(customerID), models.OrderStatusPending, models.PaymentStatusPending).
			Updates(map[string]interface{}{
				"status":         models.OrderStatusConfirmed,
				"payment_status": models.PaymentStatusPaid,
			}).Error; err != nil {
			log.Printf("payment: failed to confirm orders for customer %d: %v", customerID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm orders"})
			return
		}

		if err := cart.NewGormStorage(db).Save(uint(customerID), nil); err != nil {
			log.Printf("payment: failed to clear cart for customer %d: %v", customerID, err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Orders confirmed"})
	}
}
