package routes

import (
	paymentControllers "github.com/driveline-rentals/carrental-api/controllers/payment"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB) {
	payment := r.Group("/payments")
	{
		// Webhook endpoint: the hosted payment page calls back here
		payment.POST("/webhook", paymentControllers.StripeWebhookHandler(db))
	}
}
