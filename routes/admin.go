package routes

import (
	carControllers "github.com/driveline-rentals/carrental-api/controllers/car"
	customerControllers "github.com/driveline-rentals/carrental-api/controllers/customer"
	orderControllers "github.com/driveline-rentals/carrental-api/controllers/order"
	"github.com/driveline-rentals/carrental-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API-key
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Customer Management ───────────
		adminGroup.GET("/customers", customerControllers.GetAllCustomers(db))

		// ─────────── Fleet Management ───────────
		carAdmin := adminGroup.Group("/cars")
		{
			carAdmin.POST("", carControllers.CreateCar(db))
			carAdmin.PUT("/:id", carControllers.UpdateCar(db))
			carAdmin.DELETE("/:id", carControllers.DeleteCar(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}
	}
}
