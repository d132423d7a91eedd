package routes

import (
	"github.com/driveline-rentals/carrental-api/cart"
	cartControllers "github.com/driveline-rentals/carrental-api/controllers/cart"
	checkoutControllers "github.com/driveline-rentals/carrental-api/controllers/checkout"
	customerControllers "github.com/driveline-rentals/carrental-api/controllers/customer"
	orderControllers "github.com/driveline-rentals/carrental-api/controllers/order"
	"github.com/driveline-rentals/carrental-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCustomerRoutes registers all “/customer/*” endpoints. Requires JWT
// middleware.
func SetupCustomerRoutes(r *gin.Engine, db *gorm.DB, storage cart.Storage) {
	customerGroup := r.Group("/customer")
	customerGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		customerGroup.GET("/", customerControllers.GetCustomer(db))    // GET /customer/
		customerGroup.PUT("/", customerControllers.UpdateCustomer(db)) // PUT /customer/

		// ──────────────── Rental Cart ────────────────
		cartGroup := customerGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(storage))                   // GET /customer/cart
			cartGroup.POST("/", cartControllers.AddItem(db, storage))              // POST /customer/cart
			cartGroup.PATCH("/:item_id", cartControllers.UpdateItemField(storage)) // PATCH /customer/cart/:item_id
			cartGroup.DELETE("/:item_id", cartControllers.RemoveItem(storage))     // DELETE /customer/cart/:item_id
			cartGroup.DELETE("/", cartControllers.ClearCart(storage))              // DELETE /customer/cart
		}

		// ──────────────── Orders ────────────────
		customerGroup.POST("/orders", orderControllers.CreateOrderHandler(db))      // POST /customer/orders
		customerGroup.GET("/orders", orderControllers.GetCustomerOrdersHandler(db)) // GET /customer/orders

		// ──────────────── Checkout ────────────────
		customerGroup.POST("/checkout", checkoutControllers.CheckoutHandler(db, storage)) // POST /customer/checkout
	}
}
