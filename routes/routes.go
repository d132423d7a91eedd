package routes

import (
	"github.com/driveline-rentals/carrental-api/cart"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, Catalog,
// Customer, Admin and Payment route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	storage := cart.NewGormStorage(db)

	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ Public car catalog
	SetupCarRoutes(r, db)

	// 3️⃣ Customer routes (JWT-protected): profile, cart, orders, checkout
	SetupCustomerRoutes(r, db, storage)

	// 4️⃣ Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)

	// 5️⃣ Payment provider webhook
	SetupPaymentRoutes(r, db)
}
