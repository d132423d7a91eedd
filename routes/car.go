package routes

import (
	carControllers "github.com/driveline-rentals/carrental-api/controllers/car"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCarRoutes registers the public “/cars/*” catalog endpoints.
func SetupCarRoutes(r *gin.Engine, db *gorm.DB) {
	cars := r.Group("/cars")
	{
		cars.GET("", carControllers.GetCars(db))                              // GET /cars
		cars.GET("/:id", carControllers.GetCarByID(db))                       // GET /cars/:id
		cars.GET("/category/:category", carControllers.GetCarsByCategory(db)) // GET /cars/category/economy
	}
}
