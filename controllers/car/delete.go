package carControllers

import (
	"net/http"

	"github.com/driveline-rentals/carrental-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteCar removes a car from the fleet (admin).
func DeleteCar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Car ID is required"})
			return
		}

		var car models.Car
		if err := db.First(&car, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
			return
		}

		if err := db.Delete(&car).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Car deleted"})
	}
}
