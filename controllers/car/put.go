package carControllers

import (
	"net/http"
	"strconv"

	"github.com/driveline-rentals/carrental-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateCarInput struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Image        *string  `json:"image"`
	PricePerDay  *float64 `json:"price_per_day"`
	Seats        *int     `json:"seats"`
	Transmission *string  `json:"transmission"`
	Available    *bool    `json:"available"`
}

// UpdateCar changes car fields; only the fields present in the body are
// touched (admin). Toggling availability hides or shows the car in the
// storefront catalog.
func UpdateCar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car ID"})
			return
		}

		var car models.Car
		if err := db.First(&car, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
			return
		}

		var input UpdateCarInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Category != nil {
			category, ok := mapCarCategory(*input.Category)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "category must be economy or luxury"})
				return
			}
			updates["category"] = category
		}
		if input.Image != nil {
			updates["image"] = *input.Image
		}
		if input.PricePerDay != nil {
			if *input.PricePerDay < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price_per_day must be non-negative"})
				return
			}
			updates["price_per_day"] = *input.PricePerDay
		}
		if input.Seats != nil {
			updates["seats"] = *input.Seats
		}
		if input.Transmission != nil {
			updates["transmission"] = *input.Transmission
		}
		if input.Available != nil {
			updates["availability_status"] = *input.Available
		}

		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
			return
		}

		if err := db.Model(&car).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car"})
			return
		}

		c.JSON(http.StatusOK, car)
	}
}
