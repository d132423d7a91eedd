package carControllers

import (
	"net/http"
	"strings"

	"github.com/driveline-rentals/carrental-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CarInput struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Image        string  `json:"image"`
	PricePerDay  float64 `json:"price_per_day" binding:"required,min=0"`
	Seats        int     `json:"seats"`
	Transmission string  `json:"transmission"`
	Available    *bool   `json:"available"`
}

func mapCarCategory(category string) (models.CarCategory, bool) {
	switch strings.ToLower(category) {
	case string(models.CarCategoryEconomy):
		return models.CarCategoryEconomy, true
	case string(models.CarCategoryLuxury):
		return models.CarCategoryLuxury, true
	default:
		return "", false
	}
}

// CreateCar adds a car to the fleet (admin).
func CreateCar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CarInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category, ok := mapCarCategory(input.Category)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category must be economy or luxury"})
			return
		}

		available := true
		if input.Available != nil {
			available = *input.Available
		}

		car := models.Car{
			Name:               input.Name,
			Category:           category,
			Image:              input.Image,
			PricePerDay:        input.PricePerDay,
			Seats:              input.Seats,
			Transmission:       input.Transmission,
			AvailabilityStatus: available,
		}

		if err := db.Create(&car).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create car"})
			return
		}

		c.JSON(http.StatusCreated, car)
	}
}
