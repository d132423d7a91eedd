package carControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/driveline-rentals/carrental-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCars returns the rentable fleet. Only available cars are listed unless
// ?include_unavailable=true (admin listings).
// Optional filters: category, min_price, max_price, search.
func GetCars(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Car{})

		if c.Query("include_unavailable") != "true" {
			query = query.Where("availability_status = ?", true)
		}

		if category := strings.ToLower(c.Query("category")); category != "" {
			query = query.Where("category = ?", category)
		}

		if minPriceStr := c.Query("min_price"); minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price_per_day >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price_per_day <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		if search := c.Query("search"); search != "" {
			query = query.Where("name ILIKE ?", "%"+search+"%")
		}

		var cars []models.Car
		if err := query.Order("price_per_day asc").Find(&cars).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching cars"})
			return
		}

		c.JSON(http.StatusOK, cars)
	}
}

// GetCarByID returns a single car.
// URL param: /cars/:id
func GetCarByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		if idParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Car ID is required"})
			return
		}

		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car ID"})
			return
		}

		var car models.Car
		if err := db.First(&car, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve car"})
			}
			return
		}
		c.JSON(http.StatusOK, car)
	}
}

// GetCarsByCategory returns the available cars of one rental category
// ("economy" or "luxury").
// URL param: /cars/category/:category
func GetCarsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := strings.ToLower(c.Param("category"))
		if category != string(models.CarCategoryEconomy) && category != string(models.CarCategoryLuxury) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}

		var cars []models.Car
		if err := db.
			Where("category = ? AND availability_status = ?", category, true).
			Order("price_per_day asc").
			Find(&cars).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching cars"})
			return
		}

		c.JSON(http.StatusOK, cars)
	}
}
