package cartControllers

import (
	"net/http"

	"github.com/driveline-rentals/carrental-api/cart"
	"github.com/driveline-rentals/carrental-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddItemInput struct {
	CarID           uint    `json:"car_id"`
	ProductName     string  `json:"product_name"`
	Image           string  `json:"image"`
	PricePerDay     float64 `json:"price_per_day"`
	PickupLocation  string  `json:"pickup_location"`
	DropoffLocation string  `json:"dropoff_location"`
	PickupTime      string  `json:"pickup_time"`
	DropoffTime     string  `json:"dropoff_time"`
}

type UpdateItemInput struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// loadStore builds the request's cart store. Recomputing on load repairs
// derived fields persisted by an older build; RecomputeAll only writes when
// something actually changed.
func loadStore(c *gin.Context, storage cart.Storage) (*cart.Store, bool) {
	customerIDVal, exists := c.Get("customer_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	store := cart.NewStore(customerIDVal.(uint), storage)
	store.Load()
	store.RecomputeAll()
	return store, true
}

// GET /customer/cart
func GetCart(storage cart.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := loadStore(c, storage)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, store.Items())
	}
}

// POST /customer/cart
// Adds a line item. When car_id is given the name, image and rate come from
// the catalog so a stale product page cannot book at an old price.
func AddItem(db *gorm.DB, storage cart.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := loadStore(c, storage)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item := cart.LineItem{
			ProductName:     input.ProductName,
			Image:           input.Image,
			PricePerDay:     input.PricePerDay,
			PickupLocation:  input.PickupLocation,
			DropoffLocation: input.DropoffLocation,
			PickupTime:      input.PickupTime,
			DropoffTime:     input.DropoffTime,
		}

		if input.CarID != 0 {
			var car models.Car
			if err := db.First(&car, input.CarID).Error; err != nil {
				status := http.StatusInternalServerError
				errMsg := "Failed to validate car"
				if err == gorm.ErrRecordNotFound {
					status = http.StatusBadRequest
					errMsg = "Car does not exist"
				}
				c.JSON(status, gin.H{"error": errMsg})
				return
			}
			if !car.AvailabilityStatus {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Car is not available"})
				return
			}
			item.ProductName = car.Name
			item.Image = car.Image
			item.PricePerDay = car.PricePerDay
		}

		if item.ProductName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "car_id or product_name is required"})
			return
		}
		if item.PricePerDay < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price_per_day must be non-negative"})
			return
		}

		c.JSON(http.StatusCreated, store.Add(item))
	}
}

// PATCH /customer/cart/:item_id
// Changes one field on one line item; rental days and total are recomputed.
func UpdateItemField(storage cart.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := loadStore(c, storage)
		if !ok {
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !store.UpdateField(c.Param("item_id"), input.Field, input.Value) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item or field not found"})
			return
		}

		c.JSON(http.StatusOK, store.Items())
	}
}

// DELETE /customer/cart/:item_id
func RemoveItem(storage cart.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := loadStore(c, storage)
		if !ok {
			return
		}

		if !store.Remove(c.Param("item_id")) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /customer/cart
func ClearCart(storage cart.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := loadStore(c, storage)
		if !ok {
			return
		}

		store.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
