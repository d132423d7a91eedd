package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/driveline-rentals/carrental-api/models"
	"github.com/driveline-rentals/carrental-api/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Car{},
		&models.Cart{},
		&models.Order{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed the starter fleet on an empty database
	seedCars(db)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// seedCars inserts the default storefront fleet when the cars table is
// empty, so a fresh install has something to browse.
func seedCars(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Car{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	cars := []models.Car{
		{
			Name:               "Economy Hatchback",
			Category:           models.CarCategoryEconomy,
			Image:              "https://images.driveline-rentals.com/economy-hatchback.jpg",
			PricePerDay:        75,
			Seats:              5,
			Transmission:       "manual",
			AvailabilityStatus: true,
		},
		{
			Name:               "Luxury Sedan",
			Category:           models.CarCategoryLuxury,
			Image:              "https://images.driveline-rentals.com/luxury-sedan.jpg",
			PricePerDay:        150,
			Seats:              5,
			Transmission:       "automatic",
			AvailabilityStatus: true,
		},
	}
	if err := db.Create(&cars).Error; err != nil {
		log.Printf("❌ Failed to seed cars: %v", err)
		return
	}
	log.Printf("✅ Seeded %d cars", len(cars))
}
