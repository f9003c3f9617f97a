package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/relaxing-koala/restaurant-api/config"
	"github.com/relaxing-koala/restaurant-api/models"
	"github.com/relaxing-koala/restaurant-api/router"
	"github.com/relaxing-koala/restaurant-api/services"
	"github.com/relaxing-koala/restaurant-api/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	// Outbox dispatcher: invoice emails go out of band so a slow mail
	// provider never blocks a payment request.
	dispatcher := services.NewMailDispatcher(db, services.NewMailerFromEnv())
	dispatcher.Start()
	defer dispatcher.Stop()

	r := router.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Reservation{},
		&models.Menu{},
		&models.MenuItem{},
		&models.MenuItemToMenu{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Feedback{},
		&models.EmailOutbox{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
