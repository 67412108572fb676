package Models

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	// .env is optional; deployments may inject real env vars instead
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file loaded:", err)
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}

	connection, err := gorm.Open(sqlite.Open(dbPath))
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	DB = connection

	// 1. Base tables with no dependencies
	DB.AutoMigrate(
		&User{},
		&Owner{},
	)

	// 2. Tables depending on owners
	DB.AutoMigrate(&Property{})

	// 3. Tables depending on owners and properties
	DB.AutoMigrate(
		&MaintenanceTask{},
		&Booking{},
	)
}
