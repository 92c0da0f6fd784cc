package config

import (
	"log"
	"os"

	"foodly-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret []byte

func init() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	JWTSecret = []byte(GetEnv("JWT_SECRET", "foodly_super_secret_2024"))
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	path := GetEnv("DB_PATH", "foodly.db")

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.UserAddress{},
		&models.Category{},
		&models.MenuItem{},
		&models.MenuVariant{},
		&models.MenuAddon{},
		&models.DeliveryZone{},
		&models.RestaurantProfile{},
		&models.Setting{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}
