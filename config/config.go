package config

import (
	"log"
	"os"

	"restaurant-ordering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_ordering_super_secret_2024"))

// SMTP settings for the reservation mailer. Empty host disables sending
// (the outbox still drains, logging each skipped message).
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func LoadEnv() {
	_ = godotenv.Load()
}

func LoadSMTP() SMTPConfig {
	return SMTPConfig{
		Host: os.Getenv("SMTP_HOST"),
		Port: getEnv("SMTP_PORT", "587"),
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		From: getEnv("SMTP_FROM", "reservas@restaurant.local"),
	}
}

// UploadDir is where dish images land; served statically under /uploads
func UploadDir() string {
	return getEnv("UPLOAD_DIR", "uploads")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	dsn := getEnv("DB_PATH", "restaurant.db")
	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}

// Migrate runs the schema migration; split out so tests can run it
// against their own in-memory handles.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Dish{},
		&models.Ingredient{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
	)
}
