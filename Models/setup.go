package Models

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDataBase() (*gorm.DB, error) {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	DbHost := os.Getenv("DB_HOST")
	DbUser := os.Getenv("DB_USER")
	DbPassword := os.Getenv("DB_PASSWORD")
	DbName := os.Getenv("DB_NAME")
	DbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", DbHost, DbUser, DbPassword, DbName, DbPort)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connection error: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	// First migrate models with no dependencies
	if err := db.AutoMigrate(&Diagnosis{}, &Schedule{}, &Procedure{}); err != nil {
		return err
	}

	// Then migrate models that depend on the above
	if err := db.AutoMigrate(&Therapist{}, &Patient{}, &MedicalRecord{}); err != nil {
		return err
	}

	// Finally migrate models that depend on multiple other models
	return db.AutoMigrate(&Session{}, &Invoice{}, &Payment{})
}
