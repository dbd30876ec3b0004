package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kulupnet/kulup-server/models"
)

var DB *gorm.DB

// LoadEnv .env varsa yükler; production'da dosya olmaması hata değildir.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment")
	}
}

// ConnectDB PostgreSQL bağlantısını kurar, tabloları migrate eder ve izin
// matrisini seed eder.
func ConnectDB() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Europe/Istanbul",
		host, user, password, dbName, port)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Permission{},
		&models.Event{},
		&models.News{},
		&models.Product{},
		&models.Internship{},
		&models.FormField{},
		&models.FormResponse{},
		&models.ExportJob{},
		&models.ActivityLog{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedPermissions(db)

	DB = db
	log.Println("Connected to PostgreSQL & migrated successfully")
}

// seedPermissions eksik rol -> izin satırlarını ekler; var olanlara dokunmaz.
func seedPermissions(db *gorm.DB) {
	for _, p := range models.SeedPermissions() {
		var count int64
		db.Model(&models.Permission{}).
			Where("role = ? AND permission = ?", p.Role, p.Permission).
			Count(&count)
		if count == 0 {
			if err := db.Create(&p).Error; err != nil {
				log.Printf("permission seed failed for %s/%s: %v", p.Role, p.Permission, err)
			}
		}
	}
}
