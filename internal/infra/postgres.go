package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"flock/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := AutoMigrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}

// AutoMigrate keeps the schema in step with the models; tests run it
// against sqlite.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Member{},
		&db_models.Camp{},
		&db_models.Event{},
		&db_models.AttendanceRecord{},
		&db_models.User{},
		&db_models.LeaderCampus{},
		&db_models.MemberAssignment{},
		&db_models.FollowUp{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
