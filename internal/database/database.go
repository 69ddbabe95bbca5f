package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" driver

	"tripcatalog/internal/domain"
)

// Connect opens PostgreSQL for postgres:// DSNs and falls back to the pure-Go
// sqlite driver for everything else (local files and :memory: test databases).
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite database:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate brings the schema up to date for the reference catalog plus the
// itinerary aggregate (including the daily_plan_activity join table).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Location{},
		&domain.Hotel{},
		&domain.Activity{},
		&domain.Transfer{},
		&domain.Itinerary{},
		&domain.DailyPlan{},
	)
}
