package main

import (
	"context"
	"log"

	"tripcatalog/internal/config"
	"tripcatalog/internal/database"
	"tripcatalog/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	if err := seed.Run(context.Background(), db); err != nil {
		log.Fatal("Seeding failed: ", err)
	}

	log.Println("Database seeding completed successfully")
}
