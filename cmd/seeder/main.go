package main

import (
	"log"

	"github.com/turnstile-app/turnstile-backend/internal/config"
	"github.com/turnstile-app/turnstile-backend/internal/database"
	"github.com/turnstile-app/turnstile-backend/internal/models"
	"github.com/turnstile-app/turnstile-backend/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Venue{},
		&models.VenueVisit{},
		&models.Event{},
		&models.EventLog{},
		&models.List{},
		&models.ListItem{},
		&models.ListFollow{},
		&models.Badge{},
		&models.UserLink{},
	); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	// Order matters: lists and events resolve against the venue catalog.
	seeds.SeedVenues()
	seeds.SeedSystemLists()
	seeds.SeedEvents()

	log.Println("✅ Seeding complete")
}
