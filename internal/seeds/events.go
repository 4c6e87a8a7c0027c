package seeds

import (
	"log"
	"time"

	"github.com/lib/pq"
	"github.com/turnstile-app/turnstile-backend/internal/database"
	"github.com/turnstile-app/turnstile-backend/internal/models"
	"github.com/turnstile-app/turnstile-backend/pkg/utils"
)

type eventSeed struct {
	Name      string
	VenueSlug string
	Sport     string
	Home      string
	Away      string
	DaysOut   int
	Tags      []string
}

var eventSeeds = []eventSeed{
	{"US Open Men's Final", "usta-billie-jean-king-national-tennis-center", "tennis",
		"", "", 7, []string{"grand_slam:us_open"}},
	{"Wimbledon Championships Day 1", "all-england-club", "tennis",
		"", "", 120, []string{"grand_slam:wimbledon"}},
	{"Yankees vs Red Sox", "yankee-stadium", "baseball",
		"Yankees", "Red Sox", 14, []string{"rivalry:yankees_red_sox"}},
	{"Cubs vs Cardinals", "wrigley-field", "baseball",
		"Cubs", "Cardinals", 21, nil},
}

// SeedEvents inserts a starter event calendar.
func SeedEvents() {
	log.Println("🌱 Seeding Events...")

	for _, s := range eventSeeds {
		slug := utils.GenerateSlug(s.Name)

		var existing models.Event
		if err := database.DB.Where("slug = ?", slug).First(&existing).Error; err == nil {
			continue
		}

		var venue models.Venue
		if err := database.DB.Where("slug = ?", s.VenueSlug).First(&venue).Error; err != nil {
			log.Printf("Event %s: venue %s not found, skipping", s.Name, s.VenueSlug)
			continue
		}

		event := models.Event{
			Name:     s.Name,
			Slug:     slug,
			Sport:    s.Sport,
			VenueID:  venue.ID,
			HomeTeam: s.Home,
			AwayTeam: s.Away,
			StartsAt: time.Now().AddDate(0, 0, s.DaysOut),
			Tags:     pq.StringArray(s.Tags),
		}
		if err := database.DB.Create(&event).Error; err != nil {
			log.Printf("Failed to seed event %s: %v", s.Name, err)
		}
	}
}
