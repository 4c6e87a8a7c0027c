package seeds

import (
	"log"

	"github.com/turnstile-app/turnstile-backend/internal/database"
	"github.com/turnstile-app/turnstile-backend/internal/models"
	"github.com/turnstile-app/turnstile-backend/pkg/utils"
)

// SeedSystemLists creates the curated collections. Venue lists resolve
// their items against the seeded venue catalog; event lists target tags.
func SeedSystemLists() {
	log.Println("🌱 Seeding System Lists...")

	seedVenueList(
		"All 30 MLB Stadiums",
		"Visit every active Major League Baseball ballpark.",
		"baseball",
		mlbStadiumNames(),
	)

	seedEventList(
		"Grand Slams",
		"Attend a match at all four tennis majors.",
		"tennis",
		[]tagItem{
			{"grand_slam:aus_open", "Australian Open"},
			{"grand_slam:french_open", "French Open"},
			{"grand_slam:wimbledon", "Wimbledon"},
			{"grand_slam:us_open", "US Open"},
		},
	)
}

func mlbStadiumNames() []string {
	names := make([]string, 0, 30)
	for _, s := range venueSeeds {
		if s.Sport == "baseball" {
			names = append(names, s.Name)
		}
	}
	return names
}

type tagItem struct {
	Tag  string
	Name string
}

func seedVenueList(name, description, sport string, venueNames []string) {
	slug := utils.GenerateSlug(name)

	var existing models.List
	if err := database.DB.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return
	}

	list := models.List{
		Name:        name,
		Slug:        slug,
		Description: description,
		ListType:    models.ListTypeVenue,
		Sport:       sport,
		Source:      models.ListSourceSystem,
	}
	if err := database.DB.Create(&list).Error; err != nil {
		log.Printf("Failed to seed list %s: %v", name, err)
		return
	}

	count := 0
	for i, venueName := range venueNames {
		var venue models.Venue
		if err := database.DB.Where("slug = ?", utils.GenerateSlug(venueName)).First(&venue).Error; err != nil {
			log.Printf("List %s: venue %s not seeded, skipping item", name, venueName)
			continue
		}

		item := models.ListItem{
			ListID:       list.ID,
			VenueID:      &venue.ID,
			DisplayName:  venue.Name,
			DisplayOrder: i,
		}
		if err := database.DB.Create(&item).Error; err != nil {
			log.Printf("Failed to seed list item %s: %v", venue.Name, err)
			continue
		}
		count++
	}

	database.DB.Model(&list).UpdateColumn("item_count", count)
	log.Printf("Seeded list %q with %d items", name, count)
}

func seedEventList(name, description, sport string, items []tagItem) {
	slug := utils.GenerateSlug(name)

	var existing models.List
	if err := database.DB.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return
	}

	list := models.List{
		Name:        name,
		Slug:        slug,
		Description: description,
		ListType:    models.ListTypeEvent,
		Sport:       sport,
		Source:      models.ListSourceSystem,
	}
	if err := database.DB.Create(&list).Error; err != nil {
		log.Printf("Failed to seed list %s: %v", name, err)
		return
	}

	count := 0
	for i, ti := range items {
		tag := ti.Tag
		item := models.ListItem{
			ListID:       list.ID,
			EventTag:     &tag,
			DisplayName:  ti.Name,
			DisplayOrder: i,
		}
		if err := database.DB.Create(&item).Error; err != nil {
			log.Printf("Failed to seed list item %s: %v", ti.Name, err)
			continue
		}
		count++
	}

	database.DB.Model(&list).UpdateColumn("item_count", count)
	log.Printf("Seeded list %q with %d items", name, count)
}
