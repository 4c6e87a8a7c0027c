package seeds

import (
	"log"

	"github.com/turnstile-app/turnstile-backend/internal/database"
	"github.com/turnstile-app/turnstile-backend/internal/models"
	"github.com/turnstile-app/turnstile-backend/pkg/utils"
)

type venueSeed struct {
	Name     string
	City     string
	State    string
	Country  string // empty means the column default (USA)
	Sport    string
	Capacity int
	Opened   int
}

// The 30 current MLB parks plus the four Grand Slam tennis venues.
var venueSeeds = []venueSeed{
	{"Angel Stadium", "Anaheim", "CA", "", "baseball", 45517, 1966},
	{"Busch Stadium", "St. Louis", "MO", "", "baseball", 44494, 2006},
	{"Chase Field", "Phoenix", "AZ", "", "baseball", 48519, 1998},
	{"Citi Field", "Queens", "NY", "", "baseball", 41922, 2009},
	{"Citizens Bank Park", "Philadelphia", "PA", "", "baseball", 42792, 2004},
	{"Comerica Park", "Detroit", "MI", "", "baseball", 41083, 2000},
	{"Coors Field", "Denver", "CO", "", "baseball", 50144, 1995},
	{"Dodger Stadium", "Los Angeles", "CA", "", "baseball", 56000, 1962},
	{"Fenway Park", "Boston", "MA", "", "baseball", 37755, 1912},
	{"Globe Life Field", "Arlington", "TX", "", "baseball", 40300, 2020},
	{"Great American Ball Park", "Cincinnati", "OH", "", "baseball", 42319, 2003},
	{"Kauffman Stadium", "Kansas City", "MO", "", "baseball", 37903, 1973},
	{"loanDepot park", "Miami", "FL", "", "baseball", 36742, 2012},
	{"Minute Maid Park", "Houston", "TX", "", "baseball", 41168, 2000},
	{"Nationals Park", "Washington", "DC", "", "baseball", 41339, 2008},
	{"Oakland Coliseum", "Oakland", "CA", "", "baseball", 46847, 1966},
	{"Oracle Park", "San Francisco", "CA", "", "baseball", 41915, 2000},
	{"Oriole Park at Camden Yards", "Baltimore", "MD", "", "baseball", 45971, 1992},
	{"Petco Park", "San Diego", "CA", "", "baseball", 40209, 2004},
	{"PNC Park", "Pittsburgh", "PA", "", "baseball", 38747, 2001},
	{"Progressive Field", "Cleveland", "OH", "", "baseball", 34830, 1994},
	{"Rogers Centre", "Toronto", "ON", "Canada", "baseball", 39150, 1989},
	{"T-Mobile Park", "Seattle", "WA", "", "baseball", 47929, 1999},
	{"Target Field", "Minneapolis", "MN", "", "baseball", 38544, 2010},
	{"Tropicana Field", "St. Petersburg", "FL", "", "baseball", 25000, 1990},
	{"Truist Park", "Atlanta", "GA", "", "baseball", 41084, 2017},
	{"Wrigley Field", "Chicago", "IL", "", "baseball", 41649, 1914},
	{"Guaranteed Rate Field", "Chicago", "IL", "", "baseball", 40615, 1991},
	{"American Family Field", "Milwaukee", "WI", "", "baseball", 41900, 2001},
	{"Yankee Stadium", "Bronx", "NY", "", "baseball", 46537, 2009},

	{"Melbourne Park", "Melbourne", "VIC", "Australia", "tennis", 14820, 1988},
	{"Stade Roland Garros", "Paris", "", "France", "tennis", 15225, 1928},
	{"All England Club", "London", "", "UK", "tennis", 14979, 1922},
	{"USTA Billie Jean King National Tennis Center", "Queens", "NY", "", "tennis", 23771, 1978},
}

// SeedVenues inserts the venue catalog, skipping venues that already
// exist by slug.
func SeedVenues() {
	log.Println("🌱 Seeding Venues...")

	for _, s := range venueSeeds {
		venue := models.Venue{
			Name:       s.Name,
			Slug:       utils.GenerateSlug(s.Name),
			City:       s.City,
			State:      s.State,
			Country:    s.Country,
			Sport:      s.Sport,
			Capacity:   s.Capacity,
			OpenedYear: s.Opened,
		}

		var existing models.Venue
		if err := database.DB.Where("slug = ?", venue.Slug).First(&existing).Error; err == nil {
			continue
		}

		if err := database.DB.Create(&venue).Error; err != nil {
			log.Printf("Failed to seed venue %s: %v", venue.Name, err)
		}
	}
}
