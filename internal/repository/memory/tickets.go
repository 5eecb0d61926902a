package memory

import "github.com/matchday/matchday-go/internal/domain"

// ticketTypes is the stand-grid price table. The grid surface displays
// the first nine entries; prices still resolve against the full table.
var ticketTypes = []domain.TicketType{
	{ID: "general", Name: "General Stand", Price: 999, Available: 85},
	{ID: "premium", Name: "Premium Stand", Price: 999, Available: 100},
	{ID: "pavilion", Name: "Pavilion Stand", Price: 999, Available: 50},
	{ID: "vip", Name: "VIP Stand", Price: 999, Available: 100},
	{ID: "corporate", Name: "Corporate Box", Price: 999, Available: 45},
	{ID: "hospitality", Name: "Hospitality Box", Price: 1500, Available: 25},
	{ID: "skybox", Name: "Skybox/Lounge", Price: 1700, Available: 30},
	{ID: "premium-plus", Name: "Premium Plus", Price: 1500, Available: 60},
	{ID: "executive", Name: "Executive Lounge", Price: 999, Available: 40},
	{ID: "executiveplus", Name: "Executive Plus", Price: 1500, Available: 40},
}

// ticketOptions is the summary-buttons price table. It reuses the grid
// table's ids but carries its own prices; which table applies depends on
// the surface the selection was made from.
var ticketOptions = []domain.TicketOption{
	{ID: "general", Name: "General Stand", Price: 100, Description: "Affordable seating, usually in the upper stands."},
	{ID: "premium", Name: "Premium Stand", Price: 200, Description: "Better view with comfortable seating."},
	{ID: "pavilion", Name: "Pavilion Stand", Price: 250, Description: "Premium seating with excellent view of the pitch."},
	{ID: "vip", Name: "VIP Stand", Price: 400, Description: "Exclusive seating with premium amenities."},
	{ID: "corporate", Name: "Corporate Box", Price: 500, Description: "Private box for corporate groups with catering."},
	{ID: "hospitality", Name: "Hospitality Box", Price: 750, Description: "Luxury experience with food and beverages included."},
	{ID: "skybox", Name: "Skybox/Lounge", Price: 999, Description: "Ultimate luxury experience with panoramic views."},
}
