package models

// PriceRange is a service's price band in KES.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Service is a catalog entry. Services are seeded at startup and never
// mutated at runtime.
type Service struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Price           PriceRange `json:"price"`
	Duration        string     `json:"duration"`        // display string, e.g. "1.5 hours"
	DurationMinutes int        `json:"durationMinutes"` // authoritative duration
	Description     string     `json:"description"`
}
