package models

// WorkingHours is a staff member's daily window plus the weekdays worked.
type WorkingHours struct {
	Start string   `json:"start"` // "06:00"
	End   string   `json:"end"`   // "22:00"
	Days  []string `json:"days"`  // weekday names, e.g. "Monday"
}

// Staff is a stylist or technician. The roster is seeded at startup; the
// owner portal's staff editor lives outside this service.
type Staff struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Role         string       `json:"role"`
	Image        string       `json:"image,omitempty"`
	Specialties  []string     `json:"specialties"` // subset of service categories
	IsAvailable  bool         `json:"isAvailable"`
	WorkingHours WorkingHours `json:"workingHours"`
}
