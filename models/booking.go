package models

import "time"

// Booking status lifecycle: pending -> confirmed -> completed, with
// cancelled reachable from any non-terminal state. A cancelled booking
// frees its slot.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingMethod records which front-end created a booking.
type BookingMethod string

const (
	MethodWebsite     BookingMethod = "website"
	MethodWhatsApp    BookingMethod = "whatsapp"
	MethodAIChat      BookingMethod = "ai_chat"
	MethodWebsiteForm BookingMethod = "website_form"
)

// Booking represents a confirmed appointment record.
type Booking struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerEmail   string        `json:"customerEmail,omitempty"`
	Service         string        `json:"service"`         // service name, exact catalog match
	ServiceCategory string        `json:"serviceCategory"` // e.g. "Hair Braiding"
	Price           int           `json:"price"`           // KES
	Duration        string        `json:"duration"`        // display string
	DurationMinutes int           `json:"durationMinutes"` // used for conflict math
	StylistID       string        `json:"stylistId"`
	StylistName     string        `json:"stylistName"`
	Date            string        `json:"date"` // "YYYY-MM-DD"
	Time            string        `json:"time"` // "10:00 AM"
	Status          BookingStatus `json:"status"`
	Notes           string        `json:"notes,omitempty"`
	BookingMethod   BookingMethod `json:"bookingMethod"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// BookingInput is a candidate booking; the store assigns ID and timestamps
// on successful validation.
type BookingInput struct {
	CustomerName    string        `json:"customerName" binding:"required"`
	CustomerPhone   string        `json:"customerPhone" binding:"required"`
	CustomerEmail   string        `json:"customerEmail,omitempty"`
	Service         string        `json:"service" binding:"required"`
	ServiceCategory string        `json:"serviceCategory"`
	Price           int           `json:"price"`
	Duration        string        `json:"duration"`
	StylistID       string        `json:"stylistId"`
	StylistName     string        `json:"stylistName" binding:"required"`
	Date            string        `json:"date" binding:"required"`
	Time            string        `json:"time" binding:"required"`
	Status          BookingStatus `json:"status"`
	Notes           string        `json:"notes,omitempty"`
	BookingMethod   BookingMethod `json:"bookingMethod"`
}

// BookingUpdate carries the mutable fields of an existing booking. Nil
// pointers leave the stored value untouched.
type BookingUpdate struct {
	Status        *BookingStatus `json:"status,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	CustomerPhone *string        `json:"customerPhone,omitempty"`
	CustomerEmail *string        `json:"customerEmail,omitempty"`
}
