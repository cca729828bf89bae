package bookingRepo

import (
	"context"
	"errors"

	"vipqueens/models"
)

// ErrBookingNotFound is returned when a booking id does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines the interface for booking data access.
// Implementations only move records in and out of storage; validation and
// conflict checks belong to the scheduling engine.
type BookingRepository interface {
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByStaffDate(ctx context.Context, staffID, date string) ([]models.Booking, error)
	Insert(ctx context.Context, booking models.Booking) error
	Update(ctx context.Context, booking models.Booking) error
	Delete(ctx context.Context, id string) error
}
