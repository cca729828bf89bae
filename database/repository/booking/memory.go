package bookingRepo

import (
	"context"
	"sync"

	"vipqueens/models"
)

// MemoryBookingRepo is an in-process repository used by tests and by
// zero-dependency development runs.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

// NewMemoryBookingRepo returns an empty in-memory repository.
func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{}
}

func (r *MemoryBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *MemoryBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (r *MemoryBookingRepo) GetByStaffDate(ctx context.Context, staffID, date string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.StylistID == staffID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepo) Insert(ctx context.Context, booking models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append([]models.Booking{booking}, r.bookings...)
	return nil
}

func (r *MemoryBookingRepo) Update(ctx context.Context, booking models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == booking.ID {
			r.bookings[i] = booking
			return nil
		}
	}
	return ErrBookingNotFound
}

func (r *MemoryBookingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return nil
}
