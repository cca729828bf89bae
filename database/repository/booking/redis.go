package bookingRepo

import (
	"context"
	"encoding/json"
	"fmt"

	"vipqueens/models"

	"github.com/go-redis/redis/v8"
)

// bookingsKey is the single namespaced key holding the booking array.
const bookingsKey = "vipqueens:bookings"

// RedisBookingRepo persists the booking collection as one JSON array under
// a namespaced key. Reads and writes move the whole array; the scheduling
// engine serializes writers, so read-modify-write here is safe.
type RedisBookingRepo struct {
	client *redis.Client
}

// NewRedisBookingRepo returns a repository backed by the given client.
func NewRedisBookingRepo(client *redis.Client) *RedisBookingRepo {
	return &RedisBookingRepo{client: client}
}

func (r *RedisBookingRepo) load(ctx context.Context) ([]models.Booking, error) {
	data, err := r.client.Get(ctx, bookingsKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	var bookings []models.Booking
	if err := json.Unmarshal([]byte(data), &bookings); err != nil {
		return nil, fmt.Errorf("failed to parse stored bookings: %w", err)
	}
	return bookings, nil
}

func (r *RedisBookingRepo) store(ctx context.Context, bookings []models.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to marshal bookings: %w", err)
	}
	if err := r.client.Set(ctx, bookingsKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to persist bookings: %w", err)
	}
	return nil
}

func (r *RedisBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return r.load(ctx)
}

func (r *RedisBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, ErrBookingNotFound
}

func (r *RedisBookingRepo) GetByStaffDate(ctx context.Context, staffID, date string) ([]models.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Booking
	for _, b := range bookings {
		if b.StylistID == staffID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *RedisBookingRepo) Insert(ctx context.Context, booking models.Booking) error {
	bookings, err := r.load(ctx)
	if err != nil {
		return err
	}
	// Newest first, matching how the dashboard lists them.
	bookings = append([]models.Booking{booking}, bookings...)
	return r.store(ctx, bookings)
}

func (r *RedisBookingRepo) Update(ctx context.Context, booking models.Booking) error {
	bookings, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range bookings {
		if bookings[i].ID == booking.ID {
			bookings[i] = booking
			return r.store(ctx, bookings)
		}
	}
	return ErrBookingNotFound
}

func (r *RedisBookingRepo) Delete(ctx context.Context, id string) error {
	bookings, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			bookings = append(bookings[:i], bookings[i+1:]...)
			return r.store(ctx, bookings)
		}
	}
	// Deleting an absent booking is a no-op.
	return nil
}
