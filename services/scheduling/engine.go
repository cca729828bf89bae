package scheduling

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	bookingRepo "vipqueens/database/repository/booking"
	"vipqueens/models"
	"vipqueens/services/catalog"
	"vipqueens/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// Slot granularity of the booking grid.
	slotIntervalMinutes = 60
	// Availability responses are capped for the slot picker UI.
	maxSlotsReturned = 8
)

// Engine is the authoritative booking store: it owns creation with conflict
// rejection, status updates, deletion, and availability computation.
type Engine interface {
	AddBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, update models.BookingUpdate) error
	DeleteBooking(ctx context.Context, id string) error
	GetAvailableSlots(ctx context.Context, date, staffID string, durationMinutes int) ([]string, error)
	IsSlotAvailable(ctx context.Context, date, slotTime, staffID string, durationMinutes int) (bool, error)
	ListBookings(ctx context.Context, date, staffID string) ([]models.Booking, error)
}

// DefaultSchedulingEngine implements Engine over a BookingRepository.
// A single mutex serializes the conflict-check-plus-insert pair so that
// concurrent requests cannot double-book a slot.
type DefaultSchedulingEngine struct {
	Repo    bookingRepo.BookingRepository
	Catalog catalog.Service

	mu sync.Mutex
}

// NewDefaultSchedulingEngine wires an engine over the given repository and catalog.
func NewDefaultSchedulingEngine(repo bookingRepo.BookingRepository, cat catalog.Service) *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{Repo: repo, Catalog: cat}
}

// AddBooking validates a candidate and inserts it. Validation order:
// service resolution, staff resolution, contact fields, working window,
// then slot conflict against every non-cancelled booking for the same
// staff and date.
func (se *DefaultSchedulingEngine) AddBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	service, ok := se.Catalog.ServiceByName(input.Service)
	if !ok {
		return nil, newError(CodeUnknownService, fmt.Sprintf("service %q not found", input.Service))
	}

	staffMember, ok := se.Catalog.StaffByName(input.StylistName)
	if !ok {
		return nil, newError(CodeUnknownStaff, fmt.Sprintf("stylist %q not found", input.StylistName))
	}

	if input.CustomerName == "" || input.CustomerPhone == "" {
		return nil, newError(CodeValidation, "customer name and phone are required")
	}
	if input.Price < 0 {
		return nil, newError(CodeValidation, "price must not be negative")
	}

	// The requested time must fall inside the stylist's working window on a
	// working day.
	if !utils.IsDateInWorkingDays(input.Date, staffMember.WorkingHours.Days) {
		return nil, newError(CodeSlotUnavailable,
			fmt.Sprintf("%s does not work on %s", staffMember.Name, input.Date))
	}
	startMinutes := utils.TimeToMinutes(input.Time)
	windowStart := utils.TimeToMinutes(staffMember.WorkingHours.Start)
	windowEnd := utils.TimeToMinutes(staffMember.WorkingHours.End)
	if startMinutes < windowStart || startMinutes+service.DurationMinutes > windowEnd {
		return nil, newError(CodeSlotUnavailable,
			fmt.Sprintf("%s is outside %s's working hours", input.Time, staffMember.Name))
	}

	se.mu.Lock()
	defer se.mu.Unlock()

	existing, err := se.Repo.GetByStaffDate(ctx, staffMember.ID, input.Date)
	if err != nil {
		return nil, wrapStoreFailure("failed to read existing bookings", err)
	}
	for _, b := range existing {
		if b.Status == models.StatusCancelled {
			continue
		}
		if utils.CheckTimeConflict(input.Time, service.DurationMinutes, b.Time, b.DurationMinutes) {
			return nil, newError(CodeSlotUnavailable, "this time slot is no longer available")
		}
	}

	now := time.Now()
	status := input.Status
	if status == "" {
		status = models.StatusConfirmed
	}
	price := input.Price
	if price == 0 {
		price = service.Price.Min
	}
	booking := models.Booking{
		ID:              uuid.New().String(),
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		Service:         service.Name,
		ServiceCategory: service.Category,
		Price:           price,
		Duration:        service.Duration,
		DurationMinutes: service.DurationMinutes,
		StylistID:       staffMember.ID,
		StylistName:     staffMember.Name,
		Date:            input.Date,
		Time:            input.Time,
		Status:          status,
		Notes:           input.Notes,
		BookingMethod:   input.BookingMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := se.Repo.Insert(ctx, booking); err != nil {
		return nil, wrapStoreFailure("failed to persist booking", err)
	}

	logger.Info("booking created",
		zap.String("id", booking.ID),
		zap.String("stylist", booking.StylistName),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time),
		zap.String("method", string(booking.BookingMethod)))
	return &booking, nil
}

// UpdateBooking merges the given fields into an existing record and
// refreshes UpdatedAt. The no-overlap invariant is not re-checked on
// update: a status flip back from cancelled can reintroduce a conflict,
// and the dashboard owns that call.
func (se *DefaultSchedulingEngine) UpdateBooking(ctx context.Context, id string, update models.BookingUpdate) error {
	se.mu.Lock()
	defer se.mu.Unlock()

	existing, err := se.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return newError(CodeNotFound, fmt.Sprintf("booking %s not found", id))
		}
		return wrapStoreFailure("failed to load booking", err)
	}

	if update.Status != nil {
		existing.Status = *update.Status
	}
	if update.Notes != nil {
		existing.Notes = *update.Notes
	}
	if update.CustomerPhone != nil {
		existing.CustomerPhone = *update.CustomerPhone
	}
	if update.CustomerEmail != nil {
		existing.CustomerEmail = *update.CustomerEmail
	}
	existing.UpdatedAt = time.Now()

	if err := se.Repo.Update(ctx, *existing); err != nil {
		return wrapStoreFailure("failed to persist booking update", err)
	}
	return nil
}

// DeleteBooking removes a record. Deleting an unknown id is a no-op.
func (se *DefaultSchedulingEngine) DeleteBooking(ctx context.Context, id string) error {
	se.mu.Lock()
	defer se.mu.Unlock()

	if err := se.Repo.Delete(ctx, id); err != nil {
		return wrapStoreFailure("failed to delete booking", err)
	}
	return nil
}

// GetAvailableSlots enumerates the stylist's hourly slot starts on the
// given date and drops those conflicting with an existing non-cancelled
// booking, using each booking's own duration. The result is capped at 8
// entries for the slot picker; slots past the cap are not reported.
func (se *DefaultSchedulingEngine) GetAvailableSlots(ctx context.Context, date, staffID string, durationMinutes int) ([]string, error) {
	staffMember, ok := se.Catalog.StaffByID(staffID)
	if !ok {
		return nil, nil
	}
	if !utils.IsDateInWorkingDays(date, staffMember.WorkingHours.Days) {
		return nil, nil
	}

	existing, err := se.Repo.GetByStaffDate(ctx, staffID, date)
	if err != nil {
		return nil, wrapStoreFailure("failed to read existing bookings", err)
	}
	var active []models.Booking
	for _, b := range existing {
		if b.Status != models.StatusCancelled {
			active = append(active, b)
		}
	}

	allSlots := utils.GenerateTimeSlots(
		staffMember.WorkingHours.Start,
		staffMember.WorkingHours.End,
		slotIntervalMinutes,
	)

	var available []string
	for _, slot := range allSlots {
		conflicted := false
		for _, b := range active {
			if utils.CheckTimeConflict(slot, durationMinutes, b.Time, b.DurationMinutes) {
				conflicted = true
				break
			}
		}
		if !conflicted {
			available = append(available, slot)
			if len(available) == maxSlotsReturned {
				break
			}
		}
	}
	return available, nil
}

// IsSlotAvailable reports whether slotTime appears in GetAvailableSlots for
// the same parameters. A free slot beyond the 8-entry cap therefore reads
// as unavailable, mirroring what the picker offers.
func (se *DefaultSchedulingEngine) IsSlotAvailable(ctx context.Context, date, slotTime, staffID string, durationMinutes int) (bool, error) {
	slots, err := se.GetAvailableSlots(ctx, date, staffID, durationMinutes)
	if err != nil {
		return false, err
	}
	for _, s := range slots {
		if s == slotTime {
			return true, nil
		}
	}
	return false, nil
}

// ListBookings returns bookings, optionally filtered by date and/or staff.
func (se *DefaultSchedulingEngine) ListBookings(ctx context.Context, date, staffID string) ([]models.Booking, error) {
	all, err := se.Repo.GetAll(ctx)
	if err != nil {
		return nil, wrapStoreFailure("failed to list bookings", err)
	}
	var out []models.Booking
	for _, b := range all {
		if date != "" && b.Date != date {
			continue
		}
		if staffID != "" && b.StylistID != staffID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}
