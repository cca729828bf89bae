package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vipqueens/models"
	"vipqueens/services/scheduling"
	"vipqueens/utils"
)

// schedulingStatus maps an engine error to the HTTP status it should wear.
func schedulingStatus(err error) int {
	switch scheduling.ErrorCode(err) {
	case scheduling.CodeUnknownService, scheduling.CodeUnknownStaff, scheduling.CodeNotFound:
		return http.StatusNotFound
	case scheduling.CodeSlotUnavailable:
		return http.StatusConflict
	case scheduling.CodeValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetAvailability handles GET /api/availability/:staffId?date=YYYY-MM-DD&duration=60.
func GetAvailability(engine scheduling.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		staffID := c.Param("staffId")
		date := c.Query("date")
		if date == "" {
			utils.JSONError(c, http.StatusBadRequest, "missing date", "date query parameter is required (YYYY-MM-DD)")
			return
		}
		duration := 60
		if d := c.Query("duration"); d != "" {
			parsed, err := strconv.Atoi(d)
			if err != nil || parsed <= 0 {
				utils.JSONError(c, http.StatusBadRequest, "invalid duration", "duration must be a positive number of minutes")
				return
			}
			duration = parsed
		}

		slots, err := engine.GetAvailableSlots(c.Request.Context(), date, staffID, duration)
		if err != nil {
			utils.JSONError(c, schedulingStatus(err), "failed to get availability", err.Error())
			return
		}
		if slots == nil {
			slots = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"date": date, "staffId": staffID, "availableSlots": slots})
	}
}

// CreateAppointment handles POST /api/appointments.
func CreateAppointment(engine scheduling.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.BookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if input.BookingMethod == "" {
			input.BookingMethod = models.MethodWebsite
		}

		booking, err := engine.AddBooking(c.Request.Context(), input)
		if err != nil {
			utils.JSONError(c, schedulingStatus(err), "failed to create appointment", err.Error())
			return
		}
		getLogger(c).Info("appointment created",
			zap.String("bookingId", booking.ID),
			zap.String("stylistId", booking.StylistID),
			zap.String("date", booking.Date))
		c.JSON(http.StatusCreated, gin.H{"booking": booking})
	}
}

// ListAppointments handles GET /api/appointments?date=&staffId=.
func ListAppointments(engine scheduling.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := engine.ListBookings(c.Request.Context(), c.Query("date"), c.Query("staffId"))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
			return
		}
		if bookings == nil {
			bookings = []models.Booking{}
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
	}
}

// UpdateAppointment handles PATCH /api/appointments/:id. Status changes
// from the dashboard (confirm, complete, cancel) land here.
func UpdateAppointment(engine scheduling.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update models.BookingUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		id := c.Param("id")
		if err := engine.UpdateBooking(c.Request.Context(), id, update); err != nil {
			utils.JSONError(c, schedulingStatus(err), "failed to update appointment", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": id})
	}
}

// DeleteAppointment handles DELETE /api/appointments/:id.
func DeleteAppointment(engine scheduling.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := engine.DeleteBooking(c.Request.Context(), id); err != nil {
			utils.JSONError(c, schedulingStatus(err), "failed to delete appointment", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}
