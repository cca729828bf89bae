// File: utils/time.go
package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var meridiemRe = regexp.MustCompile(`(?i)\s*(AM|PM)\s*`)

// TimeToMinutes converts a clock string ("10:30 PM", "06:00", "9") to minutes
// since midnight. Malformed input yields 0; callers needing validation must
// check the format themselves before converting.
func TimeToMinutes(timeStr string) int {
	clean := meridiemRe.ReplaceAllString(timeStr, "")
	parts := strings.Split(clean, ":")

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	minutes := 0
	if len(parts) > 1 {
		if m, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			minutes = m
		}
	}

	total := hours*60 + minutes
	upper := strings.ToUpper(timeStr)
	if strings.Contains(upper, "PM") && hours != 12 {
		total += 12 * 60
	} else if strings.Contains(upper, "AM") && hours == 12 {
		total -= 12 * 60
	}
	return total
}

// MinutesToTime renders minutes since midnight in 12-hour format with a
// zero-padded minute, e.g. 390 -> "6:30 AM".
func MinutesToTime(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	displayHour := hours
	switch {
	case hours > 12:
		displayHour = hours - 12
	case hours == 0:
		displayHour = 12
	}
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, mins, period)
}

// GenerateTimeSlots enumerates slot start times from start (inclusive) up to
// but excluding end, stepping by intervalMinutes.
func GenerateTimeSlots(startTime, endTime string, intervalMinutes int) []string {
	var slots []string
	startMinutes := TimeToMinutes(startTime)
	endMinutes := TimeToMinutes(endTime)

	for minutes := startMinutes; minutes < endMinutes; minutes += intervalMinutes {
		slots = append(slots, MinutesToTime(minutes))
	}
	return slots
}

// CheckTimeConflict reports whether the half-open intervals
// [newStart, newStart+newDuration) and [existingStart, existingStart+existingDuration)
// overlap. A booking ending exactly when another starts does not conflict.
func CheckTimeConflict(newStart string, newDuration int, existingStart string, existingDuration int) bool {
	newStartMinutes := TimeToMinutes(newStart)
	newEndMinutes := newStartMinutes + newDuration
	existingStartMinutes := TimeToMinutes(existingStart)
	existingEndMinutes := existingStartMinutes + existingDuration

	return newStartMinutes < existingEndMinutes && newEndMinutes > existingStartMinutes
}

// DateDayName maps a "YYYY-MM-DD" date to its weekday name ("Monday").
// Returns "" for unparseable input.
func DateDayName(dateStr string) string {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return ""
	}
	return date.Weekday().String()
}

// IsDateInWorkingDays reports whether the date's weekday is in workingDays.
func IsDateInWorkingDays(dateStr string, workingDays []string) bool {
	dayName := DateDayName(dateStr)
	for _, day := range workingDays {
		if day == dayName {
			return true
		}
	}
	return false
}
