package utils

import (
	"reflect"
	"testing"
)

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"06:00", 360},
		{"6:00 AM", 360},
		{"10:30 PM", 1350},
		{"12:00 PM", 720},
		{"12:00 AM", 0},
		{"22:00", 1320},
		{"9", 540},
		{"garbage", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := TimeToMinutes(c.in); got != c.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestMinutesToTime(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{360, "6:00 AM"},
		{390, "6:30 AM"},
		{0, "12:00 AM"},
		{720, "12:00 PM"},
		{780, "1:00 PM"},
		{1350, "10:30 PM"},
	}
	for _, c := range cases {
		if got := MinutesToTime(c.in); got != c.want {
			t.Errorf("MinutesToTime(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMinutesToTimeRoundTrip(t *testing.T) {
	// Hourly boundaries across a full day survive a round trip.
	for minutes := 0; minutes < 24*60; minutes += 60 {
		rendered := MinutesToTime(minutes)
		if got := TimeToMinutes(rendered); got != minutes {
			t.Errorf("round trip %d -> %q -> %d", minutes, rendered, got)
		}
	}
}

func TestGenerateTimeSlots(t *testing.T) {
	got := GenerateTimeSlots("06:00", "10:00", 60)
	want := []string{"6:00 AM", "7:00 AM", "8:00 AM", "9:00 AM"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GenerateTimeSlots = %v, want %v", got, want)
	}

	// End bound is exclusive.
	got = GenerateTimeSlots("09:00", "09:00", 60)
	if len(got) != 0 {
		t.Fatalf("expected no slots for empty window, got %v", got)
	}

	got = GenerateTimeSlots("09:00", "10:30", 30)
	want = []string{"9:00 AM", "9:30 AM", "10:00 AM"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GenerateTimeSlots 30min = %v, want %v", got, want)
	}
}

func TestCheckTimeConflict(t *testing.T) {
	cases := []struct {
		name                       string
		newStart                   string
		newDur                     int
		existingStart              string
		existingDur                int
		want                       bool
	}{
		{"identical", "10:00 AM", 60, "10:00 AM", 60, true},
		{"overlap tail", "10:30 AM", 60, "10:00 AM", 60, true},
		{"back to back", "11:00 AM", 60, "10:00 AM", 60, false},
		{"one minute overlap", "10:59 AM", 60, "10:00 AM", 60, true},
		{"disjoint", "2:00 PM", 60, "10:00 AM", 60, false},
		{"contained", "10:15 AM", 15, "10:00 AM", 120, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CheckTimeConflict(c.newStart, c.newDur, c.existingStart, c.existingDur)
			if got != c.want {
				t.Fatalf("CheckTimeConflict(%q,%d,%q,%d) = %v, want %v",
					c.newStart, c.newDur, c.existingStart, c.existingDur, got, c.want)
			}
			// Overlap is symmetric.
			rev := CheckTimeConflict(c.existingStart, c.existingDur, c.newStart, c.newDur)
			if rev != c.want {
				t.Fatalf("conflict check not symmetric for %s", c.name)
			}
		})
	}
}

func TestIsDateInWorkingDays(t *testing.T) {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if !IsDateInWorkingDays("2025-06-02", days) { // a Monday
		t.Error("expected Monday 2025-06-02 to be a working day")
	}
	if IsDateInWorkingDays("2025-06-01", days) { // a Sunday
		t.Error("expected Sunday 2025-06-01 to be off")
	}
	if IsDateInWorkingDays("not-a-date", days) {
		t.Error("unparseable date must not match any working day")
	}
}
