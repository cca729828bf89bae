package intelligence

import (
	"reflect"
	"testing"
	"time"
)

func TestDetectIntent(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"I want to book an appointment", IntentBooking},
		{"how much is a haircut", IntentPricing},
		{"bei gani ya kusuka", IntentPricing},
		{"are you free on friday", IntentAvailability},
		{"what services do you offer", IntentServices},
		{"I need to cancel my appointment", IntentBooking},
		{"sitaki tena", IntentCancellation},
		{"where are you located", IntentLocation},
		{"habari yako", IntentGreeting},
		{"ndiyo", IntentConfirmation},
		{"qwerty zzz", IntentGeneral},
	}
	for _, tc := range cases {
		got, _ := DetectIntent(tc.message)
		if got != tc.want {
			t.Errorf("DetectIntent(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestExtractIsPure(t *testing.T) {
	msg := "nataka braids kesho asubuhi with cathy at 10:30am"
	first := Extract(msg)
	second := Extract(msg)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical input produced different extractions:\n%+v\n%+v", first, second)
	}
}

func TestExtractServiceCandidates(t *testing.T) {
	ex := Extract("I need braiding please")
	if len(ex.Services) == 0 || ex.Services[0].Value != "braids" {
		t.Fatalf("services = %+v, want braids first", ex.Services)
	}

	ex = Extract("manicure and a trim")
	if len(ex.Services) != 2 {
		t.Fatalf("services = %+v, want two candidates", ex.Services)
	}
	// Ranked best-first, stable order.
	for i := 1; i < len(ex.Services); i++ {
		if ex.Services[i].Score > ex.Services[i-1].Score {
			t.Errorf("candidates not ranked: %+v", ex.Services)
		}
	}
}

func TestExtractStaffAndLanguage(t *testing.T) {
	ex := Extract("can I book with cathy")
	if len(ex.Staff) == 0 || ex.Staff[0].Value != "catherine" {
		t.Errorf("staff = %+v, want catherine", ex.Staff)
	}
	if ex.Language != "en" {
		t.Errorf("language = %q, want en", ex.Language)
	}

	ex = Extract("habari, nataka kufanya booking")
	if ex.Language != "sw" {
		t.Errorf("language = %q, want sw", ex.Language)
	}
}

func TestExtractTimesAndDayParts(t *testing.T) {
	ex := Extract("maybe 2pm or 10:30am tomorrow morning")
	wantTimes := []string{"2:00 PM", "10:30 AM"}
	if !reflect.DeepEqual(ex.Times, wantTimes) {
		t.Errorf("times = %v, want %v", ex.Times, wantTimes)
	}
	if len(ex.DayParts) != 1 || ex.DayParts[0] != "morning" {
		t.Errorf("dayparts = %v, want [morning]", ex.DayParts)
	}
	if len(ex.Dates) != 1 || ex.Dates[0] != "tomorrow" {
		t.Errorf("dates = %v, want [tomorrow]", ex.Dates)
	}
}

func TestNormalizeClock(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2pm", "2:00 PM"},
		{"10:30am", "10:30 AM"},
		{"12 PM", "12:00 PM"},
		{"9:00 am", "9:00 AM"},
	}
	for _, tc := range cases {
		if got := normalizeClock(tc.in); got != tc.want {
			t.Errorf("normalizeClock(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveDate(t *testing.T) {
	// Monday 2025-06-02.
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	cases := []struct{ word, want string }{
		{"today", "2025-06-02"},
		{"leo", "2025-06-02"},
		{"tomorrow", "2025-06-03"},
		{"kesho", "2025-06-03"},
		{"friday", "2025-06-06"},
		{"sunday", "2025-06-08"},
		{"monday", "2025-06-09"}, // next week, never today
	}
	for _, tc := range cases {
		if got := ResolveDate(tc.word, now); got != tc.want {
			t.Errorf("ResolveDate(%q) = %q, want %q", tc.word, got, tc.want)
		}
	}
}

func TestSimilarityThreshold(t *testing.T) {
	if s := similarity("braidng", "braiding"); s < similarityThreshold {
		t.Errorf("one-typo similarity = %f, want >= %f", s, similarityThreshold)
	}
	if s := similarity("xyz", "braiding"); s >= similarityThreshold {
		t.Errorf("unrelated similarity = %f, want < %f", s, similarityThreshold)
	}
	if s := similarity("braiding", "braiding"); s != 1.0 {
		t.Errorf("identical similarity = %f, want 1.0", s)
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"braiding", "braidng", 1},
	}
	for _, tc := range cases {
		if got := levenshtein(tc.a, tc.b); got != tc.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
