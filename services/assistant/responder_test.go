package assistant

import (
	"strings"
	"testing"

	"vipqueens/config"
	"vipqueens/services/catalog"
)

func TestResponderAnswers(t *testing.T) {
	r := NewResponder(catalog.NewDefaultCatalogService())

	cases := []struct {
		name     string
		message  string
		contains string
	}{
		{"booking", "how do I book an appointment?", "book"},
		{"services", "what services do you have?", "Hair Braiding"},
		{"location", "where are you located?", config.AppConfig.SalonAddress},
		{"hours", "when do you open?", config.AppConfig.SalonHours},
		{"contact", "what's your phone number?", config.AppConfig.SalonPhone},
		{"team", "tell me about your team", "Catherine"},
		{"offers", "any special offers?", "20%"},
		{"greeting", "hello", "Welcome"},
		{"thanks", "thank you so much", "You're welcome"},
		{"fallback", "xyzzy", config.AppConfig.SalonPhone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Answer(tc.message)
			if !strings.Contains(got, tc.contains) {
				t.Errorf("Answer(%q) = %q, want substring %q", tc.message, got, tc.contains)
			}
		})
	}
}

func TestResponderIsStateless(t *testing.T) {
	r := NewResponder(catalog.NewDefaultCatalogService())
	first := r.Answer("what are your prices?")
	second := r.Answer("what are your prices?")
	if first != second {
		t.Error("identical questions must produce identical answers")
	}
}
