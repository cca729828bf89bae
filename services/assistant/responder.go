package assistant

import (
	"fmt"
	"strings"

	"vipqueens/config"
	"vipqueens/services/catalog"
)

// Responder answers one-shot FAQ questions without any conversation state.
// It backs the lightweight site widget; the stateful flow lives in
// DefaultAssistantService.
type Responder struct {
	Catalog catalog.Service
}

func NewResponder(cat catalog.Service) *Responder {
	return &Responder{Catalog: cat}
}

// Answer matches the message against keyword groups in priority order and
// returns a canned reply built from the salon profile.
func (r *Responder) Answer(message string) string {
	lower := strings.ToLower(message)
	cfg := config.AppConfig

	containsAny := func(keywords ...string) bool {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny("book", "appointment", "schedule"):
		var team []string
		for _, st := range r.Catalog.AllStaff() {
			team = append(team, st.Name)
		}
		return fmt.Sprintf("I'd be happy to help you book an appointment at %s!\n\nTo book:\n1. Choose your preferred service\n2. Select your stylist: %s\n3. Pick your date and time\n4. We'll confirm via WhatsApp\n\nOr call us directly at %s. We're open %s.",
			cfg.SalonName, strings.Join(team, ", "), cfg.SalonPhone, cfg.SalonHours)

	case containsAny("service", "hair", "nail", "price", "cost"):
		var b strings.Builder
		fmt.Fprintf(&b, "Our premium services at %s include:\n", cfg.SalonName)
		for _, cat := range r.Catalog.Categories() {
			fmt.Fprintf(&b, "- %s\n", cat)
		}
		b.WriteString("\nPrices vary based on hair length and service complexity. Would you like to book a consultation for an accurate quote?")
		return b.String()

	case containsAny("location", "address", "where", "direction"):
		return fmt.Sprintf("Visit us at %s:\n\n%s\n\nWe're easily accessible by public transport. Need directions? Just let me know!",
			cfg.SalonName, cfg.SalonAddress)

	case containsAny("hour", "open", "close", "time"):
		return fmt.Sprintf("%s is open:\n\n%s\n\nWe have extended hours to accommodate your schedule. Call %s to book your appointment.",
			cfg.SalonName, cfg.SalonHours, cfg.SalonPhone)

	case containsAny("contact", "phone", "call", "number"):
		return fmt.Sprintf("Contact %s:\n- Phone: %s\n- WhatsApp: +%s\n- Location: %s\n- Hours: %s",
			cfg.SalonName, cfg.SalonPhone, cfg.SalonWhatsApp, cfg.SalonAddress, cfg.SalonHours)

	case containsAny("staff", "stylist", "team", "who"):
		var b strings.Builder
		fmt.Fprintf(&b, "Meet our expert team at %s:\n", cfg.SalonName)
		for _, st := range r.Catalog.AllStaff() {
			fmt.Fprintf(&b, "- %s (%s)\n", st.Name, st.Role)
		}
		b.WriteString("\nAll our stylists are experienced professionals. Would you like to book with a specific stylist?")
		return b.String()

	case containsAny("offer", "discount", "special", "promotion"):
		return fmt.Sprintf("Current special offers at %s:\n- 20%% off first-time visits\n- Student discounts available\n- Group booking packages\n\nCall %s or book online to take advantage of these deals!",
			cfg.SalonName, cfg.SalonPhone)

	case containsAny("hello", "hi", "hey", "good"):
		return fmt.Sprintf("Hello! Welcome to %s.\n\nI'm here to help you with:\n- Booking appointments\n- Service information\n- Location and hours\n- Our expert team\n- Special offers\n\nWhat would you like to know?", cfg.SalonName)

	case containsAny("thank"):
		return fmt.Sprintf("You're welcome! %s is always here to help you look and feel your best. See you soon at %s!",
			cfg.SalonName, cfg.SalonAddress)

	default:
		return fmt.Sprintf("I'm here to help with %s!\n\nI can assist you with:\n- Booking appointments\n- Service information and pricing\n- Location and directions\n- Hours and availability\n- Our expert team\n\nWhat would you like to know? Or call us at %s!",
			cfg.SalonName, cfg.SalonPhone)
	}
}
