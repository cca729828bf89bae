package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"vipqueens/config"
	"vipqueens/models"
	"vipqueens/services/catalog"
	"vipqueens/services/scheduling"
	"vipqueens/utils"
)

const (
	slotSearchDays   = 7
	maxOfferedDays   = 3
	slotsShownPerDay = 3
	defaultSlotTime  = "10:00 AM"
)

var (
	timeExprRegex   = regexp.MustCompile(`(?i)(\d{1,2}):?(\d{2})?\s*(am|pm)`)
	namePhraseRegex = regexp.MustCompile(`(?i:name is|i'?m|my name|call me)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
	bareNameRegex   = regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
	phoneRegex      = regexp.MustCompile(`(\+?254\d{9}|\d{10}|\d{9})`)
	emailRegex      = regexp.MustCompile(`([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
)

// Service drives the guided booking conversation. The caller owns the
// FlowState and persists it between turns; HandleMessage mutates it in
// place and returns the reply for the current turn.
type Service interface {
	HandleMessage(ctx context.Context, state *models.FlowState, message string) (models.ChatResponse, error)
}

// DefaultAssistantService is the rule-based receptionist.
type DefaultAssistantService struct {
	Catalog catalog.Service
	Engine  scheduling.Engine

	// now is swappable so slot searches are reproducible in tests.
	now func() time.Time
}

func NewDefaultAssistantService(cat catalog.Service, engine scheduling.Engine) *DefaultAssistantService {
	return &DefaultAssistantService{
		Catalog: cat,
		Engine:  engine,
		now:     time.Now,
	}
}

// detectIntent scans keyword lists in a fixed order and returns the first
// intent with a substring hit.
func detectIntent(message string) string {
	lower := strings.ToLower(message)
	intents := []struct {
		name     string
		keywords []string
	}{
		{"reset", []string{"start over", "reset", "new conversation"}},
		{"back", []string{"back", "previous", "go back"}},
		{"booking", []string{"book", "appointment", "schedule", "reserve", "available"}},
		{"confirmation", []string{"yes", "confirm", "proceed", "book it"}},
		{"services", []string{"service", "treatment", "hair", "nails", "what do you offer"}},
		{"pricing", []string{"price", "cost", "how much", "rate", "fee", "charge"}},
		{"staff", []string{"staff", "stylist", "who", "catherine", "njeri", "ann", "rachael"}},
		{"location", []string{"where", "location", "address", "direction"}},
		{"hours", []string{"hour", "time", "open", "close", "when"}},
		{"greeting", []string{"hello", "hi", "hey", "good morning"}},
	}
	for _, in := range intents {
		for _, kw := range in.keywords {
			if strings.Contains(lower, kw) {
				return in.name
			}
		}
	}
	return "general"
}

// HandleMessage advances the flow one turn. A store failure during
// confirmation produces an escalation reply without advancing the step;
// no error path partially mutates the state.
func (s *DefaultAssistantService) HandleMessage(ctx context.Context, state *models.FlowState, message string) (models.ChatResponse, error) {
	intent := detectIntent(message)

	if intent == "reset" {
		*state = *models.NewFlowState()
		return models.ChatResponse{
			Response:    fmt.Sprintf("Let's start fresh!\n\nWelcome to %s. I can help you book appointments, explain our services and prices, or share our location and hours.\n\nHow can I help you today?", config.AppConfig.SalonName),
			Suggestions: []string{"Book appointment", "View services", "Check prices", "Location info"},
		}, nil
	}

	if state.Step != models.StepGreeting || intent == "booking" {
		return s.handleBookingStep(ctx, state, message, intent)
	}

	return s.infoReply(intent), nil
}

func (s *DefaultAssistantService) handleBookingStep(ctx context.Context, state *models.FlowState, message, intent string) (models.ChatResponse, error) {
	lower := strings.ToLower(message)

	switch state.Step {
	case models.StepGreeting:
		state.Step = models.StepServiceSelection
		// "book hair braiding" names the service in the same breath;
		// resolve it immediately instead of re-asking.
		if _, ok := s.Catalog.FindService(message); ok {
			return s.handleBookingStep(ctx, state, message, intent)
		}
		return models.ChatResponse{
			Response:    "I'd love to help you book an appointment!\n\nOur popular services:\n" + s.categoryMenu() + "\nWhich service would you like to book?",
			Suggestions: s.categorySuggestions(),
		}, nil

	case models.StepServiceSelection:
		svc, ok := s.Catalog.FindService(message)
		if !ok {
			return models.ChatResponse{
				Response:    "Could you tell me which service you're interested in?\n\nAvailable services:\n" + s.categoryMenu() + "\nJust pick one or tell me what you're looking for.",
				Suggestions: s.categorySuggestions(),
			}, nil
		}
		stylists := s.Catalog.GetStaffBySpecialty(svc.Category)
		state.Service = &svc
		state.Step = models.StepStylistSelection

		var b strings.Builder
		fmt.Fprintf(&b, "Excellent choice! %s\n\nDuration: %s\nPrice: KES %d - %d\n\nAvailable stylists:\n", svc.Name, svc.Duration, svc.Price.Min, svc.Price.Max)
		suggestions := make([]string, 0, len(stylists)+1)
		for _, st := range stylists {
			fmt.Fprintf(&b, "- %s (%s)\n", st.Name, st.Role)
			suggestions = append(suggestions, st.Name)
		}
		b.WriteString("\nWho would you prefer?")
		suggestions = append(suggestions, "Any available stylist")
		return models.ChatResponse{Response: b.String(), Suggestions: suggestions}, nil

	case models.StepStylistSelection:
		stylist, ok := s.Catalog.FindStaff(message)
		if !ok && strings.Contains(lower, "any") {
			if candidates := s.Catalog.GetStaffBySpecialty(state.Service.Category); len(candidates) > 0 {
				stylist, ok = candidates[0], true
			}
		}
		if !ok {
			var b strings.Builder
			b.WriteString("Please choose your preferred stylist:\n")
			var suggestions []string
			for _, st := range s.Catalog.GetStaffBySpecialty(state.Service.Category) {
				fmt.Fprintf(&b, "- %s (%s)\n", st.Name, st.Role)
				suggestions = append(suggestions, st.Name)
			}
			b.WriteString("\nWho would you like to book with?")
			return models.ChatResponse{Response: b.String(), Suggestions: suggestions}, nil
		}

		offered, err := s.searchSlots(ctx, stylist.ID, state.Service.DurationMinutes)
		if err != nil {
			utils.GetLogger().Warn("slot search failed", zap.String("stylistId", stylist.ID), zap.Error(err))
			return s.escalation("Let me connect you with our team for real-time availability."), nil
		}
		if len(offered) == 0 {
			// Stay on this step so the customer can try another stylist.
			return s.escalation(fmt.Sprintf("%s is currently fully booked.", stylist.Name)), nil
		}

		state.Stylist = &stylist
		state.OfferedDays = offered
		state.Step = models.StepSlotSelection

		var b strings.Builder
		fmt.Fprintf(&b, "Perfect! %s is available.\n\nNext available times:\n", stylist.Name)
		var suggestions []string
		for _, day := range offered {
			fmt.Fprintf(&b, "\n%s:\n", day.DisplayDate)
			for _, slot := range day.Slots {
				fmt.Fprintf(&b, "- %s\n", slot)
			}
			if len(day.Slots) > 0 {
				suggestions = append(suggestions, day.Slots[0])
			}
		}
		b.WriteString("\nWhich time works best for you?")
		return models.ChatResponse{Response: b.String(), Suggestions: suggestions}, nil

	case models.StepSlotSelection:
		match := timeExprRegex.FindString(message)
		if match == "" && !strings.Contains(lower, "first") && !strings.Contains(lower, "available") {
			return models.ChatResponse{
				Response:    "What time works best for you? You can say \"10am\", \"2pm\" or \"first available\".",
				Suggestions: []string{"10:00 AM", "2:00 PM", "First available"},
			}, nil
		}

		slotTime := defaultSlotTime
		if match != "" {
			slotTime = utils.MinutesToTime(utils.TimeToMinutes(match))
		}
		// Book against the first day actually offered, not a fixed
		// next-day guess.
		date := s.now().AddDate(0, 0, 1).Format("2006-01-02")
		display := formatDisplayDate(date)
		if len(state.OfferedDays) > 0 {
			date = state.OfferedDays[0].Date
			display = state.OfferedDays[0].DisplayDate
			if match == "" && len(state.OfferedDays[0].Slots) > 0 {
				slotTime = state.OfferedDays[0].Slots[0]
			}
		}

		state.Slot = &models.SelectedSlot{Date: date, Time: slotTime}
		state.Step = models.StepCustomerInfo
		return models.ChatResponse{
			Response: fmt.Sprintf("Great! I've reserved %s at %s for you.\n\nJust need your details:\n- Your full name\n- Phone number\n- Email (optional)\n\nPlease share them to complete your booking.", display, slotTime),
		}, nil

	case models.StepCustomerInfo:
		info := extractCustomerInfo(message)
		if info.Name == "" || info.Phone == "" {
			return models.ChatResponse{
				Response: "I need your contact details to complete the booking.\n\nPlease provide your full name and phone number, for example: \"My name is Sarah Wanjiku and my phone is 0712345678\".",
			}, nil
		}
		state.Customer = &info
		state.Step = models.StepConfirmation

		var b strings.Builder
		b.WriteString("Let me confirm your booking details:\n\n")
		fmt.Fprintf(&b, "Customer: %s\nPhone: %s\n", info.Name, info.Phone)
		if info.Email != "" {
			fmt.Fprintf(&b, "Email: %s\n", info.Email)
		}
		fmt.Fprintf(&b, "Service: %s\nStylist: %s\nDate & time: %s at %s\nPrice: KES %d - %d\n\nConfirm this booking?",
			state.Service.Name, state.Stylist.Name, formatDisplayDate(state.Slot.Date), state.Slot.Time,
			state.Service.Price.Min, state.Service.Price.Max)
		return models.ChatResponse{
			Response:    b.String(),
			Suggestions: []string{"Yes, confirm booking", "Make changes", "Cancel"},
		}, nil

	case models.StepConfirmation:
		switch {
		case intent == "confirmation" || strings.Contains(lower, "yes") || strings.Contains(lower, "confirm"):
			booking, err := s.Engine.AddBooking(ctx, models.BookingInput{
				CustomerName:  state.Customer.Name,
				CustomerPhone: state.Customer.Phone,
				CustomerEmail: state.Customer.Email,
				Service:       state.Service.Name,
				StylistName:   state.Stylist.Name,
				Date:          state.Slot.Date,
				Time:          state.Slot.Time,
				Status:        models.StatusConfirmed,
				Notes:         state.Notes,
				BookingMethod: models.MethodAIChat,
			})
			if err != nil {
				utils.GetLogger().Error("chat booking failed", zap.String("stylist", state.Stylist.Name), zap.Error(err))
				// Stay in confirmation so the customer can retry.
				return s.escalation("There was an issue creating your booking."), nil
			}
			state.Step = models.StepCompleted
			ref := booking.ID
			if len(ref) > 8 {
				ref = ref[len(ref)-8:]
			}
			return models.ChatResponse{
				Response: fmt.Sprintf("Booking confirmed!\n\nCongratulations %s, your appointment is booked.\n\nBooking ID: %s\n\nLocation:\n%s\n\nNeed to make changes? Call %s.\n\nWe can't wait to see you!",
					state.Customer.Name, strings.ToUpper(ref), config.AppConfig.SalonAddress, config.AppConfig.SalonPhone),
				Suggestions: []string{"Book another appointment", "Get directions"},
			}, nil

		case strings.Contains(lower, "change") || strings.Contains(lower, "back"):
			state.Step = models.StepServiceSelection
			return models.ChatResponse{
				Response:    "No problem! Let's make some changes to your booking.\n\nWhich part would you like to modify?",
				Suggestions: []string{"Change service", "Change stylist", "Change time", "Start over"},
			}, nil

		default:
			*state = *models.NewFlowState()
			return models.ChatResponse{
				Response:    "Booking cancelled, no worries! I'm here whenever you're ready to book.\n\nHow else can I help you today?",
				Suggestions: []string{"Book appointment", "View services", "Ask questions"},
			}, nil
		}

	default:
		*state = *models.NewFlowState()
		state.Step = models.StepServiceSelection
		return models.ChatResponse{
			Response:    "I'm here to help you book an appointment! Let's start fresh.\n\nWhat service would you like to book?",
			Suggestions: s.categorySuggestions(),
		}, nil
	}
}

// searchSlots scans the next week for open days, stopping once enough
// days with availability are found.
func (s *DefaultAssistantService) searchSlots(ctx context.Context, stylistID string, durationMinutes int) ([]models.DaySlots, error) {
	if durationMinutes <= 0 {
		durationMinutes = 60
	}
	var offered []models.DaySlots
	for i := 1; i <= slotSearchDays; i++ {
		day := s.now().AddDate(0, 0, i)
		date := day.Format("2006-01-02")
		slots, err := s.Engine.GetAvailableSlots(ctx, date, stylistID, durationMinutes)
		if err != nil {
			return nil, err
		}
		if len(slots) == 0 {
			continue
		}
		if len(slots) > slotsShownPerDay {
			slots = slots[:slotsShownPerDay]
		}
		offered = append(offered, models.DaySlots{
			Date:        date,
			DisplayDate: formatDisplayDate(date),
			Slots:       slots,
		})
		if len(offered) >= maxOfferedDays {
			break
		}
	}
	return offered, nil
}

func (s *DefaultAssistantService) escalation(lead string) models.ChatResponse {
	return models.ChatResponse{
		Response: fmt.Sprintf("%s\n\nPlease contact us directly:\nCall: %s\nWhatsApp: +%s\n\nOur team will help you right away!",
			lead, config.AppConfig.SalonPhone, config.AppConfig.SalonWhatsApp),
		Suggestions: []string{"Call now", "WhatsApp", "Try again"},
	}
}

func (s *DefaultAssistantService) categoryMenu() string {
	var b strings.Builder
	for _, cat := range s.Catalog.Categories() {
		min, max := 0, 0
		for _, svc := range s.Catalog.GetServicesByCategory(cat) {
			if min == 0 || svc.Price.Min < min {
				min = svc.Price.Min
			}
			if svc.Price.Max > max {
				max = svc.Price.Max
			}
		}
		fmt.Fprintf(&b, "- %s (KES %d - %d)\n", cat, min, max)
	}
	return b.String()
}

func (s *DefaultAssistantService) categorySuggestions() []string {
	return s.Catalog.Categories()
}

func extractCustomerInfo(message string) models.CustomerInfo {
	var info models.CustomerInfo
	if m := namePhraseRegex.FindStringSubmatch(message); m != nil {
		info.Name = m[1]
	} else if m := bareNameRegex.FindStringSubmatch(message); m != nil {
		info.Name = m[1]
	}
	if m := phoneRegex.FindStringSubmatch(message); m != nil {
		info.Phone = m[1]
	}
	if m := emailRegex.FindStringSubmatch(message); m != nil {
		info.Email = m[1]
	}
	// Phone digits swallowed by the loose name fallback are not a name.
	if info.Name != "" && info.Name == info.Phone {
		info.Name = ""
	}
	return info
}

func formatDisplayDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, Jan 2")
}

// infoReply answers non-booking questions from the salon profile.
func (s *DefaultAssistantService) infoReply(intent string) models.ChatResponse {
	cfg := config.AppConfig
	switch intent {
	case "greeting":
		return models.ChatResponse{
			Response:    fmt.Sprintf("Hello! Welcome to %s.\n\nI can help you:\n- Book appointments\n- Learn about our services\n- Meet our expert team\n- Get pricing information\n- Find our location\n\nHow can I make you look and feel amazing today?", cfg.SalonName),
			Suggestions: []string{"Book appointment", "View services", "Check prices", "Location info", "Meet the team"},
		}
	case "services":
		var b strings.Builder
		b.WriteString("Our expert services:\n")
		for _, cat := range s.Catalog.Categories() {
			fmt.Fprintf(&b, "\n%s:\n", cat)
			for _, svc := range s.Catalog.GetServicesByCategory(cat) {
				fmt.Fprintf(&b, "- %s (KES %d - %d)\n", svc.Name, svc.Price.Min, svc.Price.Max)
			}
		}
		b.WriteString("\nWhich service interests you most?")
		return models.ChatResponse{Response: b.String(), Suggestions: s.categorySuggestions()}
	case "pricing":
		return models.ChatResponse{
			Response:    fmt.Sprintf("%s pricing:\n\n%s\nPrices vary based on hair length and service complexity.\n\nReady to book your appointment?", cfg.SalonName, s.categoryMenu()),
			Suggestions: []string{"Book appointment", "View services", "Contact salon"},
		}
	case "staff":
		var b strings.Builder
		b.WriteString("Meet our expert team:\n\n")
		var suggestions []string
		for _, st := range s.Catalog.AllStaff() {
			fmt.Fprintf(&b, "%s (%s)\n- Specializes in: %s\n\n", st.Name, st.Role, strings.Join(st.Specialties, ", "))
			suggestions = append(suggestions, "Book with "+st.Name)
		}
		b.WriteString("Who would you like to book with?")
		return models.ChatResponse{Response: b.String(), Suggestions: suggestions}
	case "location":
		return models.ChatResponse{
			Response:    fmt.Sprintf("Visit %s:\n\n%s\n\nPhone: %s\nWhatsApp: available 24/7\n\nHours:\n%s", cfg.SalonName, cfg.SalonAddress, cfg.SalonPhone, cfg.SalonHours),
			Suggestions: []string{"Book appointment", "Call now", "WhatsApp"},
		}
	case "hours":
		return models.ChatResponse{
			Response:    fmt.Sprintf("%s hours:\n\n%s\n\nWe recommend booking in advance for the best availability. Ready to schedule your visit?", cfg.SalonName, cfg.SalonHours),
			Suggestions: []string{"Book appointment", "Check availability", "Call salon"},
		}
	default:
		return models.ChatResponse{
			Response:    fmt.Sprintf("I'm here to help you with %s!\n\nI can assist with:\n- Booking appointments\n- Service information\n- Meeting our stylists\n- Pricing details\n- Location and directions\n\nWhat would you like to know?", cfg.SalonName),
			Suggestions: []string{"Book appointment", "View services", "Meet team", "Check prices"},
		}
	}
}
