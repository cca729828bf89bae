package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vipqueens/config"
	"vipqueens/models"
	"vipqueens/services/catalog"
	"vipqueens/services/scheduling"
	"vipqueens/utils"
)

// Conversation stages.
const (
	StageGreeting         = "greeting"
	StageServiceDiscovery = "service_discovery"
	StageAvailability     = "availability_check"
	StageStaffSelection   = "staff_selection"
	StageCustomerDetails  = "customer_details"
	StageConfirmation     = "confirmation"
)

const maxHistoryMessages = 40

// serviceQueries maps extractor service keys to catalog lookup text.
var serviceQueries = map[string]string{
	"cut":       "haircut",
	"style":     "hair styling",
	"braids":    "hair braiding",
	"relaxer":   "hair relaxing",
	"treatment": "hair treatment",
	"manicure":  "manicure",
	"pedicure":  "pedicure",
}

// Service is the AI receptionist: stateful per-session chat that books
// appointments through the scheduling engine.
type Service interface {
	ProcessMessage(ctx context.Context, sessionID, message, phoneNumber string) (models.ChatResponse, error)
	ResetSession(ctx context.Context, sessionID string) error
}

// AIEngine keeps no per-session state of its own; everything lives in the
// ContextStore so any instance can serve any turn.
type AIEngine struct {
	Store     ContextStore
	Catalog   catalog.Service
	Scheduler scheduling.Engine
	Gemini    *GeminiClient

	now func() time.Time
}

func NewAIEngine(store ContextStore, cat catalog.Service, scheduler scheduling.Engine, gemini *GeminiClient) *AIEngine {
	return &AIEngine{
		Store:     store,
		Catalog:   cat,
		Scheduler: scheduler,
		Gemini:    gemini,
		now:       time.Now,
	}
}

func (e *AIEngine) ProcessMessage(ctx context.Context, sessionID, message, phoneNumber string) (models.ChatResponse, error) {
	convCtx, err := e.Store.Get(ctx, sessionID)
	if err != nil {
		utils.GetLogger().Error("context load failed", zap.String("sessionId", sessionID), zap.Error(err))
		return e.troubleReply(), nil
	}
	if convCtx == nil {
		convCtx = &models.ConversationContext{
			SessionID:  sessionID,
			CustomerID: phoneNumber,
			Stage:      StageGreeting,
			Language:   "en",
		}
	}

	ex := Extract(message)
	if ex.Language == "sw" {
		convCtx.Language = "sw"
	}
	e.rememberPreferences(convCtx, ex)

	convCtx.MessageHistory = append(convCtx.MessageHistory, models.ChatMessage{
		ID:        uuid.NewString(),
		Type:      "user",
		Content:   message,
		Timestamp: e.now(),
		Intent:    ex.Intent,
	})

	resp := e.respond(ctx, convCtx, message, ex)

	convCtx.MessageHistory = append(convCtx.MessageHistory, models.ChatMessage{
		ID:        uuid.NewString(),
		Type:      "bot",
		Content:   resp.Response,
		Timestamp: e.now(),
	})
	if len(convCtx.MessageHistory) > maxHistoryMessages {
		convCtx.MessageHistory = convCtx.MessageHistory[len(convCtx.MessageHistory)-maxHistoryMessages:]
	}
	convCtx.LastActivity = e.now()

	if err := e.Store.Set(ctx, convCtx); err != nil {
		utils.GetLogger().Error("context save failed", zap.String("sessionId", sessionID), zap.Error(err))
	}
	return resp, nil
}

// ResetSession discards the conversation context. Existing bookings are
// untouched.
func (e *AIEngine) ResetSession(ctx context.Context, sessionID string) error {
	return e.Store.Clear(ctx, sessionID)
}

func (e *AIEngine) respond(ctx context.Context, convCtx *models.ConversationContext, message string, ex Extraction) models.ChatResponse {
	switch convCtx.Stage {
	case StageServiceDiscovery:
		return e.handleServiceDiscovery(convCtx, message, ex)
	case StageAvailability:
		return e.handleAvailability(ctx, convCtx, ex)
	case StageStaffSelection:
		return e.handleStaffSelection(convCtx, message, ex)
	case StageCustomerDetails:
		return e.handleCustomerDetails(convCtx, message)
	case StageConfirmation:
		return e.handleConfirmation(ctx, convCtx, message)
	default:
		return e.handleGreeting(ctx, convCtx, message, ex)
	}
}

func (e *AIEngine) handleGreeting(ctx context.Context, convCtx *models.ConversationContext, message string, ex Extraction) models.ChatResponse {
	switch ex.Intent {
	case IntentBooking, IntentServices:
		if svc, ok := e.resolveService(ex.Services); ok {
			e.selectService(convCtx, svc)
			return models.ChatResponse{
				Response: fmt.Sprintf("Perfect! I can help you book %s. This service takes %s and costs KES %d - %d.\n\nWhat date would you prefer for your appointment?",
					svc.Name, svc.Duration, svc.Price.Min, svc.Price.Max),
				Suggestions: []string{"Today", "Tomorrow", "This Weekend"},
			}
		}
		convCtx.Stage = StageServiceDiscovery
		return models.ChatResponse{
			Response:    "I'd be happy to help you book an appointment!\n\nWe offer these popular services:\n" + e.serviceMenu() + "\nWhich service interests you?",
			Suggestions: []string{"Haircut", "Braiding", "Treatment", "See All Services"},
		}

	case IntentPricing:
		return models.ChatResponse{
			Response:    "Here are our service prices:\n\n" + e.priceList() + "\nWould you like to book any of these services?",
			Suggestions: []string{"Book Haircut", "Book Braiding", "More Info", "Call Salon"},
		}

	case IntentLocation:
		cfg := config.AppConfig
		return models.ChatResponse{
			Response:    fmt.Sprintf("You'll find %s at:\n\n%s\n\nCall %s or WhatsApp +%s for directions.", cfg.SalonName, cfg.SalonAddress, cfg.SalonPhone, cfg.SalonWhatsApp),
			Suggestions: []string{"Book Appointment", "Call Salon"},
		}

	case IntentAvailability:
		convCtx.Stage = StageServiceDiscovery
		return models.ChatResponse{
			Response:    "Happy to check availability! First, which service would you like?\n\n" + e.serviceMenu(),
			Suggestions: []string{"Haircut", "Braiding", "Treatment"},
		}

	case IntentGeneral:
		if e.Gemini != nil {
			if answer, err := e.Gemini.AnswerInquiry(ctx, message); err == nil {
				return models.ChatResponse{
					Response:    answer,
					Suggestions: []string{"Book Appointment", "View Services", "Check Prices"},
				}
			} else {
				utils.GetLogger().Warn("gemini inquiry failed", zap.Error(err))
			}
		}
	}

	return models.ChatResponse{
		Response:    fmt.Sprintf("%s! Welcome to %s!\n\nI'm here to help you book an appointment or answer questions about our services.\n\nWe specialize in:\n- Professional haircuts and styling\n- Beautiful braiding\n- Hair treatments and relaxing\n- Nail services\n\nHow can I assist you today?", e.timeOfDayGreeting(), config.AppConfig.SalonName),
		Suggestions: []string{"Book Appointment", "View Services", "Check Prices", "Location Info"},
	}
}

func (e *AIEngine) handleServiceDiscovery(convCtx *models.ConversationContext, message string, ex Extraction) models.ChatResponse {
	svc, ok := e.resolveService(ex.Services)
	if !ok {
		svc, ok = e.fuzzyResolveService(message)
	}
	if !ok {
		return models.ChatResponse{
			Response:    "I want to make sure I understand exactly what you're looking for!\n\nCould you tell me more about the service you want? For example:\n- \"I want a haircut\"\n- \"I need braiding\"\n- \"Hair treatment\"",
			Suggestions: []string{"Haircut & Styling", "Hair Braiding", "Hair Treatment", "All Services"},
		}
	}

	e.selectService(convCtx, svc)
	return models.ChatResponse{
		Response: fmt.Sprintf("Excellent choice! %s is one of our popular services.\n\nDuration: %s\nPrice: KES %d - %d\n%s\n\nWhat date would work best for you?",
			svc.Name, svc.Duration, svc.Price.Min, svc.Price.Max, svc.Description),
		Suggestions: []string{"Today", "Tomorrow", "This Weekend", "Different Service"},
	}
}

func (e *AIEngine) handleAvailability(ctx context.Context, convCtx *models.ConversationContext, ex Extraction) models.ChatResponse {
	date := e.now().Format("2006-01-02")
	if len(ex.Dates) > 0 {
		date = ResolveDate(ex.Dates[0], e.now())
	}
	convCtx.Booking.Date = date

	options := e.slotOptions(ctx, convCtx, date)
	if len(options) == 0 {
		return models.ChatResponse{
			Response:    fmt.Sprintf("I'm sorry, we don't have any open slots for %s on %s.\n\nWould you like to try a different date?", convCtx.Booking.ServiceName, formatLongDate(date)),
			Suggestions: []string{"Tomorrow", "This Weekend", "Call Salon"},
		}
	}

	shown := options
	if len(ex.DayParts) > 0 {
		if filtered := filterByDayPart(options, ex.DayParts[0]); len(filtered) > 0 {
			shown = filtered
		} else {
			var b strings.Builder
			for _, opt := range options {
				fmt.Fprintf(&b, "- %s with %s\n", opt.time, opt.staffName)
			}
			return models.ChatResponse{
				Response:    fmt.Sprintf("We don't have slots during your preferred time on %s.\n\nHere is what's open:\n%s\nWhich time works for you?", formatLongDate(date), b.String()),
				Suggestions: slotSuggestions(options),
			}
		}
	}

	convCtx.Stage = StageStaffSelection
	var b strings.Builder
	for _, opt := range shown {
		fmt.Fprintf(&b, "- %s with %s\n", opt.time, opt.staffName)
	}
	return models.ChatResponse{
		Response:    fmt.Sprintf("Great! Here are available times for %s on %s:\n\n%s\nWhich stylist and time would you prefer?", convCtx.Booking.ServiceName, formatLongDate(date), b.String()),
		Suggestions: slotSuggestions(shown),
	}
}

func (e *AIEngine) handleStaffSelection(convCtx *models.ConversationContext, message string, ex Extraction) models.ChatResponse {
	staff, staffOK := e.resolveStaff(ex.Staff)
	if !staffOK && strings.Contains(strings.ToLower(message), "any") {
		if candidates := e.Catalog.GetStaffBySpecialty(convCtx.Booking.ServiceCategory); len(candidates) > 0 {
			staff, staffOK = candidates[0], true
		}
	}

	if len(ex.Times) > 0 && staffOK {
		convCtx.Booking.Time = ex.Times[0]
		convCtx.Booking.StaffID = staff.ID
		convCtx.Booking.StaffName = staff.Name
		convCtx.Stage = StageCustomerDetails
		return models.ChatResponse{
			Response: fmt.Sprintf("Perfect! I have you down for:\n\nService: %s\nTime: %s\nStylist: %s\nPrice: from KES %d\n\nTo confirm your appointment I'll need your full name and phone number.\n\nWhat name should I put the appointment under?",
				convCtx.Booking.ServiceName, convCtx.Booking.Time, staff.Name, convCtx.Booking.Price),
		}
	}

	return models.ChatResponse{
		Response:    "Please tell me the time and stylist together, for example:\n- \"2:00 PM with Catherine\"\n- \"10:00 AM with any stylist\"",
		Suggestions: []string{"Show Times Again", "Any Stylist", "Call to Book"},
	}
}

func (e *AIEngine) handleCustomerDetails(convCtx *models.ConversationContext, message string) models.ChatResponse {
	if convCtx.Booking.CustomerName == "" {
		name := strings.TrimSpace(message)
		if len(name) < 2 || !isNameLike(name) {
			return models.ChatResponse{
				Response: "Please provide your full name (first and last name) for the appointment:",
			}
		}
		convCtx.Booking.CustomerName = name
		convCtx.Memory.Name = name
		return models.ChatResponse{
			Response: fmt.Sprintf("Thank you, %s!\n\nNow I need your phone number for appointment confirmation and reminders. Please share your mobile number:", name),
		}
	}

	phone := kenyanPhoneRegex.FindString(message)
	if phone == "" {
		return models.ChatResponse{
			Response: "Please provide a valid Kenyan phone number (e.g. 0712345678 or +254712345678):",
		}
	}
	convCtx.Booking.CustomerPhone = phone
	convCtx.Memory.Phone = phone
	convCtx.Stage = StageConfirmation

	d := convCtx.Booking
	return models.ChatResponse{
		Response: fmt.Sprintf("Here's your booking summary:\n\nService: %s\nDate: %s\nTime: %s\nStylist: %s\nCustomer: %s\nPhone: %s\nPrice: from KES %d\n\nLocation: %s\n\nIs everything correct? Reply CONFIRM to book your appointment!",
			d.ServiceName, formatLongDate(d.Date), d.Time, d.StaffName, d.CustomerName, d.CustomerPhone, d.Price, config.AppConfig.SalonAddress),
		Suggestions: []string{"CONFIRM", "Change Time", "Change Service", "Start Over"},
	}
}

func (e *AIEngine) handleConfirmation(ctx context.Context, convCtx *models.ConversationContext, message string) models.ChatResponse {
	lower := strings.ToLower(message)
	if !strings.Contains(lower, "confirm") && !strings.Contains(lower, "yes") &&
		!strings.Contains(lower, "sawa") && !strings.Contains(lower, "ndiyo") {
		if strings.Contains(lower, "change") || strings.Contains(lower, "start over") {
			convCtx.Booking = models.BookingDraft{}
			convCtx.Stage = StageServiceDiscovery
			return models.ChatResponse{
				Response:    "No problem, let's adjust it. Which service would you like?",
				Suggestions: []string{"Haircut", "Braiding", "Treatment"},
			}
		}
		return models.ChatResponse{
			Response:    "To confirm your appointment, please reply CONFIRM, or let me know what you'd like to change:",
			Suggestions: []string{"CONFIRM", "Change Details", "Start Over"},
		}
	}

	d := convCtx.Booking
	booking, err := e.Scheduler.AddBooking(ctx, models.BookingInput{
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		Service:       d.ServiceName,
		StylistID:     d.StaffID,
		StylistName:   d.StaffName,
		Date:          d.Date,
		Time:          d.Time,
		Status:        models.StatusConfirmed,
		Notes:         "Booked via AI chat assistant",
		BookingMethod: models.MethodAIChat,
	})
	if err != nil {
		utils.GetLogger().Error("ai booking failed",
			zap.String("sessionId", convCtx.SessionID),
			zap.String("code", scheduling.ErrorCode(err)),
			zap.Error(err))
		return models.ChatResponse{
			Response: fmt.Sprintf("I'm sorry, there was an issue confirming your appointment. That slot may have just been taken.\n\nPlease try a different time, or call us directly at %s.",
				config.AppConfig.SalonPhone),
			Suggestions: []string{"Different Time", "Call Salon", "WhatsApp"},
		}
	}

	cfg := config.AppConfig
	convCtx.Memory.PreferredService = d.ServiceName
	convCtx.Memory.PreferredStylist = d.StaffName
	convCtx.Booking = models.BookingDraft{}
	convCtx.Stage = StageGreeting

	return models.ChatResponse{
		Response: fmt.Sprintf("APPOINTMENT CONFIRMED!\n\nBooking reference: %s\n\nService: %s\nDate: %s\nTime: %s\nStylist: %s\nPrice: KES %d\n\n%s\n%s\nPhone: %s\n\nPlease arrive 10 minutes early. To reschedule or cancel, call us or WhatsApp.\n\nThank you for choosing %s! We can't wait to see you!",
			booking.ID, booking.Service, formatLongDate(booking.Date), booking.Time, booking.StylistName, booking.Price,
			cfg.SalonName, cfg.SalonAddress, cfg.SalonPhone, cfg.SalonName),
		Suggestions: []string{"Get Directions", "Book Another", "Call Salon"},
	}
}

type slotOption struct {
	time      string
	staffID   string
	staffName string
}

// slotOptions collects open slots across every stylist qualified for the
// drafted service.
func (e *AIEngine) slotOptions(ctx context.Context, convCtx *models.ConversationContext, date string) []slotOption {
	var out []slotOption
	for _, st := range e.Catalog.GetStaffBySpecialty(convCtx.Booking.ServiceCategory) {
		slots, err := e.Scheduler.GetAvailableSlots(ctx, date, st.ID, convCtx.Booking.DurationMinutes)
		if err != nil {
			utils.GetLogger().Warn("availability lookup failed", zap.String("staffId", st.ID), zap.Error(err))
			continue
		}
		for _, slot := range slots {
			out = append(out, slotOption{time: slot, staffID: st.ID, staffName: st.Name})
		}
	}
	return out
}

func filterByDayPart(options []slotOption, daypart string) []slotOption {
	bucket := BucketTimes(daypart)
	var out []slotOption
	for _, opt := range options {
		for _, t := range bucket {
			if opt.time == t {
				out = append(out, opt)
				break
			}
		}
	}
	return out
}

func slotSuggestions(options []slotOption) []string {
	var out []string
	for _, opt := range options {
		out = append(out, fmt.Sprintf("%s with %s", opt.time, opt.staffName))
		if len(out) == 4 {
			break
		}
	}
	return out
}

// resolveService maps ranked extractor candidates onto catalog services,
// taking the best one that actually resolves.
func (e *AIEngine) resolveService(candidates []Candidate) (models.Service, bool) {
	for _, c := range candidates {
		query, ok := serviceQueries[c.Value]
		if !ok {
			query = c.Value
		}
		if svc, found := e.Catalog.FindService(query); found {
			return svc, true
		}
	}
	return models.Service{}, false
}

// fuzzyResolveService tolerates typos: each word of the message is scored
// against every synonym and the best hit above the threshold wins.
func (e *AIEngine) fuzzyResolveService(message string) (models.Service, bool) {
	lower := strings.ToLower(message)
	bestScore := similarityThreshold
	bestKey := ""
	for _, word := range strings.Fields(lower) {
		for key, synonyms := range serviceSynonyms {
			for _, syn := range append([]string{key}, synonyms...) {
				if s := similarity(word, syn); s > bestScore {
					bestScore = s
					bestKey = key
				}
			}
		}
	}
	if bestKey == "" {
		return models.Service{}, false
	}
	return e.Catalog.FindService(serviceQueries[bestKey])
}

func (e *AIEngine) resolveStaff(candidates []Candidate) (models.Staff, bool) {
	for _, c := range candidates {
		if st, ok := e.Catalog.StaffByName(c.Value); ok {
			return st, true
		}
	}
	return models.Staff{}, false
}

func (e *AIEngine) selectService(convCtx *models.ConversationContext, svc models.Service) {
	convCtx.Booking.ServiceID = svc.ID
	convCtx.Booking.ServiceName = svc.Name
	convCtx.Booking.ServiceCategory = svc.Category
	convCtx.Booking.Price = svc.Price.Min
	convCtx.Booking.Duration = svc.Duration
	convCtx.Booking.DurationMinutes = svc.DurationMinutes
	convCtx.Stage = StageAvailability
}

func (e *AIEngine) rememberPreferences(convCtx *models.ConversationContext, ex Extraction) {
	if len(ex.Services) > 0 {
		if svc, ok := e.resolveService(ex.Services); ok {
			convCtx.Memory.PreferredService = svc.Name
		}
	}
	if len(ex.Staff) > 0 {
		if st, ok := e.resolveStaff(ex.Staff); ok {
			convCtx.Memory.PreferredStylist = st.Name
		}
	}
}

func (e *AIEngine) serviceMenu() string {
	var b strings.Builder
	for _, cat := range e.Catalog.Categories() {
		services := e.Catalog.GetServicesByCategory(cat)
		if len(services) == 0 {
			continue
		}
		fmt.Fprintf(&b, "- %s - from KES %d\n", cat, services[0].Price.Min)
	}
	return b.String()
}

func (e *AIEngine) priceList() string {
	var b strings.Builder
	for _, cat := range e.Catalog.Categories() {
		fmt.Fprintf(&b, "%s:\n", cat)
		for _, svc := range e.Catalog.GetServicesByCategory(cat) {
			fmt.Fprintf(&b, "- %s - KES %d - %d\n", svc.Name, svc.Price.Min, svc.Price.Max)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (e *AIEngine) timeOfDayGreeting() string {
	switch hour := e.now().Hour(); {
	case hour < 12:
		return "Good morning"
	case hour < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func (e *AIEngine) troubleReply() models.ChatResponse {
	return models.ChatResponse{
		Response: fmt.Sprintf("I'm sorry, I'm having trouble right now. Please call us at %s or WhatsApp +%s for immediate assistance.",
			config.AppConfig.SalonPhone, config.AppConfig.SalonWhatsApp),
		Suggestions: []string{"Call Now", "Try Again"},
	}
}

func formatLongDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}
