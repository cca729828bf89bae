package assistant

import (
	"context"
	"strings"
	"testing"
	"time"

	"vipqueens/config"
	bookingRepo "vipqueens/database/repository/booking"
	"vipqueens/models"
	"vipqueens/services/catalog"
	"vipqueens/services/scheduling"
)

func TestMain(m *testing.M) {
	config.AppConfig.SalonName = "VIP Queens Salon"
	config.AppConfig.SalonAddress = "Ronald Ngala Street, RNG Plaza 2nd floor S41, Nairobi, Kenya"
	config.AppConfig.SalonPhone = "0718 779 129"
	config.AppConfig.SalonWhatsApp = "254718779129"
	config.AppConfig.SalonHours = "Mon-Sat: 6:00 AM - 10:00 PM, Sun: 9:00 AM - 6:00 PM"
	m.Run()
}

// newTestAssistant pins the clock to Sunday 2025-06-01 so the slot search
// always starts on Monday 2025-06-02.
func newTestAssistant() (*DefaultAssistantService, scheduling.Engine) {
	cat := catalog.NewDefaultCatalogService()
	engine := scheduling.NewDefaultSchedulingEngine(bookingRepo.NewMemoryBookingRepo(), cat)
	svc := NewDefaultAssistantService(cat, engine)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc, engine
}

func TestBookingIntentOpensServiceMenu(t *testing.T) {
	svc, _ := newTestAssistant()
	state := models.NewFlowState()

	resp, err := svc.HandleMessage(context.Background(), state, "I want to book an appointment")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if state.Step != models.StepServiceSelection {
		t.Fatalf("step = %q, want service_selection", state.Step)
	}
	if !strings.Contains(resp.Response, "Hair Braiding") {
		t.Errorf("service menu missing categories: %q", resp.Response)
	}
}

func TestUnknownServiceReprompts(t *testing.T) {
	svc, _ := newTestAssistant()
	state := models.NewFlowState()
	state.Step = models.StepServiceSelection

	_, err := svc.HandleMessage(context.Background(), state, "something mysterious")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if state.Step != models.StepServiceSelection {
		t.Errorf("unresolved service must not advance, step = %q", state.Step)
	}
	if state.Service != nil {
		t.Error("no service should be recorded")
	}
}

func TestServiceSelectionListsSpecialists(t *testing.T) {
	svc, _ := newTestAssistant()
	state := models.NewFlowState()
	state.Step = models.StepServiceSelection

	resp, err := svc.HandleMessage(context.Background(), state, "box braids please")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if state.Step != models.StepStylistSelection {
		t.Fatalf("step = %q, want stylist_selection", state.Step)
	}
	if state.Service == nil || state.Service.Name != "Box Braids" {
		t.Fatalf("service = %+v", state.Service)
	}
	if !strings.Contains(resp.Response, "Ann") {
		t.Errorf("braiding specialist missing from reply: %q", resp.Response)
	}
}

func TestStylistSelectionOffersDatedSlots(t *testing.T) {
	svc, _ := newTestAssistant()
	state := models.NewFlowState()
	state.Step = models.StepServiceSelection

	ctx := context.Background()
	if _, err := svc.HandleMessage(ctx, state, "hair braiding"); err != nil {
		t.Fatalf("service selection failed: %v", err)
	}
	if _, err := svc.HandleMessage(ctx, state, "Ann"); err != nil {
		t.Fatalf("stylist selection failed: %v", err)
	}
	if state.Step != models.StepSlotSelection {
		t.Fatalf("step = %q, want slot_selection", state.Step)
	}
	if len(state.OfferedDays) != 3 {
		t.Fatalf("offered days = %d, want 3", len(state.OfferedDays))
	}
	if state.OfferedDays[0].Date != "2025-06-02" {
		t.Errorf("first offered date = %q, want Monday 2025-06-02", state.OfferedDays[0].Date)
	}
	if len(state.OfferedDays[0].Slots) != 3 {
		t.Errorf("slots per day = %d, want 3", len(state.OfferedDays[0].Slots))
	}
}

func TestSlotSelectionThreadsOfferedDate(t *testing.T) {
	svc, _ := newTestAssistant()
	state := models.NewFlowState()
	state.Step = models.StepServiceSelection
	ctx := context.Background()

	for _, msg := range []string{"hair braiding", "Ann"} {
		if _, err := svc.HandleMessage(ctx, state, msg); err != nil {
			t.Fatalf("setup turn %q failed: %v", msg, err)
		}
	}

	if _, err := svc.HandleMessage(ctx, state, "8am works"); err != nil {
		t.Fatalf("slot turn failed: %v", err)
	}
	if state.Step != models.StepCustomerInfo {
		t.Fatalf("step = %q, want customer_info", state.Step)
	}
	// The reserved date is the first day shown, not a blind "tomorrow".
	if state.Slot.Date != state.OfferedDays[0].Date {
		t.Errorf("slot date = %q, want offered %q", state.Slot.Date, state.OfferedDays[0].Date)
	}
	if state.Slot.Time != "8:00 AM" {
		t.Errorf("slot time = %q, want normalized 8:00 AM", state.Slot.Time)
	}
}

func TestCustomerInfoRequiresNameAndPhone(t *testing.T) {
	svc, _ := newTestAssistant()
	state := models.NewFlowState()
	state.Step = models.StepCustomerInfo
	state.Service = &models.Service{Name: "Box Braids", Category: "Hair Braiding", Price: models.PriceRange{Min: 3000, Max: 6000}}
	state.Stylist = &models.Staff{ID: "staff_3", Name: "Ann"}
	state.Slot = &models.SelectedSlot{Date: "2025-06-02", Time: "8:00 AM"}

	ctx := context.Background()
	if _, err := svc.HandleMessage(ctx, state, "just the name Sarah"); err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if state.Step != models.StepCustomerInfo {
		t.Fatalf("missing phone must not advance, step = %q", state.Step)
	}

	resp, err := svc.HandleMessage(ctx, state, "My name is Sarah Wanjiku and my phone is 0712345678")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if state.Step != models.StepConfirmation {
		t.Fatalf("step = %q, want confirmation", state.Step)
	}
	if state.Customer.Name != "Sarah Wanjiku" || state.Customer.Phone != "0712345678" {
		t.Errorf("customer = %+v", state.Customer)
	}
	if !strings.Contains(resp.Response, "Confirm this booking?") {
		t.Errorf("expected confirmation summary, got %q", resp.Response)
	}
}

func TestFullBookingConversation(t *testing.T) {
	svc, engine := newTestAssistant()
	state := models.NewFlowState()
	ctx := context.Background()

	turns := []string{
		"I want to book hair braiding",
		"Ann",
		"first available",
		"My name is Sarah Wanjiku and my phone is 0712345678",
		"yes confirm",
	}
	var last models.ChatResponse
	for _, msg := range turns {
		resp, err := svc.HandleMessage(ctx, state, msg)
		if err != nil {
			t.Fatalf("turn %q failed: %v", msg, err)
		}
		last = resp
	}

	if state.Step != models.StepCompleted {
		t.Fatalf("final step = %q, want completed", state.Step)
	}
	if !strings.Contains(last.Response, "Booking confirmed") {
		t.Errorf("missing receipt: %q", last.Response)
	}

	all, err := engine.ListBookings(ctx, "", "")
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("booking count = %d, want 1", len(all))
	}
	booked := all[0]
	if booked.ServiceCategory != "Hair Braiding" {
		t.Errorf("category = %q", booked.ServiceCategory)
	}
	if booked.Status != models.StatusConfirmed {
		t.Errorf("status = %q", booked.Status)
	}
	if booked.BookingMethod != models.MethodAIChat {
		t.Errorf("method = %q", booked.BookingMethod)
	}
	if booked.CustomerName != "Sarah Wanjiku" {
		t.Errorf("customer = %q", booked.CustomerName)
	}
}

func TestConfirmationChangeReturnsToServiceSelection(t *testing.T) {
	svc, _ := newTestAssistant()
	state := models.NewFlowState()
	state.Step = models.StepConfirmation
	state.Service = &models.Service{Name: "Box Braids", Category: "Hair Braiding"}
	state.Stylist = &models.Staff{ID: "staff_3", Name: "Ann"}
	state.Slot = &models.SelectedSlot{Date: "2025-06-02", Time: "8:00 AM"}
	state.Customer = &models.CustomerInfo{Name: "Sarah", Phone: "0712345678"}

	if _, err := svc.HandleMessage(context.Background(), state, "I want to make changes"); err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if state.Step != models.StepServiceSelection {
		t.Errorf("step = %q, want service_selection", state.Step)
	}
}

func TestConfirmationDeclineResets(t *testing.T) {
	svc, _ := newTestAssistant()
	state := models.NewFlowState()
	state.Step = models.StepConfirmation
	state.Service = &models.Service{Name: "Box Braids", Category: "Hair Braiding"}
	state.Stylist = &models.Staff{ID: "staff_3", Name: "Ann"}
	state.Slot = &models.SelectedSlot{Date: "2025-06-02", Time: "8:00 AM"}
	state.Customer = &models.CustomerInfo{Name: "Sarah", Phone: "0712345678"}

	if _, err := svc.HandleMessage(context.Background(), state, "never mind"); err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if state.Step != models.StepGreeting {
		t.Errorf("step = %q, want greeting", state.Step)
	}
	if state.Service != nil || state.Slot != nil {
		t.Error("declined flow must discard accumulated fields")
	}
}

func TestBookingFailureStaysInConfirmation(t *testing.T) {
	svc, engine := newTestAssistant()
	ctx := context.Background()

	// Occupy the slot ahead of the conversation.
	_, err := engine.AddBooking(ctx, models.BookingInput{
		CustomerName:  "Earlier Customer",
		CustomerPhone: "0798765432",
		Service:       "Box Braids",
		StylistName:   "Ann",
		Date:          "2025-06-02",
		Time:          "8:00 AM",
		BookingMethod: models.MethodWebsite,
	})
	if err != nil {
		t.Fatalf("setup booking failed: %v", err)
	}

	state := models.NewFlowState()
	state.Step = models.StepConfirmation
	box, _ := svc.Catalog.ServiceByName("Box Braids")
	ann, _ := svc.Catalog.StaffByID("staff_3")
	state.Service = &box
	state.Stylist = &ann
	state.Slot = &models.SelectedSlot{Date: "2025-06-02", Time: "8:00 AM"}
	state.Customer = &models.CustomerInfo{Name: "Sarah Wanjiku", Phone: "0712345678"}

	resp, err := svc.HandleMessage(ctx, state, "yes confirm")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if state.Step != models.StepConfirmation {
		t.Errorf("failed write must not advance, step = %q", state.Step)
	}
	if !strings.Contains(resp.Response, config.AppConfig.SalonPhone) {
		t.Errorf("escalation must include the phone line: %q", resp.Response)
	}
}

func TestResetDiscardsFlowState(t *testing.T) {
	svc, _ := newTestAssistant()
	state := models.NewFlowState()
	state.Step = models.StepSlotSelection
	state.Service = &models.Service{Name: "Box Braids"}

	if _, err := svc.HandleMessage(context.Background(), state, "start over"); err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if state.Step != models.StepGreeting || state.Service != nil {
		t.Errorf("reset must return to a fresh greeting state, got %+v", state)
	}
}

func TestDetectIntent(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"I want to book an appointment", "booking"},
		{"what are your prices", "pricing"},
		{"where are you located", "location"},
		{"hello there", "greeting"},
		{"yes confirm", "confirmation"},
		{"start over", "reset"},
		{"tell me about catherine", "staff"},
		{"random message xyz", "general"},
	}
	for _, tc := range cases {
		if got := detectIntent(tc.message); got != tc.want {
			t.Errorf("detectIntent(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestExtractCustomerInfo(t *testing.T) {
	cases := []struct {
		message   string
		wantName  string
		wantPhone string
		wantEmail string
	}{
		{"My name is Sarah Wanjiku and my phone is 0712345678", "Sarah Wanjiku", "0712345678", ""},
		{"I'm Grace, 0734567890, grace@example.com", "Grace", "0734567890", "grace@example.com"},
		{"Sarah Wanjiku +254712345678", "Sarah Wanjiku", "+254712345678", ""},
		{"0712345678", "", "0712345678", ""},
	}
	for _, tc := range cases {
		got := extractCustomerInfo(tc.message)
		if got.Name != tc.wantName || got.Phone != tc.wantPhone || got.Email != tc.wantEmail {
			t.Errorf("extractCustomerInfo(%q) = %+v", tc.message, got)
		}
	}
}
