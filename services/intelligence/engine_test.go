package intelligence

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

// Sunday 2025-06-01; "tomorrow" is Monday, a working day for every stylist.
var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestAIEngine() (*AIEngine, scheduling.Engine, *MemoryContextStore) {
	cat := catalog.NewDefaultCatalogService()
	scheduler := scheduling.NewDefaultSchedulingEngine(bookingRepo.NewMemoryBookingRepo(), cat)
	store := NewMemoryContextStore()
	engine := NewAIEngine(store, cat, scheduler, nil)
	engine.now = func() time.Time { return testNow }
	return engine, scheduler, store
}

func TestGreetingReply(t *testing.T) {
	engine, _, _ := newTestAIEngine()

	resp, err := engine.ProcessMessage(context.Background(), "s1", "habari", "")
	if err != nil {
		t.Fatalf("ProcessMessage failed: %v", err)
	}
	if !strings.Contains(resp.Response, config.AppConfig.SalonName) {
		t.Errorf("greeting must name the salon: %q", resp.Response)
	}
}

func TestBookingWithServiceSkipsDiscovery(t *testing.T) {
	engine, _, store := newTestAIEngine()
	ctx := context.Background()

	resp, err := engine.ProcessMessage(ctx, "s1", "I want to book braids", "")
	if err != nil {
		t.Fatalf("ProcessMessage failed: %v", err)
	}
	if !strings.Contains(resp.Response, "Box Braids") {
		t.Errorf("expected the braiding service to be recognized: %q", resp.Response)
	}

	convCtx, err := store.Get(ctx, "s1")
	if err != nil || convCtx == nil {
		t.Fatalf("context not persisted: %v", err)
	}
	if convCtx.Stage != StageAvailability {
		t.Errorf("stage = %q, want availability_check", convCtx.Stage)
	}
	if convCtx.Booking.ServiceCategory != "Hair Braiding" {
		t.Errorf("draft category = %q", convCtx.Booking.ServiceCategory)
	}
}

func TestFullConversationBooksAppointment(t *testing.T) {
	engine, scheduler, store := newTestAIEngine()
	ctx := context.Background()

	turns := []string{
		"I want to book braids",
		"tomorrow",
		"10:00 AM with Ann",
		"Mary Wanjiku",
		"0712345678",
		"CONFIRM",
	}
	var last models.ChatResponse
	for _, msg := range turns {
		resp, err := engine.ProcessMessage(ctx, "s1", msg, "")
		if err != nil {
			t.Fatalf("turn %q failed: %v", msg, err)
		}
		last = resp
	}

	if !strings.Contains(last.Response, "APPOINTMENT CONFIRMED") {
		t.Fatalf("missing confirmation receipt: %q", last.Response)
	}

	all, err := scheduler.ListBookings(ctx, "2025-06-02", "")
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("booking count = %d, want 1", len(all))
	}
	booked := all[0]
	if booked.Service != "Box Braids" || booked.StylistName != "Ann" {
		t.Errorf("booked %q with %q", booked.Service, booked.StylistName)
	}
	if booked.Time != "10:00 AM" {
		t.Errorf("time = %q", booked.Time)
	}
	if booked.BookingMethod != models.MethodAIChat {
		t.Errorf("method = %q", booked.BookingMethod)
	}
	if booked.CustomerName != "Mary Wanjiku" || booked.CustomerPhone != "0712345678" {
		t.Errorf("customer = %q / %q", booked.CustomerName, booked.CustomerPhone)
	}

	// The draft resets but the customer memory survives for next time.
	convCtx, _ := store.Get(ctx, "s1")
	if convCtx.Stage != StageGreeting {
		t.Errorf("post-booking stage = %q", convCtx.Stage)
	}
	if convCtx.Booking.ServiceName != "" {
		t.Errorf("draft not cleared: %+v", convCtx.Booking)
	}
	if convCtx.Memory.Name != "Mary Wanjiku" || convCtx.Memory.PreferredStylist != "Ann" {
		t.Errorf("memory = %+v", convCtx.Memory)
	}
}

func TestInvalidPhoneReprompts(t *testing.T) {
	engine, _, store := newTestAIEngine()
	ctx := context.Background()

	for _, msg := range []string{"book braids", "tomorrow", "10:00 AM with Ann", "Mary Wanjiku"} {
		if _, err := engine.ProcessMessage(ctx, "s1", msg, ""); err != nil {
			t.Fatalf("turn %q failed: %v", msg, err)
		}
	}

	resp, err := engine.ProcessMessage(ctx, "s1", "12345", "")
	if err != nil {
		t.Fatalf("ProcessMessage failed: %v", err)
	}
	if !strings.Contains(resp.Response, "valid Kenyan phone number") {
		t.Errorf("expected phone re-prompt: %q", resp.Response)
	}
	convCtx, _ := store.Get(ctx, "s1")
	if convCtx.Stage != StageCustomerDetails {
		t.Errorf("stage = %q, must not advance on bad phone", convCtx.Stage)
	}
}

func TestConfirmFailureKeepsStage(t *testing.T) {
	engine, scheduler, store := newTestAIEngine()
	ctx := context.Background()

	// Take the slot before the chat confirms it.
	if _, err := scheduler.AddBooking(ctx, models.BookingInput{
		CustomerName:  "Walk In",
		CustomerPhone: "0798765432",
		Service:       "Box Braids",
		StylistName:   "Ann",
		Date:          "2025-06-02",
		Time:          "10:00 AM",
		BookingMethod: models.MethodWebsite,
	}); err != nil {
		t.Fatalf("setup booking failed: %v", err)
	}

	for _, msg := range []string{"book braids", "tomorrow", "11:00 AM with Ann", "Mary Wanjiku", "0712345678"} {
		if _, err := engine.ProcessMessage(ctx, "s1", msg, ""); err != nil {
			t.Fatalf("turn %q failed: %v", msg, err)
		}
	}
	// 11:00 AM collides with the 4-hour walk-in appointment.
	resp, err := engine.ProcessMessage(ctx, "s1", "CONFIRM", "")
	if err != nil {
		t.Fatalf("ProcessMessage failed: %v", err)
	}
	if !strings.Contains(resp.Response, config.AppConfig.SalonPhone) {
		t.Errorf("failure reply must offer the phone line: %q", resp.Response)
	}
	convCtx, _ := store.Get(ctx, "s1")
	if convCtx.Stage != StageConfirmation {
		t.Errorf("stage = %q, failed booking must not advance", convCtx.Stage)
	}
}

func TestFuzzyServiceMatch(t *testing.T) {
	engine, _, store := newTestAIEngine()
	ctx := context.Background()

	if _, err := engine.ProcessMessage(ctx, "s1", "I want to book something", ""); err != nil {
		t.Fatalf("first turn failed: %v", err)
	}
	// Typo in "braiding" still resolves through edit-distance matching.
	resp, err := engine.ProcessMessage(ctx, "s1", "braidng", "")
	if err != nil {
		t.Fatalf("fuzzy turn failed: %v", err)
	}
	if !strings.Contains(resp.Response, "Box Braids") {
		t.Errorf("typo should resolve to braiding: %q", resp.Response)
	}
	convCtx, _ := store.Get(ctx, "s1")
	if convCtx.Stage != StageAvailability {
		t.Errorf("stage = %q, want availability_check", convCtx.Stage)
	}
}

func TestResetSessionClearsContext(t *testing.T) {
	engine, _, store := newTestAIEngine()
	ctx := context.Background()

	if _, err := engine.ProcessMessage(ctx, "s1", "book braids", ""); err != nil {
		t.Fatalf("ProcessMessage failed: %v", err)
	}
	if err := engine.ResetSession(ctx, "s1"); err != nil {
		t.Fatalf("ResetSession failed: %v", err)
	}
	convCtx, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if convCtx != nil {
		t.Error("context must be gone after reset")
	}
}

func TestIdleSessionExpires(t *testing.T) {
	store := NewMemoryContextStore()
	clock := testNow
	store.now = func() time.Time { return clock }

	ctx := context.Background()
	if err := store.Set(ctx, &models.ConversationContext{SessionID: "s1", Stage: StageAvailability}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	clock = testNow.Add(ConversationTimeout - time.Minute)
	if got, _ := store.Get(ctx, "s1"); got == nil {
		t.Fatal("context should survive within the idle window")
	}

	clock = testNow.Add(ConversationTimeout + time.Minute)
	if got, _ := store.Get(ctx, "s1"); got != nil {
		t.Fatal("context should expire after the idle timeout")
	}
}
