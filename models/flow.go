package models

// FlowStep is a stage in the guided booking conversation.
type FlowStep string

const (
	StepGreeting         FlowStep = "greeting"
	StepServiceSelection FlowStep = "service_selection"
	StepStylistSelection FlowStep = "stylist_selection"
	StepSlotSelection    FlowStep = "slot_selection"
	StepCustomerInfo     FlowStep = "customer_info"
	StepConfirmation     FlowStep = "confirmation"
	StepCompleted        FlowStep = "completed"
)

// SelectedSlot is a chosen date and start time.
type SelectedSlot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// CustomerInfo is the contact detail block collected before confirmation.
type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// DaySlots is one day's offer shown during stylist selection.
type DaySlots struct {
	Date        string   `json:"date"`
	DisplayDate string   `json:"displayDate"`
	Slots       []string `json:"slots"`
}

// FlowState is the explicit per-session state of the guided booking flow.
// Each step fills exactly one optional field, so confirmation cannot run
// until service, stylist, slot and customer are all present.
type FlowState struct {
	Step         FlowStep      `json:"step"`
	Service      *Service      `json:"selectedService,omitempty"`
	Stylist      *Staff        `json:"selectedStylist,omitempty"`
	OfferedDays  []DaySlots    `json:"offeredDays,omitempty"`
	Slot         *SelectedSlot `json:"selectedSlot,omitempty"`
	Customer     *CustomerInfo `json:"customerInfo,omitempty"`
	Notes        string        `json:"notes,omitempty"`
}

// NewFlowState returns a fresh flow at the greeting step.
func NewFlowState() *FlowState {
	return &FlowState{Step: StepGreeting}
}
