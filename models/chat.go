package models

import "time"

// ChatRequest is the payload coming from a chat front-end.
type ChatRequest struct {
	Message     string `json:"message" binding:"required"`
	SessionID   string `json:"sessionId" binding:"required"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// ChatResponse is what a chat endpoint returns to the frontend.
type ChatResponse struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// ChatMessage is a single turn kept in the conversation history.
type ChatMessage struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // "user" or "bot"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Intent    string    `json:"intent,omitempty"`
}

// CustomerMemory is what the receptionist remembers about a customer
// across turns: contact info and preferences.
type CustomerMemory struct {
	Name             string `json:"name,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Email            string `json:"email,omitempty"`
	PreferredStylist string `json:"preferredStylist,omitempty"`
	PreferredService string `json:"preferredService,omitempty"`
}

// BookingDraft accumulates booking fields as a conversation progresses.
type BookingDraft struct {
	ServiceID       string `json:"serviceId,omitempty"`
	ServiceName     string `json:"serviceName,omitempty"`
	ServiceCategory string `json:"serviceCategory,omitempty"`
	Price           int    `json:"price,omitempty"`
	Duration        string `json:"duration,omitempty"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	StaffID         string `json:"staffId,omitempty"`
	StaffName       string `json:"staffName,omitempty"`
	Date            string `json:"date,omitempty"`
	Time            string `json:"time,omitempty"`
	CustomerName    string `json:"customerName,omitempty"`
	CustomerPhone   string `json:"customerPhone,omitempty"`
	CustomerEmail   string `json:"customerEmail,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// ConversationContext is the per-session state of the AI receptionist,
// persisted between turns by a ContextStore.
type ConversationContext struct {
	SessionID      string        `json:"sessionId"`
	CustomerID     string        `json:"customerId,omitempty"` // phone number when known
	Stage          string        `json:"currentStage"`
	Booking        BookingDraft  `json:"bookingData"`
	MessageHistory []ChatMessage `json:"messageHistory"`
	Memory         CustomerMemory `json:"memory"`
	LastActivity   time.Time     `json:"lastActivity"`
	Language       string        `json:"language"` // "en" or "sw"
}
