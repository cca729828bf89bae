package handlers

import (
	"github.com/gin-gonic/gin"

	"vipqueens/services/assistant"
	"vipqueens/services/catalog"
	"vipqueens/services/intelligence"
	"vipqueens/services/scheduling"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration stays in one place.
type HandlerBundle struct {
	// Catalog endpoints
	ListServicesHandler gin.HandlerFunc
	ListStaffHandler    gin.HandlerFunc

	// Scheduling endpoints
	AvailabilityHandler      gin.HandlerFunc
	CreateAppointmentHandler gin.HandlerFunc
	ListAppointmentsHandler  gin.HandlerFunc
	UpdateAppointmentHandler gin.HandlerFunc
	DeleteAppointmentHandler gin.HandlerFunc

	// Chat endpoints
	ChatHandler        gin.HandlerFunc
	ResetChatHandler   gin.HandlerFunc
	AssistantHandler   gin.HandlerFunc
	QuickAnswerHandler gin.HandlerFunc
}

// NewHandlerBundle wires the service layer into HTTP handlers.
func NewHandlerBundle(
	cat catalog.Service,
	engine scheduling.Engine,
	ai intelligence.Service,
	widget assistant.Service,
	flows assistant.FlowStore,
	faq *assistant.Responder,
) *HandlerBundle {
	return &HandlerBundle{
		ListServicesHandler: ListServices(cat),
		ListStaffHandler:    ListStaff(cat),

		AvailabilityHandler:      GetAvailability(engine),
		CreateAppointmentHandler: CreateAppointment(engine),
		ListAppointmentsHandler:  ListAppointments(engine),
		UpdateAppointmentHandler: UpdateAppointment(engine),
		DeleteAppointmentHandler: DeleteAppointment(engine),

		ChatHandler:        Chat(ai),
		ResetChatHandler:   ResetChat(ai),
		AssistantHandler:   AssistantChat(widget, flows),
		QuickAnswerHandler: QuickAnswer(faq),
	}
}
