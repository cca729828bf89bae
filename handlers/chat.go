package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vipqueens/models"
	"vipqueens/services/assistant"
	"vipqueens/services/intelligence"
	"vipqueens/utils"
)

// Chat handles POST /api/chat: one turn of the AI receptionist.
func Chat(ai intelligence.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		resp, err := ai.ProcessMessage(c.Request.Context(), req.SessionID, req.Message, req.PhoneNumber)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to process message", err.Error())
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ResetChat handles DELETE /api/chat/:sessionId. Discards conversation
// state only; bookings already made survive.
func ResetChat(ai intelligence.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")
		if err := ai.ResetSession(c.Request.Context(), sessionID); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to reset session", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"reset": sessionID})
	}
}

// QuickAnswer handles POST /api/faq: a stateless keyword reply for
// front-ends that want an instant answer without a session.
func QuickAnswer(faq *assistant.Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Message string `json:"message" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		c.JSON(http.StatusOK, models.ChatResponse{Response: faq.Answer(req.Message)})
	}
}

// AssistantChat handles POST /api/assistant: the rule-based widget flow.
// Flow state rides in the FlowStore keyed by session id.
func AssistantChat(widget assistant.Service, flows assistant.FlowStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		ctx := c.Request.Context()
		state, err := flows.Get(ctx, req.SessionID)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to load session", err.Error())
			return
		}
		if state == nil {
			state = models.NewFlowState()
		}

		resp, err := widget.HandleMessage(ctx, state, req.Message)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to process message", err.Error())
			return
		}
		if err := flows.Set(ctx, req.SessionID, state); err != nil {
			getLogger(c).Warn("flow state save failed", zap.String("sessionId", req.SessionID), zap.Error(err))
		}
		c.JSON(http.StatusOK, resp)
	}
}
