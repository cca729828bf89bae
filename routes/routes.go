package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vipqueens/config"
	"vipqueens/handlers"
	"vipqueens/middleware"
	"vipqueens/utils"
)

// RegisterCatalogRoutes registers the service and staff catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/staff", hb.ListStaffHandler)
	}
}

// RegisterAppointmentRoutes registers the booking and availability endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/availability/:staffId", hb.AvailabilityHandler)
		api.POST("/appointments", hb.CreateAppointmentHandler)
		api.GET("/appointments", hb.ListAppointmentsHandler)
		api.PATCH("/appointments/:id", hb.UpdateAppointmentHandler)
		api.DELETE("/appointments/:id", hb.DeleteAppointmentHandler)
	}
}

// RegisterChatRoutes registers the AI receptionist and the widget assistant.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/chat", hb.ChatHandler)
		api.DELETE("/chat/:sessionId", hb.ResetChatHandler)
		api.POST("/assistant", hb.AssistantHandler)
		api.POST("/faq", hb.QuickAnswerHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "salon": config.AppConfig.SalonName})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())
	r.Use(utils.ErrorHandler())

	RegisterCatalogRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterHealthRoute(r)
}
