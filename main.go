package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"vipqueens/config"
	bookingRepo "vipqueens/database/repository/booking"
	"vipqueens/handlers"
	"vipqueens/routes"
	"vipqueens/services/assistant"
	"vipqueens/services/catalog"
	ai "vipqueens/services/intelligence"
	"vipqueens/services/scheduling"
	"vipqueens/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitBookingCache()
	utils.InitChatCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	bookings := bookingRepo.NewRedisBookingRepo(utils.GetBookingCacheClient())

	// services.
	catalogService := catalog.NewDefaultCatalogService()
	schedulingEngine := scheduling.NewDefaultSchedulingEngine(bookings, catalogService)

	var gemini *ai.GeminiClient
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		client, err := ai.NewGeminiClient(context.Background(), key)
		if err != nil {
			logger.Sugar().Warnf("main: gemini unavailable, falling back to rule-based replies: %v", err)
		} else {
			gemini = client
		}
	}

	ctxStore := ai.NewRedisContextStore(utils.GetChatCacheClient())
	receptionist := ai.NewAIEngine(ctxStore, catalogService, schedulingEngine, gemini)

	widget := assistant.NewDefaultAssistantService(catalogService, schedulingEngine)
	flows := assistant.NewRedisFlowStore(utils.GetChatCacheClient())
	faq := assistant.NewResponder(catalogService)

	handlerBundle := handlers.NewHandlerBundle(catalogService, schedulingEngine, receptionist, widget, flows, faq)

	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
