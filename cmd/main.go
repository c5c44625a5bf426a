package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/soberpath/go-notification-service/internal/consumer"
	"github.com/soberpath/go-notification-service/internal/handler"
	"github.com/soberpath/go-notification-service/internal/middleware"
	"github.com/soberpath/go-notification-service/internal/repository"
	"github.com/soberpath/go-notification-service/internal/scheduler"
	"github.com/soberpath/go-notification-service/internal/sender"
	"github.com/soberpath/go-notification-service/internal/service"
	"github.com/soberpath/go-notification-service/internal/shared/config"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
	"github.com/soberpath/go-notification-service/internal/shared/mongodb"
	"github.com/soberpath/go-notification-service/internal/shared/rabbitmq"
)

func main() {
	// Initialize logger
	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting Recovery Notification Service...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration", "error", err)
	}

	// Initialize MongoDB
	mongoClient, err := mongodb.NewMongoClient(cfg.MongoDB.URI, cfg.MongoDB.Database)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer mongoClient.Disconnect(context.Background())

	// Initialize RabbitMQ
	rabbitMQClient, err := rabbitmq.NewRabbitMQClient(cfg.RabbitMQ.URL)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ", "error", err)
	}
	defer rabbitMQClient.Close()

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(mongoClient)
	scheduleRepo := repository.NewScheduleRepository(mongoClient)
	preferencesRepo := repository.NewPreferencesRepository(mongoClient)
	historyRepo := repository.NewHistoryRepository(mongoClient)
	templateRepo := repository.NewTemplateRepository(mongoClient)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	for name, ensure := range map[string]func(context.Context) error{
		"profiles":    profileRepo.EnsureIndexes,
		"schedules":   scheduleRepo.EnsureIndexes,
		"preferences": preferencesRepo.EnsureIndexes,
		"history":     historyRepo.EnsureIndexes,
	} {
		if err := ensure(indexCtx); err != nil {
			log.Error("Failed to ensure indexes", "error", err, "collection", name)
		}
	}
	cancelIndexes()

	// Initialize delivery channels
	senders := []sender.Sender{
		sender.NewPushSender(cfg.Push.GatewayURL, log),
		sender.NewEmailSender(cfg.SMTP, log),
		sender.NewSMSSender(cfg.SMS, log),
	}

	// Initialize services
	scheduleBuilder := service.NewScheduleBuilder(scheduleRepo, log)
	profileService := service.NewProfileService(profileRepo, scheduleBuilder, log)
	personalizer := service.NewPersonalizer(profileRepo, templateRepo, log)
	gate := service.NewGate(preferencesRepo, log)
	dispatcher := service.NewDispatcher(historyRepo, preferencesRepo, senders, log)
	notifier := service.NewNotifier(gate, personalizer, dispatcher, log)

	// Initialize peak-time scheduler
	peakScheduler := scheduler.NewPeakTimeScheduler(scheduleRepo, notifier, log)
	if err := peakScheduler.Start(); err != nil {
		log.Error("Failed to start scheduler", "error", err)
	}
	defer peakScheduler.Stop()

	// Initialize HTTP handlers
	profileHandler := handler.NewProfileHandler(profileService, log)
	preferencesHandler := handler.NewPreferencesHandler(preferencesRepo, log)
	scheduleHandler := handler.NewScheduleHandler(scheduleRepo, log)
	historyHandler := handler.NewHistoryHandler(historyRepo, log)
	notifyHandler := handler.NewNotifyHandler(notifier, gate, dispatcher, historyRepo, log)

	// Initialize rate limiter
	rateLimitPerUser, _ := strconv.ParseFloat(getEnv("RATE_LIMIT_PER_USER", "10"), 64)
	rateLimitBurst, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))
	rateLimiter := middleware.NewUserRateLimiter(rateLimitPerUser, rateLimitBurst)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Health check endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes, authenticated and rate limited per user
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireUser())
	v1.Use(middleware.RateLimitMiddleware(rateLimiter))
	{
		v1.PUT("/profile", profileHandler.SaveProfile)
		v1.GET("/profile", profileHandler.GetProfile)

		v1.GET("/preferences", preferencesHandler.GetPreferences)
		v1.PUT("/preferences", preferencesHandler.UpdatePreferences)

		v1.GET("/schedules", scheduleHandler.GetSchedules)
		v1.GET("/history", historyHandler.GetHistory)

		notifications := v1.Group("/notifications")
		{
			notifications.POST("/test", notifyHandler.SendTest)
			notifications.POST("/:id/retry", notifyHandler.Retry)
		}
	}

	// Start RabbitMQ consumer
	eventConsumer := consumer.NewEventConsumer(rabbitMQClient, profileService, notifier, log)
	go func() {
		if err := eventConsumer.Start(); err != nil {
			log.Error("Failed to start event consumer", "error", err)
		}
	}()

	// Start HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info("Recovery Notification Service started", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down Recovery Notification Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Recovery Notification Service stopped")
}

// getEnv retrieves environment variable or returns default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
