// File: andeanscapes/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"andeanscapes/config"
	"andeanscapes/cron"
	"andeanscapes/database"
	paymentintentRepo "andeanscapes/database/repository/paymentintent"
	"andeanscapes/handlers"
	"andeanscapes/middleware"
	"andeanscapes/routes"
	"andeanscapes/services/experience"
	"andeanscapes/services/payment"
	"andeanscapes/services/reservation"
	"andeanscapes/services/tasks"
	"andeanscapes/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitReservationCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	intentRepo := paymentintentRepo.NewMongoPaymentIntentRepo()

	// reminder queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()
	reminderScheduler := tasks.NewAsynqReminderScheduler(asynqClient)
	cron.InitReminderWorker(logger)

	// services.
	experienceService := experience.NewDefaultExperienceService()

	reservationStore := reservation.NewRedisStore(utils.GetReservationCacheClient(), logger)
	reservationService := reservation.NewDefaultReservationService(experienceService, reservationStore, logger)
	defer reservationService.Close()

	paymentService := payment.NewStripePaymentLinkService(
		intentRepo,
		reminderScheduler,
		logger,
		config.AppConfig.CheckoutCurrency,
		config.AppConfig.CheckoutReturnURL,
	)

	// handlers.
	experienceHandler := handlers.NewExperienceHandler(experienceService, logger)
	reservationHandler := handlers.NewReservationHandler(reservationService, logger)
	paymentHandler := handlers.NewPaymentHandler(reservationService, paymentService, logger)

	routes.RegisterRoutes(router, experienceHandler, reservationHandler, paymentHandler)

	// Start the HTTP server.
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

	// Wait for an OS signal to gracefully shutdown.
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
