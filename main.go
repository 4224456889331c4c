// File: tourbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tourbook/config"
	"tourbook/cron"
	"tourbook/database"
	activityRepoPkg "tourbook/database/repository/activity"
	bookingRepoPkg "tourbook/database/repository/booking"
	"tourbook/handlers"
	"tourbook/middleware"
	"tourbook/routes"
	activitySvc "tourbook/services/activity"
	bookingSvc "tourbook/services/booking"
	"tourbook/services/notification"
	"tourbook/services/payment"
	"tourbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	paymentCfg, err := config.AppConfig.Payment()
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	activityRepo := activityRepoPkg.NewMongoActivityRepo()

	// payment components.
	requestBuilder, err := payment.NewRequestBuilder(paymentCfg, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize payment request builder: %v", err)
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	queueNotifier := &notification.QueueNotificationService{
		Client: asynqClient,
		Logger: logger,
	}
	mailer := notification.NewMailNotificationService(config.AppConfig, logger)

	reconciler := &payment.Reconciler{
		Store:    bookingRepo,
		Notifier: queueNotifier,
		Secret:   paymentCfg.SecretKey,
		SiteURL:  paymentCfg.SiteURL,
		Logger:   logger,
	}

	// services.
	bookingService := &bookingSvc.DefaultBookingService{
		Repo:         bookingRepo,
		ActivityRepo: activityRepo,
		Builder:      requestBuilder,
		SiteURL:      paymentCfg.SiteURL,
		Logger:       logger,
	}
	activityService := &activitySvc.DefaultActivityService{
		Repo:   activityRepo,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}

	// background workers.
	cron.InitMailWorker(bookingRepo, mailer)
	sweeper := cron.StartExpirySweeper(bookingRepo, logger)
	defer sweeper.Stop()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Payment:  handlers.NewPaymentHandler(bookingService, reconciler, logger),
		Activity: handlers.NewActivityHandler(activityService, logger),
		Admin:    handlers.NewAdminHandler(bookingService, activityService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
