package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotcal/config"
	"slotcal/cron"
	"slotcal/database"
	availabilityRepo "slotcal/database/repository/availability"
	"slotcal/handlers"
	"slotcal/middleware"
	"slotcal/routes"
	"slotcal/services/availability"
	"slotcal/services/tasks"
	"slotcal/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	utils.InitQueueRedis()

	// repositories.
	groupRepo := availabilityRepo.NewMongoSubmissionRepo(database.Database())
	if err := groupRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: %v", err)
	}

	// submission queue and its consumer.
	queueClient := asynq.NewClient(cron.QueueRedisOpt())
	defer queueClient.Close()
	worker := cron.InitSubmissionWorker(groupRepo, logger)

	// services.
	availabilityService := availability.NewAvailabilityService(
		tasks.NewQueueSubmitter(queueClient),
		groupRepo,
		config.AppConfig.AvailabilityGroupTitle,
		logger,
	)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, utils.GetQueueClient(), database.MongoClient, 60*time.Second)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlers.NewHandlerBundle(availabilityHandler))

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
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	worker.Shutdown()
	if err := database.CloseDB(ctx); err != nil {
		logger.Error("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
