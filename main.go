// File: roomquest/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomquest/config"
	"roomquest/cron"
	"roomquest/database"
	blockRepo "roomquest/database/repository/block"
	roomRepo "roomquest/database/repository/room"
	scheduleRepo "roomquest/database/repository/schedule"
	slotRepo "roomquest/database/repository/slot"
	"roomquest/handlers"
	"roomquest/middleware"
	"roomquest/routes"
	"roomquest/services/calendar"
	"roomquest/services/scheduling"
	"roomquest/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitHoldCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	rooms := roomRepo.NewMongoRoomRepo()
	slots := slotRepo.NewMongoSlotRepo()
	blocks := blockRepo.NewMongoBlockRepo()
	schedules := scheduleRepo.NewMongoScheduleRepo()

	// services.
	calendarService := calendar.NewDefaultService(schedules, rooms)

	engine := &scheduling.DefaultSlotEngine{
		Slots:        slots,
		Rooms:        rooms,
		Blocks:       blocks,
		Calendar:     calendarService,
		Holds:        scheduling.NewRedisHoldStore(utils.GetHoldCacheClient()),
		HoldLifetime: config.HoldLifetime(),
		MinLead:      time.Duration(config.AppConfig.BookingMinLeadMinutes) * time.Minute,
		MaxMonths:    config.AppConfig.BookingMaxMonths,
	}

	// Background materialization worker and its queue client.
	cron.InitMaterializeWorker(engine, calendarService)
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	slotHandler := handlers.NewSlotHandler(engine, logger)
	holdHandler := handlers.NewHoldHandler(engine, logger)
	adminHandler := handlers.NewAdminHandler(queueClient, rooms, schedules, logger)

	// Register routes.
	routes.RegisterRoutes(router, slotHandler, holdHandler, adminHandler)

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
