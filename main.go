// File: stylebook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stylebook/config"
	"stylebook/cron"
	"stylebook/database"
	bookingRepoPkg "stylebook/database/repository/booking"
	salonRepoPkg "stylebook/database/repository/salon"
	serviceRepoPkg "stylebook/database/repository/service"
	stylistRepoPkg "stylebook/database/repository/stylist"
	userRepoPkg "stylebook/database/repository/user"
	"stylebook/handlers"
	"stylebook/routes"
	"stylebook/services/appointment"
	"stylebook/services/lifecycle"
	"stylebook/services/notification"
	"stylebook/services/scheduling"
	"stylebook/services/tasks"
	"stylebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	stylistRepo := stylistRepoPkg.NewMongoStylistRepo()
	salonRepo := salonRepoPkg.NewMongoSalonRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := bookingRepo.EnsureIndexes(ctx); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
		}
		cancel()
	}

	// task queue client for auto-reject notification fan-out.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer asynqClient.Close()

	// services.
	policy := lifecycle.Policy{
		ResponseWindow:   time.Duration(config.AppConfig.AutoRejectAfterHours) * time.Hour,
		ExpireSoonWindow: 24 * time.Hour,
	}

	lifecycleService := &lifecycle.DefaultLifecycleService{
		Repo:   bookingRepo,
		Tasks:  tasks.NewAsynqEnqueuer(asynqClient),
		Policy: policy,
	}

	availabilityService := &scheduling.DefaultAvailabilityService{
		Stylists:    stylistRepo,
		Salons:      salonRepo,
		Bookings:    bookingRepo,
		StepMinutes: config.AppConfig.SlotStepMinutes,
	}

	appointmentService := &appointment.DefaultAppointmentService{
		Bookings:  bookingRepo,
		Services:  serviceRepo,
		Stylists:  stylistRepo,
		Salons:    salonRepo,
		Lifecycle: lifecycleService,
		Policy:    policy,
		Cache:     &appointment.RedisSummaryCache{Client: utils.GetCacheClient()},
	}

	notificationService, err := notification.NewDefaultNotificationService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	// Assemble the handler bundle.
	clock := utils.SystemClock{}
	handlerBundle := &handlers.HandlerBundle{
		Appointments: handlers.NewAppointmentHandler(appointmentService, availabilityService, clock),
		Auth:         handlers.NewAuthHandler(userRepo),
		Users:        handlers.NewUserHandler(userRepo),
		Stylists:     handlers.NewStylistHandler(stylistRepo),
		Salons:       handlers.NewSalonHandler(salonRepo),
		Services:     handlers.NewServiceHandler(serviceRepo, salonRepo),
		Storage:      handlers.NewStorageHandler(cloudinaryStorageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background workers: the periodic rejection sweeper and the task queue
	// consumer that delivers auto-reject pushes.
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	sweeper := cron.NewSweeper(
		lifecycleService,
		time.Duration(config.AppConfig.SweepIntervalMinutes)*time.Minute,
		clock,
	)
	go sweeper.Start(sweepCtx)
	cron.InitAutoRejectWorker(notificationService)

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

	stopSweeper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
