// File: buildlanka/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"buildlanka/config"
	"buildlanka/cron"
	"buildlanka/database"
	listingRepo "buildlanka/database/repository/listing"
	notificationRepo "buildlanka/database/repository/notification"
	partnerRepo "buildlanka/database/repository/partner"
	"buildlanka/handlers"
	"buildlanka/middleware"
	"buildlanka/routes"
	"buildlanka/services/catalog"
	"buildlanka/services/registration"
	"buildlanka/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCatalogCacheClient(),
		utils.GetSessionCacheClient(),
	}, database.MongoClient)

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Register the district rule on gin's binding engine so handler-level
	// `binding:"district"` tags and service-level validation agree.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("district", registration.ValidDistrict); err != nil {
			logger.Sugar().Fatalf("main: failed to register district validation: %v", err)
		}
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	listings := listingRepo.NewMongoListingRepo()
	partners := partnerRepo.NewMongoPartnerRepo()
	notifications := notificationRepo.NewMongoNotificationRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:  listings,
		Cache: utils.GetCatalogCacheClient(),
	}

	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	registrationService := &registration.DefaultRegistrationService{
		Store:    registration.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Partners: partners,
		Queue:    queueClient,
	}

	// Background worker consuming partner submission tasks.
	cron.InitSubmissionWorker(notifications)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Catalog:      handlers.NewCatalogHandler(catalogService),
		Registration: handlers.NewRegistrationHandler(registrationService, cloudinaryStorageService),
		Contact:      handlers.NewContactHandler(catalogService),
		Partner:      handlers.NewPartnerHandler(partners, notifications),
	}

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
