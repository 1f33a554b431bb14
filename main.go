package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staffstream/config"
	"staffstream/cron"
	"staffstream/database"
	onboardingRepoPkg "staffstream/database/repository/onboarding"
	tokenRepoPkg "staffstream/database/repository/token"
	userRepoPkg "staffstream/database/repository/user"
	visaRepoPkg "staffstream/database/repository/visa"
	"staffstream/handlers"
	"staffstream/middleware"
	"staffstream/routes"
	"staffstream/services/auth"
	"staffstream/services/hrtoken"
	"staffstream/services/notification"
	"staffstream/services/onboarding"
	"staffstream/services/storage"
	"staffstream/services/visa"
	"staffstream/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	storageService, err := storage.NewStorageService(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	tokenRepo := tokenRepoPkg.NewMongoTokenRepo()
	onboardingRepo := onboardingRepoPkg.NewMongoOnboardingRepo()
	visaRepo := visaRepoPkg.NewMongoVisaRepo()

	// services.
	notifier := notification.NewResendNotifier(
		config.AppConfig.ResendAPIKey,
		config.AppConfig.FromEmail,
	)

	queueClient := cron.NewQueueClient()
	defer queueClient.Close()

	tokenService := &hrtoken.DefaultTokenService{
		Repo:        tokenRepo,
		Notifier:    notifier,
		Tasks:       queueClient,
		FrontendURL: config.AppConfig.FrontendURL,
	}

	visaService := &visa.DefaultVisaService{
		Repo:  visaRepo,
		Users: userRepo,
	}

	onboardingService := &onboarding.DefaultOnboardingService{
		Repo:            onboardingRepo,
		Visa:            visaService,
		ResetOnResubmit: config.AppConfig.OnboardingResetOnResubmit,
	}

	authService := &auth.DefaultAuthService{
		Users:  userRepo,
		Tokens: tokenService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:   userRepo,
		Auth:       handlers.NewAuthHandler(authService),
		Onboarding: handlers.NewOnboardingHandler(onboardingService),
		HR:         handlers.NewHRHandler(tokenService, onboardingService),
		Visa:       handlers.NewVisaHandler(visaService, storageService),
		Storage:    handlers.NewStorageHandler(storageService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and health monitoring.
	cron.InitReminderWorker(tokenService)
	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

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
