package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"mentorhub/config"
	"mentorhub/cron"
	"mentorhub/database"
	communityRepoPkg "mentorhub/database/repository/community"
	sessionRepoPkg "mentorhub/database/repository/session"
	userRepoPkg "mentorhub/database/repository/user"
	verificationRepoPkg "mentorhub/database/repository/verification"
	"mentorhub/handlers"
	"mentorhub/middleware"
	"mentorhub/routes"
	"mentorhub/services/community"
	"mentorhub/services/mentor"
	"mentorhub/services/notification"
	"mentorhub/services/scheduling"
	"mentorhub/services/user"
	"mentorhub/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	users := userRepoPkg.NewMongoUserRepo()
	sessions := sessionRepoPkg.NewMongoSessionRepo()
	verifications := verificationRepoPkg.NewMongoVerificationRepo()
	communityRepo := communityRepoPkg.NewMongoCommunityRepo()

	// background mail delivery.
	queueClient := cron.NewQueueClient()
	defer queueClient.Close()
	notifier, err := notification.NewDefaultNotificationService(queueClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	cron.InitMailWorker(notification.NewSMTPMailer())

	// services.
	userService := user.NewDefaultUserService(users, verifications, notifier)
	mentorService := mentor.NewDefaultMentorService(sessions, users, verifications, storageService, notifier)
	communityService := community.NewDefaultCommunityService(communityRepo, users)
	engine := &scheduling.DefaultSchedulingEngine{Repo: sessions}

	handlerBundle := handlers.NewHandlerBundle(userService, mentorService, communityService, engine, users)

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
