// File: dragontravel/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dragontravel/config"
	"dragontravel/cron"
	"dragontravel/database"
	catalog "dragontravel/database/repository/catalog"
	reservationRepo "dragontravel/database/repository/reservation"
	"dragontravel/handlers"
	"dragontravel/middleware"
	"dragontravel/routes"
	"dragontravel/services/dialogue"
	"dragontravel/services/finalize"
	ai "dragontravel/services/intelligence"
	"dragontravel/services/speech"
	"dragontravel/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	cloudinaryStorageService, err := utils.Cloudinary()
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
	resRepo := reservationRepo.NewMongoReservationRepo()
	airportRepo := catalog.NewMongoAirportRepo()
	airlineRepo := catalog.NewMongoAirlineRepo()

	// language helpers.
	gemini := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	translator := &ai.GeminiTranslator{Client: gemini}
	sentiment := &ai.GeminiSentimentAnalyzer{Client: gemini}

	// audio pipeline.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	synthesizer := &speech.GoogleSynthesizer{
		CredentialsFile: config.AppConfig.GoogleServiceAccountFile,
	}
	cron.InitAudioWorker(synthesizer, cloudinaryStorageService)

	// dialogue core.
	extractor := &dialogue.Extractor{Translator: translator, Logger: logger}
	normalizer := dialogue.Normalizer{Policy: dialogue.YearPolicy{
		PivotMonth:    config.AppConfig.DatePivotMonth,
		PivotDay:      config.AppConfig.DatePivotDay,
		YearBefore:    config.AppConfig.DateYearBefore,
		YearOnOrAfter: config.AppConfig.DateYearOnOrAfter,
	}}
	coercer := dialogue.NewCoercer(extractor, normalizer)

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := dialogue.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	finalizer := &finalize.DefaultFinalizer{
		Reservations: resRepo,
		Airports:     airportRepo,
		Airlines:     airlineRepo,
		Sentiment:    sentiment,
		Tasks:        asynqClient,
		Logger:       logger,
	}

	dialogueService := &dialogue.DefaultDialogueService{
		Store:     sessionStore,
		Coercer:   coercer,
		Finalizer: finalizer,
		Logger:    logger,
	}

	dialogueHandler := handlers.NewDialogueHandler(dialogueService, logger)
	reservationHandler := handlers.NewReservationHandler(resRepo, cloudinaryStorageService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProcessMessage:      dialogueHandler.ProcessMessage,
		ProcessAudioMessage: dialogueHandler.ProcessAudioMessage,
		ResetConversation:   dialogueHandler.ResetConversation,

		ListReservations:  reservationHandler.ListReservations,
		GetReservation:    reservationHandler.GetReservation,
		DeleteReservation: reservationHandler.DeleteReservation,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{utils.GetSessionCacheClient()}, database.MongoClient)

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
