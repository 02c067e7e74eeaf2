package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"jaybesin/internal/adapter/api"
	"jaybesin/internal/adapter/api/handler"
	apimiddleware "jaybesin/internal/adapter/api/middleware"
	"jaybesin/internal/adapter/api/router"
	"jaybesin/internal/adapter/repository"
	"jaybesin/internal/infrastructure/firebase"
	"jaybesin/internal/infrastructure/metrics"
	"jaybesin/internal/infrastructure/ratelimit"
	"jaybesin/internal/infrastructure/storage"
	"jaybesin/internal/infrastructure/websocket"
	"jaybesin/internal/usecase"
	"jaybesin/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var opt option.ClientOption

	// Try to get service account from environment variable (for production)
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		// Fallback to file path (for local development)
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(
		ctx,
		cfg.StorageBucket,
		cfg.FirebaseProject,
		opt,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	vehicleRepo := repository.NewFirestoreVehicleRepository(firestoreClient)
	chargerRepo := repository.NewFirestoreChargerRepository(firestoreClient)
	partRepo := repository.NewFirestorePartRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	inquiryRepo := repository.NewFirestoreInquiryRepository(firestoreClient)
	settingsRepo := repository.NewFirestoreSettingsRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	hub := websocket.NewHub()
	hub.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(firebaseAuthClient)
	catalogUseCase := usecase.NewCatalogUseCase(vehicleRepo, chargerRepo, partRepo, storageClient)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	inquiryUseCase := usecase.NewInquiryUseCase(inquiryRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo, storageClient)
	seedUseCase := usecase.NewSeedUseCase(vehicleRepo, chargerRepo, partRepo, orderRepo, inquiryRepo, settingsRepo)
	liveFeed := usecase.NewLiveFeedUseCase(vehicleRepo, chargerRepo, partRepo, orderRepo, inquiryRepo, hub)

	liveFeed.Start(ctx)
	defer liveFeed.Stop()

	handler.Setup(authUseCase, catalogUseCase, orderUseCase, inquiryUseCase, settingsUseCase, seedUseCase, liveFeed)
	handler.SetupHealthHandler(firebaseAuthClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(metrics.Middleware())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	inquiryLimiter := ratelimit.NewRateLimiter(cfg.InquiryBurst, 1, time.Minute)
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				inquiryLimiter.Cleanup(30 * time.Minute)
			case <-ctx.Done():
				return
			}
		}
	}()

	liveFeedHandler := handler.NewLiveFeedHandler(hub, liveFeed)

	router.Setup(e, authMiddleware, adminMiddleware, apimiddleware.RateLimitByIP(inquiryLimiter))
	router.SetupLiveFeedRouter(e, liveFeedHandler, authMiddleware, adminMiddleware)

	e.GET("/metrics", metrics.Handler())

	go func() {
		log.Printf("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("Shutting down...")
	liveFeed.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}
