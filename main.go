// File: stayx/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayx/config"
	"stayx/cron"
	"stayx/database"
	bookingRepoPkg "stayx/database/repository/booking"
	catalogRepoPkg "stayx/database/repository/catalog"
	favoriteRepoPkg "stayx/database/repository/favorite"
	propertyRepoPkg "stayx/database/repository/property"
	txRepoPkg "stayx/database/repository/transaction"
	userRepoPkg "stayx/database/repository/user"
	"stayx/handlers"
	"stayx/routes"
	"stayx/services/booking"
	"stayx/services/catalog"
	"stayx/services/checkout"
	"stayx/services/googleauth"
	"stayx/services/notification"
	"stayx/services/property"
	"stayx/services/report"
	"stayx/services/session"
	"stayx/services/storage"
	"stayx/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitCatalogDB()
	utils.InitRedis()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	cloudinaryStorageService, err := storage.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewFirestoreUserRepo(utils.FirestoreClient)
	propertyRepo := propertyRepoPkg.NewFirestorePropertyRepo(utils.FirestoreClient)
	bookingRepo := bookingRepoPkg.NewFirestoreBookingRepo(utils.FirestoreClient)
	favoriteRepo := favoriteRepoPkg.NewFirestoreFavoriteRepo(utils.FirestoreClient)
	txRepo := txRepoPkg.NewFirestoreTransactionRepo(utils.FirestoreClient)
	catalogRepo, err := catalogRepoPkg.NewMongoCatalogRepo(database.CatalogDatabase())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize catalog repository: %v", err)
	}

	// services.
	sessionService := &session.DefaultSessionService{
		Verifier: &session.FirebaseVerifier{Client: utils.AuthClient},
		Users:    userRepo,
		Roles:    &session.RedisRoleCache{Client: utils.GetRoleCacheClient()},
	}

	googleService := &googleauth.DefaultGoogleAuthService{
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		RedirectURL:  config.AppConfig.GoogleRedirectURL,
		Minter:       utils.AuthClient,
		Session:      sessionService,
	}

	propertyService := &property.DefaultPropertyService{
		Repo: propertyRepo,
	}

	bookingService := &booking.DefaultBookingService{
		Bookings:   bookingRepo,
		Properties: propertyRepo,
	}

	reminderScheduler := cron.NewReminderScheduler()
	checkoutService := &checkout.DefaultCheckoutService{
		Bookings:     bookingRepo,
		Transactions: txRepo,
		Intents:      checkout.StripeIntentClient{},
		Dedupe:       &checkout.RedisDedupeStore{Client: utils.GetCacheClient()},
		Reminders:    reminderScheduler,
		Currency:     config.AppConfig.StripeCurrency,
	}

	catalogService := &catalog.DefaultCatalogService{Repo: catalogRepo}

	reportService := &report.DefaultReportService{
		Users:        userRepo,
		Properties:   propertyRepo,
		Bookings:     bookingRepo,
		Transactions: txRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		FCM:   utils.FCMClient,
		Users: userRepo,
	}

	// handlers.
	authHandler := handlers.NewAuthHandler(sessionService, googleService)
	userHandler := handlers.NewUserHandler(userRepo)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteRepo, propertyRepo)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	adminHandler := handlers.NewAdminHandler(reportService, userRepo, sessionService)
	storageHandler := handlers.NewStorageHandler(cloudinaryStorageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthClient: utils.AuthClient,
		Sessions:   sessionService,

		StatusHandler: handlers.StatusHandler,

		// Auth endpoints.
		BootstrapHandler:      authHandler.BootstrapHandler,
		CustomTokenHandler:    authHandler.CustomTokenHandler,
		GoogleCallbackHandler: authHandler.GoogleCallbackHandler,

		// User endpoints.
		MeHandler:       userHandler.MeHandler,
		UpdateMeHandler: userHandler.UpdateMeHandler,

		// Property endpoints.
		FeaturedPropertiesHandler: propertyHandler.FeaturedHandler,
		GetPropertyHandler:        propertyHandler.GetHandler,
		OwnerPropertiesHandler:    propertyHandler.OwnerListHandler,
		CreatePropertyHandler:     propertyHandler.CreateHandler,
		UpdatePropertyHandler:     propertyHandler.UpdateHandler,
		DeletePropertyHandler:     propertyHandler.DeleteHandler,

		// Booking endpoints.
		CreateBookingHandler:    bookingHandler.CreateHandler,
		MyBookingsHandler:       bookingHandler.MineHandler,
		GetBookingHandler:       bookingHandler.GetHandler,
		PropertyBookingsHandler: bookingHandler.PropertyBookingsHandler,
		CancelBookingHandler:    bookingHandler.CancelHandler,

		// Checkout endpoints.
		PaymentIntentHandler: checkoutHandler.IntentHandler,
		ConfirmCardHandler:   checkoutHandler.ConfirmHandler,
		MobileMoneyHandler:   checkoutHandler.MobileMoneyHandler,
		CashHandler:          checkoutHandler.CashHandler,

		// Favorites endpoints.
		AddFavoriteHandler:    favoriteHandler.AddHandler,
		RemoveFavoriteHandler: favoriteHandler.RemoveHandler,
		ListFavoritesHandler:  favoriteHandler.ListHandler,

		// Services catalog endpoints.
		ActiveServicesHandler:     catalogHandler.ActiveHandler,
		ComingSoonServicesHandler: catalogHandler.ComingSoonHandler,
		UpsertServiceHandler:      catalogHandler.UpsertHandler,
		DeleteServiceHandler:      catalogHandler.DeleteHandler,

		// Admin endpoints.
		AdminOverviewHandler:     adminHandler.OverviewHandler,
		AdminUsersHandler:        adminHandler.UsersHandler,
		AdminTransactionsHandler: adminHandler.TransactionsHandler,
		AdminUpdateRoleHandler:   adminHandler.UpdateRoleHandler,

		// Storage endpoints.
		UploadHandler: storageHandler.UploadHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitReminderWorker(notificationService)

	reconciler := &cron.Reconciler{
		Bookings: bookingRepo,
		Checkout: checkoutService,
		Spec:     config.AppConfig.ReconcileSpec,
		Cutoff:   time.Duration(config.AppConfig.ReconcileCutoffMin) * time.Minute,
	}
	reconcilerCron, err := reconciler.Start()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to start payment reconciler: %v", err)
	}

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetRoleCacheClient()},
		database.CatalogClient,
	)

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

	reconcilerCron.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
