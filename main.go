package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"roamify/backend"
	"roamify/config"
	"roamify/handlers"
	"roamify/middleware"
	"roamify/routes"
	"roamify/services/account"
	adminService "roamify/services/admin"
	"roamify/services/gems"
	"roamify/services/tours"
	"roamify/services/vehicles"
	vendorService "roamify/services/vendor"
	"roamify/session"
	"roamify/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Backend API contract layer.
	timeout := time.Duration(config.AppConfig.BackendTimeoutSec) * time.Second
	client := backend.NewClient(config.AppConfig.BackendBaseURL, timeout, logger)
	api := backend.NewAPI(client)

	// Session lifecycle.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLHours) * time.Hour
	sessionStore := session.NewRedisStore(utils.GetSessionClient(), sessionTTL)
	sessions := session.NewManager(sessionStore, logger)
	router.Use(middleware.SessionMiddleware(sessions))

	// Page services.
	vehicleService := &vehicles.DefaultService{Vehicles: api.Vehicles, Bookings: api.Bookings}
	gemService := &gems.DefaultService{Gems: api.HiddenGems}
	tourService := &tours.DefaultService{Tours: api.Tours}
	accountService := &account.DefaultService{
		Users:    api.Users,
		Gems:     api.HiddenGems,
		Vehicles: api.Vehicles,
		Bookings: api.Bookings,
		Tours:    api.Tours,
	}
	adminSvc := &adminService.DefaultService{
		Admin:    api.Admin,
		Vehicles: api.Vehicles,
		Bookings: api.Bookings,
	}
	vendorSvc := &vendorService.DefaultService{Vendor: api.Vendor}

	quiet := time.Duration(config.AppConfig.SearchDebounceMs) * time.Millisecond

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:     handlers.NewAuthHandler(api.Auth, sessions),
		Vehicles: handlers.NewVehicleHandler(vehicleService, sessions),
		Gems:     handlers.NewGemHandler(gemService, sessions),
		Tours:    handlers.NewTourHandler(tourService, sessions),
		Account:  handlers.NewAccountHandler(accountService, sessions),
		Admin:    handlers.NewAdminHandler(adminSvc, sessions),
		Vendor:   handlers.NewVendorHandler(vendorSvc, sessions),
		Search:   handlers.NewSearchHandler(gemService, utils.GetCacheClient(), quiet),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
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
