// File: condoreserve/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"condoreserve/config"
	"condoreserve/database"
	"condoreserve/database/repository"
	"condoreserve/handlers"
	"condoreserve/middleware"
	"condoreserve/routes"
	"condoreserve/services/booking"
	"condoreserve/services/catalog"
	"condoreserve/services/notification"
	"condoreserve/utils"
	"condoreserve/workers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	areaRepo := repository.NewMongoAreaRepo()
	reservationRepo := repository.NewMongoReservationRepo()
	directory := repository.NewMongoActorDirectory()

	// notification pipeline: enqueue in-process, deliver in the worker.
	notifyEnqueuer := notification.NewAsynqEnqueuer()
	defer notifyEnqueuer.Close()

	dispatcher, err := notification.NewFCMDispatcher(directory)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification dispatcher: %v", err)
	}
	workers.InitNotifyWorker(dispatcher)

	// services.
	catalogService := &catalog.DefaultAreaCatalog{
		Repo: areaRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Areas:        areaRepo,
		Reservations: reservationRepo,
		Directory:    directory,
		Notifier:     notifyEnqueuer,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Directory:      directory,
		AreaHandler:    handlers.NewAreaHandler(catalogService),
		BookingHandler: handlers.NewBookingHandler(bookingService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Monitor both Redis roles: the auth cache and the notify queue.
	notifyQueueRedis := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	})
	utils.StartHealthMonitor(map[string]*redis.Client{
		"authCache":   utils.GetAuthCacheClient(),
		"notifyQueue": notifyQueueRedis,
	}, database.MongoClient)

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
