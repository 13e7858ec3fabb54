package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kucukaslan/userapi/api"
	"kucukaslan/userapi/bootstrap"
	"kucukaslan/userapi/buildinfo"
	"kucukaslan/userapi/config"
	"kucukaslan/userapi/database"
	"kucukaslan/userapi/services"

	_ "kucukaslan/userapi/docs" // Import generated docs
)

// @title User API
// @version 1.0
// @description User management service with activity analytics backed by Redis and ClickHouse
// @BasePath /
// @schemes http

func main() {
	// Set application start time for accurate uptime tracking
	buildinfo.SetStartTime(time.Now())

	// Log build information
	info := buildinfo.GetInfo()
	log.Printf("Starting %s\nVersion: %s, Commit: %s, BuildDate: %s, GoVersion: %s, Hostname: %s",
		info.Service, info.Version, info.Commit, info.BuildDate, info.GoVersion, info.Hostname)

	// Load configuration
	cfg := config.Load()
	// read once here and passed down; nothing else consults PORT
	port := bootstrap.ResolvePort(os.LookupEnv)

	// Initialize ClickHouse connection
	if err := database.InitClickHouse(&cfg.ClickHouse); err != nil {
		log.Fatalf("Failed to initialize ClickHouse: %v", err)
	}
	// Initialize Redis connection
	if err := database.InitRedis(&cfg.Redis); err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	// Activity is buffered and written to ClickHouse in batches, deduplicated through Redis
	batcher := services.NewActivityBatcher(
		cfg.Activity.BufferCapacity,
		cfg.Activity.BatchSize,
		cfg.Activity.FlushInterval(),
		database.GetClickHouseDB(),
		database.NewActivityDedup(database.GetRedisClient(), cfg.Activity.DedupTTL()),
	)
	batcher.Start()

	// Initialize services
	userService, err := services.NewUserService(database.NewUserStore(database.GetRedisClient()), batcher)
	if err != nil {
		log.Fatalf("Failed to initialize UserService: %v", err)
	}
	activityService, err := services.NewActivityService(database.GetClickHouseDB())
	if err != nil {
		log.Fatalf("Failed to initialize ActivityService: %v", err)
	}

	// Build the fiber app with all routes
	server := api.NewServer(
		api.ServerConfig{
			IdleTimeout:    cfg.API.IdleTimeout(),
			RequestLogging: cfg.API.RequestLogging,
		},
		api.Handlers{
			Users:   api.NewUserHandler(userService),
			Metrics: api.NewMetricsHandler(activityService),
			Health:  api.NewHealthHandler(database.ClickHouseHealthCheck, database.RedisHealthCheck, batcher),
		},
	)

	// Listen from a different goroutine; the startup lines are logged once the port is bound
	startup := bootstrap.New(log.New(os.Stdout, "", 0)).Start(server, port)

	c := make(chan os.Signal, 1)                    // Create channel to signify a signal being sent
	signal.Notify(c, os.Interrupt, syscall.SIGTERM) // When an interrupt or termination signal is sent, notify the channel

	select {
	case err := <-startup.Done:
		if err != nil {
			log.Fatalf("Failed to start server on port %s: %v", port, err)
		}
		log.Println("Server stopped")
	case <-c:
		log.Println("Gracefully shutting down...")
		if err := server.Shutdown(); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}

	log.Println("Running cleanup tasks...")

	// Shutdown activity batcher (flushes remaining events)
	if err := services.ShutdownBatcher(batcher); err != nil {
		log.Printf("Error shutting down activity batcher: %v", err)
	}
	// Close database connections
	if err := database.CloseClickHouse(); err != nil {
		log.Printf("Error closing ClickHouse: %v", err)
	}
	if err := database.CloseRedis(); err != nil {
		log.Printf("Error closing Redis: %v", err)
	}

	log.Println("Fiber was successful shutdown.")
}
