package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/gazostheque/gazostheque/internal/config"
	"github.com/gazostheque/gazostheque/internal/database"
	"github.com/gazostheque/gazostheque/internal/server"
	"github.com/gazostheque/gazostheque/internal/services"

	_ "github.com/gazostheque/gazostheque/docs/api" // Swagger docs
)

// @title Gazostheque API
// @version 1.0.0
// @description Laboratory gas cylinder inventory backend
// @contact.name API Support
// @contact.url https://github.com/gazostheque/gazostheque

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load .env when present; real deployments set the environment.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Session token signing
	if err := services.InitSession(cfg.JWTSecret); err != nil {
		log.Fatalf("Failed to initialize session service: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	app := server.New(cfg, db)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
