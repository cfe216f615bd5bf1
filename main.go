package main

import (
	"log"

	"github.com/joho/godotenv"

	"disasterscope/app"
	"disasterscope/internal"
	"disasterscope/internal/config"
	"disasterscope/ui"
)

func main() {
	// .env is optional; environment variables win when both are set
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()
	analysis := app.NewAnalysisService(cfg.Pipeline, logger)

	uiApp, err := ui.NewApp(cfg, analysis, logger)
	if err != nil {
		log.Fatalf("Failed to initialize UI: %v", err)
	}

	if err := uiApp.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
