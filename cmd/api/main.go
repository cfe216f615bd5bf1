package main

import (
	"log"

	"github.com/joho/godotenv"

	"disasterscope/adapters/api"
	"disasterscope/app"
	"disasterscope/internal"
	"disasterscope/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()
	analysis := app.NewAnalysisService(cfg.Pipeline, logger)

	svc := api.NewService(cfg, analysis, logger)
	if err := svc.Start(); err != nil {
		log.Fatalf("API server failed: %v", err)
	}
}
