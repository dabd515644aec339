package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/registrar/internal/app"
	"github.com/shrimpsizemoose/registrar/internal/cli"
	"github.com/shrimpsizemoose/registrar/internal/metrics"
)

func main() {
	var configPath = flag.String("config", "registrar.toml", "Path to config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logger.Debug.Printf("No .env loaded: %v", err)
	}

	config, err := app.LoadConfig(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}

	service, err := app.NewService(config)
	if err != nil {
		logger.Error.Fatalf("Failed to load records: %v", err)
	}
	defer service.Close()

	logger.Info.Printf("Registrar started with %s store", config.Store.Driver)
	if err := cli.New(service, os.Stdin, os.Stdout).Run(); err != nil {
		logger.Error.Printf("Session ended with error: %v", err)
	}

	if err := metrics.WriteTextfile(config.Metrics.Textfile); err != nil {
		logger.Error.Printf("Failed to write metrics textfile: %v", err)
	}
}
