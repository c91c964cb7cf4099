package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/sirupsen/logrus"

	"snarkify-prover/internal/clients"
	"snarkify-prover/internal/config"
	"snarkify-prover/internal/handlers"
	"snarkify-prover/internal/router"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	// Load configuration
	if err := config.LoadConfig(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logrus.New()
	if level, err := logrus.ParseLevel(config.AppConfig.Logging.Level); err == nil {
		logger.SetLevel(level)
	}

	prover := clients.NewSnarkifyClient(config.AppConfig.Snarkify, logger)
	proverHandler := handlers.NewProverHandler(prover, logger)
	r := router.SetupRouter(proverHandler)

	addr := fmt.Sprintf("%s:%d", config.AppConfig.Server.Host, config.AppConfig.Server.Port)
	logger.WithFields(logrus.Fields{
		"addr":     addr,
		"base_url": config.AppConfig.Snarkify.BaseURL,
	}).Info("starting prover facade")

	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
