package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"snarkify-prover/internal/clients"
	"snarkify-prover/internal/config"
	"snarkify-prover/internal/types"
)

func main() {
	var (
		configPath     = flag.String("config", "config.yaml", "Path to config file")
		circuitType    = flag.String("circuit-type", "chunk", "Circuit type (chunk|batch|bundle)")
		circuitVersion = flag.String("circuit-version", "", "Circuit version (e.g., v0.13.1)")
	)
	flag.Parse()

	if *circuitVersion == "" {
		log.Fatal("-circuit-version is required")
	}

	if err := config.LoadConfig(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logrus.New()
	if level, err := logrus.ParseLevel(config.AppConfig.Logging.Level); err == nil {
		logger.SetLevel(level)
	}

	ct, err := types.ParseCircuitType(*circuitType)
	if err != nil {
		log.Fatalf("Invalid -circuit-type: %v", err)
	}

	prover := clients.NewSnarkifyClient(config.AppConfig.Snarkify, logger)

	resp := prover.GetVk(context.Background(), &types.GetVkRequest{
		CircuitVersion: *circuitVersion,
		CircuitType:    ct,
	})
	if resp.Error != nil {
		fmt.Fprintln(os.Stderr, *resp.Error)
		os.Exit(1)
	}

	fmt.Println(resp.Vk)
}
