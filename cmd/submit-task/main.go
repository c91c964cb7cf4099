package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"snarkify-prover/internal/clients"
	"snarkify-prover/internal/config"
	"snarkify-prover/internal/services"
	"snarkify-prover/internal/types"
)

func main() {
	var (
		configPath     = flag.String("config", "config.yaml", "Path to config file")
		circuitType    = flag.String("circuit-type", "chunk", "Circuit type (chunk|batch|bundle)")
		circuitVersion = flag.String("circuit-version", "", "Circuit version (e.g., v0.13.1)")
		hardForkName   = flag.String("hard-fork", "", "Hard fork name (e.g., euclid)")
		input          = flag.String("input", "", "Task input payload (JSON string)")
		inputFile      = flag.String("input-file", "", "Read the task input payload from a file")
		wait           = flag.Bool("wait", false, "Poll the task until it reaches a terminal status")
		waitTimeout    = flag.Duration("wait-timeout", 2*time.Hour, "How long to wait with -wait")
		pollInterval   = flag.Duration("poll-interval", 10*time.Second, "Polling interval with -wait")
	)
	flag.Parse()

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

	taskInput := *input
	if *inputFile != "" {
		data, err := os.ReadFile(*inputFile)
		if err != nil {
			log.Fatalf("Failed to read input file: %v", err)
		}
		taskInput = string(data)
	}
	if taskInput == "" {
		log.Fatal("One of -input or -input-file is required")
	}

	prover := clients.NewSnarkifyClient(config.AppConfig.Snarkify, logger)

	resp := prover.Prove(context.Background(), &types.ProveRequest{
		CircuitType:    ct,
		CircuitVersion: *circuitVersion,
		HardForkName:   *hardForkName,
		Input:          taskInput,
	})
	printJSON(resp)

	if resp.Error != nil {
		os.Exit(1)
	}

	if *wait {
		ctx, cancel := context.WithTimeout(context.Background(), *waitTimeout)
		defer cancel()

		poller := services.NewTaskPoller(prover, *pollInterval, logger)
		final, err := poller.WaitForTask(ctx, resp.TaskID)
		if err != nil {
			log.Fatalf("Failed to wait for task: %v", err)
		}
		printJSON(final)

		if final.Status != types.TaskStatusSuccess {
			os.Exit(1)
		}
	}
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal response: %v", err)
	}
	fmt.Println(string(data))
}
