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
		configPath   = flag.String("config", "config.yaml", "Path to config file")
		taskID       = flag.String("task-id", "", "Task id to query")
		wait         = flag.Bool("wait", false, "Poll the task until it reaches a terminal status")
		waitTimeout  = flag.Duration("wait-timeout", 2*time.Hour, "How long to wait with -wait")
		pollInterval = flag.Duration("poll-interval", 10*time.Second, "Polling interval with -wait")
	)
	flag.Parse()

	if *taskID == "" {
		log.Fatal("-task-id is required")
	}

	if err := config.LoadConfig(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logrus.New()
	if level, err := logrus.ParseLevel(config.AppConfig.Logging.Level); err == nil {
		logger.SetLevel(level)
	}

	prover := clients.NewSnarkifyClient(config.AppConfig.Snarkify, logger)

	var resp *types.QueryTaskResponse
	if *wait {
		ctx, cancel := context.WithTimeout(context.Background(), *waitTimeout)
		defer cancel()

		poller := services.NewTaskPoller(prover, *pollInterval, logger)
		final, err := poller.WaitForTask(ctx, *taskID)
		if err != nil {
			log.Fatalf("Failed to wait for task: %v", err)
		}
		resp = final
	} else {
		resp = prover.QueryTask(context.Background(), &types.QueryTaskRequest{TaskID: *taskID})
	}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal response: %v", err)
	}
	fmt.Println(string(data))

	if resp.Error != nil {
		os.Exit(1)
	}
}
