package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"snarkify-prover/internal/interfaces"
	"snarkify-prover/internal/types"
)

// TaskPoller polls a proving service until a task reaches a terminal
// status. The remote service is the sole source of state transitions;
// the poller just observes.
type TaskPoller struct {
	prover   interfaces.ProvingService
	interval time.Duration
	logger   *logrus.Logger
}

// NewTaskPoller creates a new task poller
func NewTaskPoller(prover interfaces.ProvingService, interval time.Duration, logger *logrus.Logger) *TaskPoller {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &TaskPoller{
		prover:   prover,
		interval: interval,
		logger:   logger,
	}
}

// WaitForTask polls the task until it reports success or failed, or the
// context expires. Folded query errors are logged and polling continues:
// a failed observation says nothing about the task itself.
func (p *TaskPoller) WaitForTask(ctx context.Context, taskID string) (*types.QueryTaskResponse, error) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		resp := p.prover.QueryTask(ctx, &types.QueryTaskRequest{TaskID: taskID})

		// a failed task reports both a terminal status and an error
		// message; only a non-terminal response with an error is a
		// failed observation
		if resp.Status.IsTerminal() {
			return resp, nil
		}
		if resp.Error != nil {
			p.logger.WithFields(logrus.Fields{
				"task_id": taskID,
				"error":   *resp.Error,
			}).Warn("query_task failed, will poll again")
		} else {
			p.logger.WithFields(logrus.Fields{
				"task_id": taskID,
				"status":  resp.Status,
			}).Info("task still in progress")
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("gave up waiting for task %s: %w", taskID, ctx.Err())
		case <-ticker.C:
		}
	}
}
