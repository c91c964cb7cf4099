package clients

import (
	"encoding/json"
	"fmt"
	"time"

	"snarkify-prover/internal/types"
)

// Wire contract of the Snarkify task API.

// SnarkifyCreateTaskInput The task payload the service stores verbatim.
// It travels as a JSON-encoded string inside the create-task request and
// comes back the same way in the task's input field.
type SnarkifyCreateTaskInput struct {
	CircuitType    types.CircuitType `json:"circuit_type"`
	CircuitVersion string            `json:"circuit_version"`
	HardForkName   string            `json:"hard_fork_name"`
	TaskData       string            `json:"task_data"`
}

// SnarkifyCreateTaskRequest Task creation request body
type SnarkifyCreateTaskRequest struct {
	Input string `json:"input"`
}

// NewSnarkifyCreateTaskRequest builds the create-task body from a prove
// request. Pure transform, no network access.
func NewSnarkifyCreateTaskRequest(req *types.ProveRequest) (*SnarkifyCreateTaskRequest, error) {
	input := SnarkifyCreateTaskInput{
		CircuitType:    req.CircuitType,
		CircuitVersion: req.CircuitVersion,
		HardForkName:   req.HardForkName,
		TaskData:       req.Input,
	}

	data, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task input: %w", err)
	}

	return &SnarkifyCreateTaskRequest{Input: string(data)}, nil
}

// SnarkifyGetTaskResponse Task state as reported by the service. Both
// the create and the query endpoint answer with this shape; a freshly
// created task has no finished/proof fields yet.
type SnarkifyGetTaskResponse struct {
	TaskID   string     `json:"task_id"`
	State    string     `json:"state"`
	Input    string     `json:"input,omitempty"`
	Created  *time.Time `json:"created,omitempty"`
	Started  *time.Time `json:"started,omitempty"`
	Finished *time.Time `json:"finished,omitempty"`
	Proof    *string    `json:"proof,omitempty"`
	Error    *string    `json:"error,omitempty"`
}

// SnarkifyGetVkResponse Verification key response
type SnarkifyGetVkResponse struct {
	Vk string `json:"vk"`
}
