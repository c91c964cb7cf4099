package types

// Request/response shapes of the three-operation proving contract the
// host system consumes. Every response is total: failures are folded
// into the Error field and the remaining fields take safe defaults.

// GetVkRequest addresses a verification key by circuit version and type
type GetVkRequest struct {
	CircuitVersion string      `json:"circuit_version"`
	CircuitType    CircuitType `json:"circuit_type"`
}

// GetVkResponse verification key retrieval result
type GetVkResponse struct {
	Vk    string  `json:"vk"`
	Error *string `json:"error,omitempty"`
}

// ProveRequest proof task submission
type ProveRequest struct {
	CircuitType    CircuitType `json:"circuit_type" binding:"required"`
	CircuitVersion string      `json:"circuit_version" binding:"required"`
	HardForkName   string      `json:"hard_fork_name"`
	Input          string      `json:"input" binding:"required"`
}

// ProveResponse task created by the remote service, or the canonical
// failure shape: empty task id, status failed, input echoed, error set
type ProveResponse struct {
	TaskID         string      `json:"task_id"`
	CircuitType    CircuitType `json:"circuit_type"`
	CircuitVersion string      `json:"circuit_version"`
	HardForkName   string      `json:"hard_fork_name"`
	Status         TaskStatus  `json:"status"`
	CreatedAt      float64     `json:"created_at"`
	StartedAt      *float64    `json:"started_at,omitempty"`
	FinishedAt     *float64    `json:"finished_at,omitempty"`
	ComputeTimeSec *float64    `json:"compute_time_sec,omitempty"`
	Input          *string     `json:"input,omitempty"`
	Proof          *string     `json:"proof,omitempty"`
	Vk             *string     `json:"vk,omitempty"`
	Error          *string     `json:"error,omitempty"`
}

// QueryTaskRequest polls one task by its remote-assigned id
type QueryTaskRequest struct {
	TaskID string `json:"task_id"`
}

// QueryTaskResponse observed remote task state. On failure the requested
// task id is echoed, circuit type is undefined and status stays queued —
// a neutral default, not an assertion about the actual remote state.
type QueryTaskResponse struct {
	TaskID         string      `json:"task_id"`
	CircuitType    CircuitType `json:"circuit_type"`
	CircuitVersion string      `json:"circuit_version"`
	HardForkName   string      `json:"hard_fork_name"`
	Status         TaskStatus  `json:"status"`
	CreatedAt      float64     `json:"created_at"`
	StartedAt      *float64    `json:"started_at,omitempty"`
	FinishedAt     *float64    `json:"finished_at,omitempty"`
	ComputeTimeSec *float64    `json:"compute_time_sec,omitempty"`
	Input          *string     `json:"input,omitempty"`
	Proof          *string     `json:"proof,omitempty"`
	Vk             *string     `json:"vk,omitempty"`
	Error          *string     `json:"error,omitempty"`
}
