package clients

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snarkify-prover/internal/types"
)

func TestNewSnarkifyCreateTaskRequest(t *testing.T) {
	req := &types.ProveRequest{
		CircuitType:    types.CircuitBatch,
		CircuitVersion: "v0.13.1",
		HardForkName:   "euclid",
		Input:          `{"block":42}`,
	}

	taskReq, err := NewSnarkifyCreateTaskRequest(req)
	require.NoError(t, err)

	// the input travels as a nested JSON string, exactly the shape the
	// query endpoint later hands back
	var input SnarkifyCreateTaskInput
	require.NoError(t, json.Unmarshal([]byte(taskReq.Input), &input))

	assert.Equal(t, types.CircuitBatch, input.CircuitType)
	assert.Equal(t, "v0.13.1", input.CircuitVersion)
	assert.Equal(t, "euclid", input.HardForkName)
	assert.Equal(t, `{"block":42}`, input.TaskData)
}

func TestSnarkifyCreateTaskInputCircuitTypeIsNumeric(t *testing.T) {
	data, err := json.Marshal(SnarkifyCreateTaskInput{CircuitType: types.CircuitChunk})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"circuit_type":1`)
}
