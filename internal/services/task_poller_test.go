package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snarkify-prover/internal/types"
)

// fakeProver replays a scripted sequence of query responses
type fakeProver struct {
	responses []*types.QueryTaskResponse
	calls     int
}

func (f *fakeProver) IsLocal() bool { return false }

func (f *fakeProver) GetVk(ctx context.Context, req *types.GetVkRequest) *types.GetVkResponse {
	return &types.GetVkResponse{}
}

func (f *fakeProver) Prove(ctx context.Context, req *types.ProveRequest) *types.ProveResponse {
	return &types.ProveResponse{}
}

func (f *fakeProver) QueryTask(ctx context.Context, req *types.QueryTaskRequest) *types.QueryTaskResponse {
	i := f.calls
	if i >= len(f.responses) {
		i = len(f.responses) - 1
	}
	f.calls++
	resp := *f.responses[i]
	resp.TaskID = req.TaskID
	return &resp
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func strPtr(s string) *string { return &s }

func TestWaitForTaskReachesTerminalStatus(t *testing.T) {
	prover := &fakeProver{responses: []*types.QueryTaskResponse{
		{Status: types.TaskStatusQueued},
		{Status: types.TaskStatusProving},
		{Status: types.TaskStatusSuccess, Proof: strPtr("0xproof")},
	}}

	poller := NewTaskPoller(prover, 5*time.Millisecond, testLogger())
	resp, err := poller.WaitForTask(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, "abc123", resp.TaskID)
	assert.Equal(t, types.TaskStatusSuccess, resp.Status)
	require.NotNil(t, resp.Proof)
	assert.Equal(t, 3, prover.calls)
}

func TestWaitForTaskReturnsFailedTask(t *testing.T) {
	// a remotely failed task carries a terminal status and an error
	// message at the same time; the terminal status wins
	prover := &fakeProver{responses: []*types.QueryTaskResponse{
		{Status: types.TaskStatusFailed, Error: strPtr("proving panicked")},
	}}

	poller := NewTaskPoller(prover, 5*time.Millisecond, testLogger())
	resp, err := poller.WaitForTask(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, types.TaskStatusFailed, resp.Status)
	assert.Equal(t, 1, prover.calls)
}

func TestWaitForTaskPollsThroughQueryFailures(t *testing.T) {
	// a folded query failure says nothing about the task; keep polling
	prover := &fakeProver{responses: []*types.QueryTaskResponse{
		{Status: types.TaskStatusQueued, Error: strPtr("Failed to query proof: connection reset")},
		{Status: types.TaskStatusSuccess},
	}}

	poller := NewTaskPoller(prover, 5*time.Millisecond, testLogger())
	resp, err := poller.WaitForTask(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, types.TaskStatusSuccess, resp.Status)
	assert.Equal(t, 2, prover.calls)
}

func TestWaitForTaskContextExpiry(t *testing.T) {
	prover := &fakeProver{responses: []*types.QueryTaskResponse{
		{Status: types.TaskStatusProving},
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	poller := NewTaskPoller(prover, 5*time.Millisecond, testLogger())
	_, err := poller.WaitForTask(ctx, "abc123")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "abc123")
}
