package types

import (
	"fmt"
	"strings"
	"time"
)

// CircuitType identifies which proof-generation circuit a task or
// verification key belongs to. The remote API encodes it as a u8.
type CircuitType uint8

const (
	CircuitUndefined CircuitType = iota
	CircuitChunk
	CircuitBatch
	CircuitBundle
)

// String returns the human-readable circuit name
func (c CircuitType) String() string {
	switch c {
	case CircuitChunk:
		return "chunk"
	case CircuitBatch:
		return "batch"
	case CircuitBundle:
		return "bundle"
	default:
		return "undefined"
	}
}

// ParseCircuitType parses a circuit name (as used by the CLI tools)
func ParseCircuitType(s string) (CircuitType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chunk":
		return CircuitChunk, nil
	case "batch":
		return CircuitBatch, nil
	case "bundle":
		return CircuitBundle, nil
	default:
		return CircuitUndefined, fmt.Errorf("unknown circuit type: %q", s)
	}
}

// TaskStatus Normalized task status exposed to the host system
type TaskStatus string

const (
	TaskStatusQueued  TaskStatus = "queued"
	TaskStatusProving TaskStatus = "proving"
	TaskStatusSuccess TaskStatus = "success"
	TaskStatusFailed  TaskStatus = "failed"
)

// IsTerminal reports whether the task reached a final state
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusSuccess || s == TaskStatusFailed
}

// ParseTaskState maps the remote task-state vocabulary onto TaskStatus.
// Unrecognized states fall back to queued: on uncertainty the adapter
// never claims a terminal state.
func ParseTaskState(state string) TaskStatus {
	switch strings.ToLower(state) {
	case "queued":
		return TaskStatusQueued
	case "proving":
		return TaskStatusProving
	case "success":
		return TaskStatusSuccess
	case "failed":
		return TaskStatusFailed
	default:
		return TaskStatusQueued
	}
}

// EpochSeconds converts an optional remote timestamp to seconds since epoch
func EpochSeconds(t *time.Time) *float64 {
	if t == nil {
		return nil
	}
	sec := float64(t.Unix())
	return &sec
}

// EpochSecondsOrZero converts a remote creation timestamp to seconds since
// epoch. 0.0 is the sentinel for "the remote service sent no creation
// time", not a valid point in time.
func EpochSecondsOrZero(t *time.Time) float64 {
	if t == nil {
		return 0.0
	}
	return float64(t.Unix())
}

// ComputeTimeSec derives the proving duration. Present iff both endpoints
// are present, and equal to finished - started exactly.
func ComputeTimeSec(startedAt, finishedAt *float64) *float64 {
	if startedAt == nil || finishedAt == nil {
		return nil
	}
	d := *finishedAt - *startedAt
	return &d
}
