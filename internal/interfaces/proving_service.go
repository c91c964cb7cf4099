package interfaces

import (
	"context"

	"snarkify-prover/internal/types"
)

// ProvingService The three-operation contract the host system plugs
// into. Implementations never return an error past this boundary: every
// operation yields a well-formed response with failures folded into its
// Error field.
type ProvingService interface {
	// IsLocal reports whether proofs are generated in-process
	IsLocal() bool

	// GetVk retrieves the verification key for a circuit version/type
	GetVk(ctx context.Context, req *types.GetVkRequest) *types.GetVkResponse

	// Prove submits a proof task to the remote service
	Prove(ctx context.Context, req *types.ProveRequest) *types.ProveResponse

	// QueryTask observes the current remote state of a task
	QueryTask(ctx context.Context, req *types.QueryTaskRequest) *types.QueryTaskResponse
}
