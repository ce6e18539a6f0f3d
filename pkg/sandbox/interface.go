package sandbox

import "context"

// Provider abstracts a remote sandboxed code-execution service.
//
// Submit returns an error only for local failures (encoding, context
// cancellation, exhausted retries). Protocol-level rejections from the
// service are reported inside ExecutionResponse.Error so that callers can
// classify every outcome through one table.
type Provider interface {
	// Name identifies the provider instance (for logging and cache keys).
	Name() string
	// Submit runs one submission to completion.
	Submit(ctx context.Context, req *RunRequest) (*ExecutionResponse, error)
	// Languages lists the language identifiers the service accepts.
	Languages(ctx context.Context) ([]string, error)
}
