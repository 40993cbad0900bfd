package ai

import (
	"context"

	"github.com/hearthside/conduit/core"
)

// Agent runs the configured remote assistant over a conversation log.
// Implementations must be thread-safe for concurrent use.
type Agent interface {
	// Generate runs one assistant execution over the given turns and
	// returns the assistant's reply text. The call blocks until the
	// remote run reaches a terminal state, the context is cancelled,
	// or the configured run timeout elapses.
	// Returns ErrMissingAssistantID before any remote call is made if
	// the agent has no assistant configured.
	Generate(ctx context.Context, turns []core.Turn) (string, error)
}

// ImageGenerator produces images from text prompts.
// Implementations must be thread-safe for concurrent use.
type ImageGenerator interface {
	// Generate performs one synchronous image generation call and
	// returns the first result's descriptor. Inline image data is
	// never included in the result.
	// Returns ErrNoImage if the provider reports success but returns
	// no image or no URL.
	Generate(ctx context.Context, req *ImageRequest) (*Image, error)
}

// Provider aggregates AI services for one authenticated client handle.
// A provider is created per config entry and is read-only after
// creation; Close releases it when the entry unloads.
type Provider interface {
	// Agent returns the assistant run service.
	Agent() Agent

	// Images returns the image generation service.
	Images() ImageGenerator

	// Verify probes the credentials with a cheap authenticated call.
	// Returns ErrAuthentication if the credentials are rejected; any
	// other error indicates a transient provider problem.
	Verify(ctx context.Context) error

	// Close releases resources held by the provider and its services.
	Close() error
}
