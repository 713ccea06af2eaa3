package repository

import (
	"context"
)

// AIProvider is a single-shot generation adapter. Implementations
// translate provider failures into *entity.RemoteError.
type AIProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// RemoteCaller produces a reply for a prompt, absorbing transient
// provider failures. system is prefixed to the prompt before submission.
type RemoteCaller interface {
	Call(ctx context.Context, prompt, system string) (string, error)
}

// RequestLimiter gates request admission per client.
type RequestLimiter interface {
	Allow(ctx context.Context, clientID string) (bool, error)
}
