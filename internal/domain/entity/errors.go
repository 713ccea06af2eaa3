package entity

import (
	"errors"
	"fmt"
)

// Standard domain errors
var (
	ErrEmptyPrompt       = errors.New("no prompt provided")
	ErrRateLimitExceeded = errors.New("rate limit exceeded: too many requests")
)

// RemoteKind classifies a remote generation failure. The kind decides
// whether the resilient caller is allowed another attempt.
type RemoteKind int

const (
	// KindTransport covers network errors, per-attempt timeouts and
	// responses that fail to parse. Retryable.
	KindTransport RemoteKind = iota
	// KindRateLimited is a provider 429. Retryable with backoff.
	KindRateLimited
	// KindProvider is any other non-success status, or a success with
	// no candidate text. Terminal immediately.
	KindProvider
)

func (k RemoteKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindRateLimited:
		return "rate_limited"
	case KindProvider:
		return "provider"
	}
	return "unknown"
}

// RemoteError is the tagged failure returned by the remote caller once
// attempts are exhausted or a terminal condition occurs.
type RemoteError struct {
	Kind           RemoteKind
	StatusCode     int    // 0 when the failure never reached a status line
	ProviderDetail string // raw provider body or SDK message, diagnostic only
	Cause          error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("remote generation failed (%s, status %d): %s", e.Kind, e.StatusCode, e.ProviderDetail)
	}
	if e.Cause != nil {
		return fmt.Sprintf("remote generation failed (%s): %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("remote generation failed (%s): %s", e.Kind, e.ProviderDetail)
}

func (e *RemoteError) Unwrap() error { return e.Cause }

// Retryable reports whether another attempt may be made for this failure.
func (e *RemoteError) Retryable() bool {
	return e.Kind == KindTransport || e.Kind == KindRateLimited
}

// ToDetail converts the error into the diagnostic payload attached to a
// fallback envelope.
func (e *RemoteError) ToDetail() *Detail {
	return &Detail{
		StatusCode: e.StatusCode,
		Provider:   e.ProviderDetail,
		Message:    e.Error(),
	}
}
