package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// Providers normalize backend failures into the types below so callers
// never branch on SDK-specific errors. The question pipeline additionally
// salvages partial output from ErrInvalidResponse and ErrMaxTokensExceeded,
// so both carry the raw Content that triggered them.

// ErrRateLimit reports an HTTP 429 from the backend.
// RetryAfter holds the server-suggested wait, zero when none was given.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse reports model output that failed schema validation
// or was not parseable JSON. Content is the offending payload as received.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable reports that the backend could not serve the
// request at all: network failure, 5xx, or missing configuration.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports a response cut off at the MaxTokens limit.
// Content holds whatever was generated before truncation.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}
