package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrRateLimited maps an upstream 429. The caller keeps the status code.
	ErrRateLimited = errors.New("upstream rate limit reached")
	// ErrQuotaExhausted maps an upstream 402.
	ErrQuotaExhausted = errors.New("upstream quota exhausted")
)

// UpstreamError carries the raw upstream failure for server-side logging.
// Its body must never be echoed to the caller.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}
