package csp

import (
	"context"
	"sync/atomic"
)

// CancelToken is the Go realization of the single externally-visible
// cancellation flag described in §5: a cooperative, atomic Boolean that a
// host sets from outside the search (e.g. a timeout goroutine) and that the
// forward-checking driver polls at the top of every recursion frame. The
// core never writes to a token; only Cancel does.
type CancelToken struct {
	requested atomic.Bool
}

// NewCancelToken returns a fresh, unset token.
func NewCancelToken() *CancelToken {
	return &CancelToken{}
}

// Cancel sets the token. It is safe to call from any goroutine, including
// concurrently with a search polling Requested.
func (t *CancelToken) Cancel() {
	t.requested.Store(true)
}

// Requested reports whether Cancel has been called.
func (t *CancelToken) Requested() bool {
	return t.requested.Load()
}

// NewCancelTokenFromContext bridges a context.Context into a CancelToken by
// spawning one goroutine that calls Cancel when ctx is done. This lets a
// host signal a timeout with context.WithTimeout instead of managing a
// CancelToken by hand, the same bridging shape the teacher's own
// RunWithContext provides over plain context cancellation.
func NewCancelTokenFromContext(ctx context.Context) *CancelToken {
	t := NewCancelToken()
	if ctx == nil {
		return t
	}
	go func() {
		<-ctx.Done()
		t.Cancel()
	}()
	return t
}
