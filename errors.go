package parley

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrEmptyMessage indicates a send was rejected because the message
	// was empty after trimming. Callers treat it as a no-op.
	ErrEmptyMessage = errors.New("empty message")

	// ErrBusy indicates a send was rejected because another exchange is
	// still in flight. Sends are dropped, not queued.
	ErrBusy = errors.New("send already in flight")

	// ErrStatus indicates the backend returned a non-success HTTP status.
	ErrStatus = errors.New("unexpected status")
)
