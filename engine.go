package parley

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// FallbackText is the assistant-flagged entry appended when an exchange
// fails. The failure itself is never surfaced as an error to the caller.
const FallbackText = "Sorry, something went wrong. Please try again."

// Engine orchestrates the message lifecycle between the Store, the
// persisted Identity, and the remote Service. It is the only writer of the
// Store while an exchange is in flight.
//
// At most one exchange may be in flight per Engine. Excess sends are
// rejected with ErrBusy rather than queued.
type Engine struct {
	service  Service
	identity Identity
	store    *Store
	logger   *slog.Logger

	sending atomic.Bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger for degraded-path events (hydration failures,
// failed exchanges, stale results). Default discards.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates an Engine wired to the given service, identity, and store.
func NewEngine(service Service, identity Identity, store *Store, opts ...EngineOption) *Engine {
	e := &Engine{
		service:  service,
		identity: identity,
		store:    store,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Sending reports whether an exchange is currently in flight.
func (e *Engine) Sending() bool { return e.sending.Load() }

// Store returns the conversation store the engine writes to.
func (e *Engine) Store() *Store { return e.store }

// Send runs one exchange: optimistic user append, remote call, and
// reconciliation of the confirmed or failed reply into the store.
//
// Guard rejections return ErrEmptyMessage or ErrBusy and leave the store
// untouched; callers treat both as no-ops. A remote failure returns nil —
// it is represented purely as an inline error entry. The optimistic user
// message is never retracted, even when the exchange fails.
func (e *Engine) Send(ctx context.Context, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyMessage
	}
	if !e.sending.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer e.sending.Store(false)

	sessionID := e.identity.Resolve()
	e.store.Append(NewUserMessage(raw, time.Now()))

	reply, err := e.service.Chat(ctx, sessionID, raw)

	// The conversation may have been cleared while the request was in
	// flight. A reply for a replaced session is discarded, not appended.
	if current := e.identity.Resolve(); current != sessionID {
		e.logger.Warn("discarding reply for replaced session",
			"session", sessionID, "current", current)
		return nil
	}

	if err != nil {
		e.logger.Error("exchange failed", "session", sessionID, "error", err)
		e.store.Append(NewErrorMessage(FallbackText, time.Now()))
		return nil
	}

	e.store.Append(NewAssistantMessage(reply.Text, reply.Timestamp, reply.ToolsUsed))
	return nil
}

// Hydrate populates the store from the backend's recorded history for the
// current session, replacing any present content. Replacing rather than
// appending makes repeated hydration idempotent.
//
// On failure the store is left untouched and the error is logged; an empty
// thread is an acceptable fallback, so callers may ignore the returned
// error. Hydrate should complete before the first send's reply is
// reconciled; callers gate sends during the resume window.
func (e *Engine) Hydrate(ctx context.Context) error {
	sessionID := e.identity.Resolve()
	history, err := e.service.History(ctx, sessionID)
	if err != nil {
		e.logger.Warn("hydration failed, keeping thread as-is",
			"session", sessionID, "error", err)
		return err
	}
	e.store.ReplaceAll(history)
	return nil
}

// ClearConversation deletes server-side state for the current session
// (best effort), empties the store, and rotates the persisted identity.
// It returns the fresh session id.
func (e *Engine) ClearConversation(ctx context.Context) string {
	sessionID := e.identity.Resolve()
	if err := e.service.ClearSession(ctx, sessionID); err != nil {
		e.logger.Warn("server-side clear failed", "session", sessionID, "error", err)
	}
	e.store.Clear()
	return e.identity.Reset()
}
