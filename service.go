package parley

import (
	"context"
	"time"
)

// Service is the remote chatbot backend. Implementations convert the wire
// format to domain types; policy for failures (swallow vs. inline error
// entry) lives in the Engine.
type Service interface {
	// History returns the prior exchanges recorded for a session, in
	// chronological order.
	History(ctx context.Context, sessionID string) ([]Message, error)

	// Chat submits a user message for a session and returns the
	// assistant's confirmed reply.
	Chat(ctx context.Context, sessionID, message string) (Reply, error)

	// ClearSession deletes the backend's state for a session.
	ClearSession(ctx context.Context, sessionID string) error

	// Tools lists the backend's available tools.
	Tools(ctx context.Context) ([]ToolInfo, error)

	// Health reports the backend's component status.
	Health(ctx context.Context) (Health, error)
}

// Reply is a confirmed assistant response to a chat exchange.
type Reply struct {
	Text      string
	Timestamp time.Time
	ToolsUsed []string
}

// ToolInfo describes one backend tool.
type ToolInfo struct {
	Name        string
	Description string
}

// Health is the backend's self-reported status.
type Health struct {
	Status    string
	Model     string
	MCP       string
	Redis     string
	ToolCount int
}
