package parley

import "time"

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is a single entry in the conversation thread. Messages are
// immutable once appended: reconciliation adds new entries, it never
// rewrites prior ones.
type Message struct {
	Text      string
	Sender    Sender
	Timestamp time.Time
	// ToolsUsed lists the backend tools invoked while producing an
	// assistant reply, in invocation order. Empty for user messages.
	ToolsUsed []string
	// IsError marks an assistant-side placeholder for a failed exchange.
	IsError bool
}

// NewUserMessage creates a user message stamped at send time.
func NewUserMessage(text string, at time.Time) Message {
	return Message{Text: text, Sender: SenderUser, Timestamp: at}
}

// NewAssistantMessage creates an assistant message from a confirmed exchange.
func NewAssistantMessage(text string, at time.Time, tools []string) Message {
	return Message{Text: text, Sender: SenderAssistant, Timestamp: at, ToolsUsed: tools}
}

// NewErrorMessage creates the assistant-flagged entry that stands in for a
// failed exchange.
func NewErrorMessage(text string, at time.Time) Message {
	return Message{Text: text, Sender: SenderAssistant, Timestamp: at, IsError: true}
}
