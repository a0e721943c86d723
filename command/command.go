// Package command parses slash commands from chat input.
package command

import "strings"

// Kind identifies a recognized slash command.
type Kind int

const (
	// Clear discards the conversation locally and server-side.
	Clear Kind = iota
	// Tools lists the backend's available tools.
	Tools
	// Health shows the backend's component status.
	Health
	// Quit exits the client.
	Quit
	// Unknown is a slash-prefixed input that matches no command.
	Unknown
)

// Command is a parsed slash command.
type Command struct {
	Kind Kind
	// Raw is the original input, kept for unknown-command feedback.
	Raw string
}

// Parse reports whether input is a slash command and returns it parsed.
// Anything not starting with "/" is a regular chat message.
func Parse(input string) (Command, bool) {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, "/") {
		return Command{}, false
	}
	name := strings.ToLower(strings.Fields(trimmed)[0])
	switch name {
	case "/clear":
		return Command{Kind: Clear, Raw: trimmed}, true
	case "/tools":
		return Command{Kind: Tools, Raw: trimmed}, true
	case "/health":
		return Command{Kind: Health, Raw: trimmed}, true
	case "/quit", "/exit":
		return Command{Kind: Quit, Raw: trimmed}, true
	default:
		return Command{Kind: Unknown, Raw: trimmed}, true
	}
}
