// Package bubbletea provides the Bubble Tea TUI for the parley client.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mpasternak/parley"
)

// Run creates and runs the Bubble Tea program. It blocks until the program
// exits. The context is used for graceful shutdown: when cancelled, the
// program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// HydrateDoneMsg signals that resume-time hydration finished.
type HydrateDoneMsg struct {
	Err error
}

// SendDoneMsg signals that an exchange finished and the store holds the
// reconciled thread.
type SendDoneMsg struct {
	Err error
}

// ClearDoneMsg signals that the conversation was cleared and a fresh
// session is active.
type ClearDoneMsg struct {
	SessionID string
}

// ToolsMsg carries the backend's tool list for display.
type ToolsMsg struct {
	Tools []parley.ToolInfo
	Err   error
}

// HealthMsg carries the backend's health report for display.
type HealthMsg struct {
	Health parley.Health
	Err    error
}
