package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mpasternak/parley/command"
)

// runCommand dispatches a parsed slash command. Commands that talk to the
// server run as tea.Cmds; /clear blocks input until ClearDoneMsg arrives so
// a send cannot race the session rotation.
func (m Model) runCommand(cmd command.Command) (tea.Model, tea.Cmd) {
	switch cmd.Kind {
	case command.Clear:
		m.running = true
		m.Input.Blur()
		return m, tea.Batch(clearConversation(m.engine), m.spin.Tick)

	case command.Tools:
		return m, fetchTools(m.service)

	case command.Health:
		return m, fetchHealth(m.service)

	case command.Quit:
		return m, tea.Quit

	default:
		m.notice = NewNoticeBlock([]string{"Unknown command: " + cmd.Raw}, m.styles)
		return m.refreshViewport(), nil
	}
}
