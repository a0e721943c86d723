package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/mpasternak/parley"
	"github.com/mpasternak/parley/command"
)

var _ tea.Model = Model{}

// Config carries static display context for the status line.
type Config struct {
	ServerURL string
	SessionID string
}

// Model is the Bubble Tea model for the parley client. All thread state
// lives in the engine's store; the model holds derived render blocks and
// the in-flight/hydrating gates.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	engine  *parley.Engine
	service parley.Service
	theme   parley.Theme
	styles  Styles
	config  Config
	spin    spinner.Model

	blocks []MessageBlock
	notice MessageBlock

	running   bool
	hydrating bool
	ready     bool
}

// New creates a TUI Model wired to the given engine and service.
func New(engine *parley.Engine, service parley.Service, theme parley.Theme, config Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 0

	styles := NewStyles(theme)
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.Muted

	return Model{
		Input:     ti,
		engine:    engine,
		service:   service,
		theme:     theme,
		styles:    styles,
		config:    config,
		spin:      sp,
		hydrating: true,
	}
}

// Running returns whether an exchange is in flight.
func (m Model) Running() bool { return m.running }

// Hydrating returns whether resume-time hydration is still pending.
func (m Model) Hydrating() bool { return m.hydrating }

// Init implements tea.Model. It kicks off history hydration for the
// resumed session.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, hydrate(m.engine), m.spin.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case HydrateDoneMsg:
		// Failure is silent degrade: an empty thread is a valid start.
		m.hydrating = false
		m = m.syncThread()
		return m, nil

	case SendDoneMsg:
		m.running = false
		m = m.syncThread()
		cmd := m.Input.Focus()
		return m, cmd

	case ClearDoneMsg:
		m.running = false
		m.config.SessionID = msg.SessionID
		m.notice = NewNoticeBlock([]string{"Conversation cleared."}, m.styles)
		m = m.syncThread()
		cmd := m.Input.Focus()
		return m, cmd

	case ToolsMsg:
		m.notice = m.toolsNotice(msg)
		m = m.refreshViewport()
		return m, nil

	case HealthMsg:
		m.notice = m.healthNotice(msg)
		m = m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.running && !m.hydrating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	// Pass remaining messages to sub-components. The viewport always
	// receives them so mouse-wheel scrolling works during a send.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !m.running {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	const chromeHeight = 4 // status + input + separating newlines
	vpHeight := msg.Height - chromeHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
		m = m.syncThread()
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
		m = m.refreshViewport()
	}

	m.Input.Width = msg.Width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEnter:
		if m.running || m.hydrating {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		return m.submitInput(text)
	}

	// Navigation keys reach the viewport even while a send is in flight,
	// so the user can scroll back through the thread while waiting. Typed
	// runes go to the input only when idle.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if msg.Type != tea.KeyRunes {
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	if !m.running {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) submitInput(text string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")
	m.notice = nil

	if cmd, ok := command.Parse(text); ok {
		return m.runCommand(cmd)
	}

	// Show the user message immediately; the engine appends the
	// authoritative copy and the thread is re-synced on SendDoneMsg.
	m.blocks = append(m.blocks, NewUserBlock(text, m.styles))
	m = m.refreshViewport()

	m.running = true
	m.Input.Blur()
	return m, tea.Batch(send(m.engine, text), m.spin.Tick)
}

// syncThread rebuilds the render blocks from the store snapshot.
func (m Model) syncThread() Model {
	snapshot := m.engine.Store().Messages()
	blocks := make([]MessageBlock, 0, len(snapshot))
	for _, msg := range snapshot {
		switch {
		case msg.Sender == parley.SenderUser:
			blocks = append(blocks, NewUserBlock(msg.Text, m.styles))
		case msg.IsError:
			blocks = append(blocks, NewErrorBlock(msg.Text, m.styles))
		default:
			blocks = append(blocks, NewAssistantBlock(msg.Text, msg.ToolsUsed, m.theme, m.styles))
		}
	}
	m.blocks = blocks
	return m.refreshViewport()
}

func (m Model) refreshViewport() Model {
	if !m.ready {
		return m
	}
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m
}

func (m Model) renderContent() string {
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	if m.notice != nil {
		if len(m.blocks) > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.notice.View(m.Viewport.Width))
	}
	return b.String()
}

func (m Model) statusLine() string {
	hint := "Enter to send · /clear /tools /health /quit · Ctrl+C to quit"
	switch {
	case m.hydrating:
		hint = "Loading history..."
		if m.config.ServerURL != "" {
			hint = "Loading history from " + m.config.ServerURL + "..."
		}
	case m.running:
		hint = "Waiting for reply..."
	}
	if id := m.config.SessionID; id != "" {
		if len(id) > 8 {
			id = id[:8]
		}
		hint += "  ·  session " + id
	}
	// Truncate before styling: display width is measured on plain text.
	if m.Viewport.Width > 0 {
		hint = runewidth.Truncate(hint, m.Viewport.Width, "…")
	}
	if m.hydrating || m.running {
		return m.spin.View() + " " + m.styles.Muted.Render(hint)
	}
	return m.styles.Muted.Render(hint)
}

func (m Model) toolsNotice(msg ToolsMsg) MessageBlock {
	if msg.Err != nil {
		return NewNoticeBlock([]string{"Could not fetch tools from the server."}, m.styles)
	}
	if len(msg.Tools) == 0 {
		return NewNoticeBlock([]string{"The server reports no available tools."}, m.styles)
	}
	lines := make([]string, 0, len(msg.Tools)+1)
	lines = append(lines, fmt.Sprintf("Available tools (%d):", len(msg.Tools)))
	for _, tool := range msg.Tools {
		lines = append(lines, "  "+tool.Name+": "+tool.Description)
	}
	return NewNoticeBlock(lines, m.styles)
}

func (m Model) healthNotice(msg HealthMsg) MessageBlock {
	if msg.Err != nil {
		return NewNoticeBlock([]string{"Could not reach the server health endpoint."}, m.styles)
	}
	h := msg.Health
	return NewNoticeBlock([]string{
		"Server status: " + h.Status,
		fmt.Sprintf("  model: %s  mcp: %s (%d tools)  redis: %s", h.Model, h.MCP, h.ToolCount, h.Redis),
	}, m.styles)
}

// send runs one exchange off the event loop. Engine guard rejections
// (empty input, busy) are no-ops by contract; remote failures are already
// reconciled into the thread, so Update only uses the message as a signal.
func send(engine *parley.Engine, text string) tea.Cmd {
	return func() tea.Msg {
		return SendDoneMsg{Err: engine.Send(context.Background(), text)}
	}
}

func hydrate(engine *parley.Engine) tea.Cmd {
	return func() tea.Msg {
		return HydrateDoneMsg{Err: engine.Hydrate(context.Background())}
	}
}

func clearConversation(engine *parley.Engine) tea.Cmd {
	return func() tea.Msg {
		return ClearDoneMsg{SessionID: engine.ClearConversation(context.Background())}
	}
}

func fetchTools(service parley.Service) tea.Cmd {
	return func() tea.Msg {
		tools, err := service.Tools(context.Background())
		return ToolsMsg{Tools: tools, Err: err}
	}
}

func fetchHealth(service parley.Service) tea.Cmd {
	return func() tea.Msg {
		health, err := service.Health(context.Background())
		return HealthMsg{Health: health, Err: err}
	}
}
