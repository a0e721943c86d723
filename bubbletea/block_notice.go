package bubbletea

import "github.com/charmbracelet/lipgloss"

var _ MessageBlock = (*NoticeBlock)(nil)

// NoticeBlock renders ephemeral command output (/tools, /health) in muted
// styling. Notices are not part of the conversation thread and are
// replaced by the next command or send.
type NoticeBlock struct {
	lines  []string
	styles Styles
}

// NewNoticeBlock creates a NoticeBlock from pre-formatted lines.
func NewNoticeBlock(lines []string, styles Styles) *NoticeBlock {
	return &NoticeBlock{lines: lines, styles: styles}
}

func (b *NoticeBlock) View(width int) string {
	var out []string
	for _, line := range b.lines {
		out = append(out, b.styles.Muted.Render(line))
	}
	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, out...))
}
