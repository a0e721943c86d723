package bubbletea

import "github.com/charmbracelet/lipgloss"

var _ MessageBlock = (*ErrorBlock)(nil)

// ErrorBlock renders the inline entry for a failed exchange.
type ErrorBlock struct {
	text   string
	styles Styles
}

// NewErrorBlock creates an ErrorBlock.
func NewErrorBlock(text string, styles Styles) *ErrorBlock {
	return &ErrorBlock{text: text, styles: styles}
}

func (b *ErrorBlock) View(width int) string {
	content := b.styles.Error.Render("✗ " + b.text)
	return lipgloss.NewStyle().Width(width).Render(content)
}
