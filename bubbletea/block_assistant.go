package bubbletea

import (
	"strings"

	"github.com/mpasternak/parley"
	"github.com/mpasternak/parley/markdown"
)

var _ MessageBlock = (*AssistantBlock)(nil)

// AssistantBlock renders a confirmed assistant reply: markdown-formatted
// text with a tool badge line when the backend invoked tools. Rendered
// output is cached per width since the underlying message never changes.
type AssistantBlock struct {
	text      string
	toolsUsed []string
	theme     parley.Theme
	styles    Styles

	byWidth map[int]string
}

// NewAssistantBlock creates an AssistantBlock.
func NewAssistantBlock(text string, toolsUsed []string, theme parley.Theme, styles Styles) *AssistantBlock {
	return &AssistantBlock{
		text:      text,
		toolsUsed: toolsUsed,
		theme:     theme,
		styles:    styles,
		byWidth:   make(map[int]string),
	}
}

func (b *AssistantBlock) View(width int) string {
	if cached, ok := b.byWidth[width]; ok {
		return cached
	}
	rendered := markdown.Render(b.text, width, b.theme)
	if len(b.toolsUsed) > 0 {
		badge := b.styles.ToolUsed.Render("⚙ " + strings.Join(b.toolsUsed, ", "))
		rendered += "\n" + badge
	}
	b.byWidth[width] = rendered
	return rendered
}
