// Package markdown renders assistant replies to ANSI-styled terminal
// output using goldmark for parsing and lipgloss for styling.
package markdown

import "github.com/mpasternak/parley"

// Render parses markdown source and returns ANSI-styled terminal output.
// Paragraphs and list items are word-wrapped to width; code blocks keep
// their lines intact behind a gutter.
func Render(source string, width int, theme parley.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	return newRenderer(theme).render([]byte(source), width)
}
