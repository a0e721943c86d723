package markdown_test

import (
	"strings"
	"testing"

	"github.com/mpasternak/parley"
	"github.com/mpasternak/parley/markdown"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Parallel()

	theme := parley.DefaultTheme()

	t.Run("empty input returns empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", markdown.Render("", 80, theme))
	})

	t.Run("plain paragraph", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, markdown.Render("hello world", 80, theme), "hello world")
	})

	t.Run("heading renders with styling", func(t *testing.T) {
		t.Parallel()
		heading := markdown.Render("# Title", 80, theme)
		paragraph := markdown.Render("Title", 80, theme)
		assert.Contains(t, heading, "Title")
		assert.NotEqual(t, heading, paragraph)
	})

	t.Run("emphasis and code spans keep their text", func(t *testing.T) {
		t.Parallel()
		result := markdown.Render("**bold** and *italic* and `code`", 80, theme)
		assert.Contains(t, result, "bold")
		assert.Contains(t, result, "italic")
		assert.Contains(t, result, "code")
	})

	t.Run("fenced code block preserves content without reflow", func(t *testing.T) {
		t.Parallel()
		src := "```go\nfmt.Println(\"hello world\")\n```"
		result := markdown.Render(src, 20, theme)
		assert.Contains(t, result, `fmt.Println("hello world")`)
	})

	t.Run("fenced code block shows language label", func(t *testing.T) {
		t.Parallel()
		src := "```python\nprint('hi')\n```"
		result := markdown.Render(src, 80, theme)
		assert.Contains(t, result, "python")
		assert.Contains(t, result, "print('hi')")
	})

	t.Run("bullet and ordered lists", func(t *testing.T) {
		t.Parallel()
		result := markdown.Render("- one\n- two", 80, theme)
		assert.Contains(t, result, "- one")
		assert.Contains(t, result, "- two")

		ordered := markdown.Render("1. first\n2. second", 80, theme)
		assert.Contains(t, ordered, "1. first")
		assert.Contains(t, ordered, "2. second")
	})

	t.Run("blockquote is prefixed with a gutter", func(t *testing.T) {
		t.Parallel()
		result := markdown.Render("> quoted text", 80, theme)
		assert.Contains(t, result, "quoted text")
		assert.Contains(t, result, "┃")
	})

	t.Run("link shows text and URL", func(t *testing.T) {
		t.Parallel()
		result := markdown.Render("[click](https://example.com)", 80, theme)
		assert.Contains(t, result, "click")
		assert.Contains(t, result, "example.com")
	})

	t.Run("paragraph wraps to width", func(t *testing.T) {
		t.Parallel()
		long := "word1 word2 word3 word4 word5 word6 word7 word8 word9 word10 word11 word12"
		result := markdown.Render(long, 30, theme)
		assert.Contains(t, result, "word1")
		assert.Contains(t, result, "word12")
		for _, line := range strings.Split(result, "\n") {
			assert.LessOrEqual(t, len(line), 30)
		}
	})

	t.Run("zero width defaults to 80", func(t *testing.T) {
		t.Parallel()
		assert.NotEmpty(t, markdown.Render("hello", 0, theme))
	})
}
