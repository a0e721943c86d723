package markdown

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/mpasternak/parley"
)

type renderer struct {
	bold      lipgloss.Style
	italic    lipgloss.Style
	heading   lipgloss.Style
	muted     lipgloss.Style
	underline lipgloss.Style
}

func newRenderer(theme parley.Theme) *renderer {
	return &renderer{
		bold:      lipgloss.NewStyle().Bold(true),
		italic:    lipgloss.NewStyle().Italic(true),
		heading:   lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		underline: lipgloss.NewStyle().Underline(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func (r *renderer) render(source []byte, width int) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))
	var buf bytes.Buffer
	r.blocks(doc, source, width, &buf)
	return strings.TrimRight(buf.String(), "\n")
}

func (r *renderer) blocks(parent ast.Node, source []byte, width int, buf *bytes.Buffer) {
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		r.block(c, source, width, buf)
	}
}

func (r *renderer) block(node ast.Node, source []byte, width int, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Paragraph:
		r.writeWrapped(buf, r.inline(n, source), width)
		r.blockGap(n, buf)

	case *ast.Heading:
		r.writeWrapped(buf, r.heading.Render(r.inline(n, source)), width)
		r.blockGap(n, buf)

	case *ast.FencedCodeBlock:
		if lang := string(n.Language(source)); lang != "" {
			buf.WriteString(r.muted.Render(lang))
			buf.WriteByte('\n')
		}
		r.writeCodeLines(buf, n.Lines(), source)
		r.blockGap(n, buf)

	case *ast.CodeBlock:
		r.writeCodeLines(buf, n.Lines(), source)
		r.blockGap(n, buf)

	case *ast.List:
		r.list(n, source, width, buf, 0)
		r.blockGap(n, buf)

	case *ast.Blockquote:
		var inner bytes.Buffer
		r.blocks(n, source, width-2, &inner)
		gutter := r.muted.Render("┃") + " "
		for _, line := range strings.Split(strings.TrimRight(inner.String(), "\n"), "\n") {
			buf.WriteString(gutter + line + "\n")
		}
		r.blockGap(n, buf)

	case *ast.ThematicBreak:
		buf.WriteString(r.muted.Render(strings.Repeat("─", min(width, 24))))
		buf.WriteByte('\n')
		r.blockGap(n, buf)

	default:
		// Unrecognized blocks: recurse into children. Raw HTML is
		// dropped since it is unsafe to echo into a terminal verbatim.
		r.blocks(node, source, width, buf)
	}
}

// blockGap writes the blank line separating sibling blocks.
func (r *renderer) blockGap(n ast.Node, buf *bytes.Buffer) {
	if n.NextSibling() != nil {
		buf.WriteByte('\n')
	}
}

func (r *renderer) writeWrapped(buf *bytes.Buffer, content string, width int) {
	buf.WriteString(lipgloss.NewStyle().Width(width).Render(content))
	buf.WriteByte('\n')
}

func (r *renderer) writeCodeLines(buf *bytes.Buffer, lines *text.Segments, source []byte) {
	gutter := r.muted.Render("│") + " "
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.WriteString(gutter + strings.TrimRight(string(seg.Value(source)), "\n"))
		buf.WriteByte('\n')
	}
}

func (r *renderer) list(node *ast.List, source []byte, width int, buf *bytes.Buffer, depth int) {
	num := node.Start
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		marker := "- "
		if node.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}
		indent := strings.Repeat("  ", depth)

		var itemBuf bytes.Buffer
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch in := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				itemBuf.WriteString(r.inline(in, source))
			case *ast.List:
				if itemBuf.Len() > 0 {
					r.listItem(buf, indent, marker, itemBuf.String(), width)
					itemBuf.Reset()
				}
				r.list(in, source, width, buf, depth+1)
				marker = strings.Repeat(" ", len(marker))
			default:
				r.block(ic, source, width, &itemBuf)
			}
		}
		if itemBuf.Len() > 0 {
			r.listItem(buf, indent, marker, itemBuf.String(), width)
		}
	}
}

// listItem writes one item with continuation-line indentation under the marker.
func (r *renderer) listItem(buf *bytes.Buffer, indent, marker, content string, width int) {
	prefix := indent + marker
	itemWidth := width - len(prefix)
	if itemWidth < 10 {
		itemWidth = 10
	}
	wrapped := lipgloss.NewStyle().Width(itemWidth).Render(content)
	continuation := strings.Repeat(" ", len(prefix))
	for i, line := range strings.Split(wrapped, "\n") {
		if i == 0 {
			buf.WriteString(prefix + line + "\n")
			continue
		}
		buf.WriteString(continuation + line + "\n")
	}
}

// inline recursively collects styled inline text from a node's children.
func (r *renderer) inline(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.inlineNode(c, source, &buf)
	}
	return buf.String()
}

func (r *renderer) inlineNode(node ast.Node, source []byte, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Segment.Value(source))
		if n.SoftLineBreak() {
			buf.WriteByte(' ')
		}
		if n.HardLineBreak() {
			buf.WriteByte('\n')
		}

	case *ast.String:
		buf.Write(n.Value)

	case *ast.Emphasis:
		inner := r.inline(n, source)
		if n.Level == 1 {
			buf.WriteString(r.italic.Render(inner))
			return
		}
		buf.WriteString(r.bold.Render(inner))

	case *ast.CodeSpan:
		buf.WriteString(r.bold.Render(r.inline(n, source)))

	case *ast.Link:
		buf.WriteString(r.underline.Render(r.inline(n, source)))
		buf.WriteString(" " + r.muted.Render("("+string(n.Destination)+")"))

	case *ast.AutoLink:
		buf.WriteString(r.underline.Render(string(n.URL(source))))

	case *ast.Image:
		buf.WriteString(r.underline.Render(r.inline(n, source)))
		buf.WriteString(" " + r.muted.Render("("+string(n.Destination)+")"))

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.inlineNode(c, source, buf)
		}
	}
}
