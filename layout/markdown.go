package layout

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// RenderMarkdown parses a Markdown string with goldmark and lays the blocks
// out onto the document: headings, paragraphs and bullet lists.
func (e *Engine) RenderMarkdown(source string) error {
	md := goldmark.New()
	src := []byte(source)
	doc := md.Parser().Parse(text.NewReader(src))

	if err := e.doc.SetFont(e.DefaultFont); err != nil {
		return err
	}
	return e.walkMarkdown(doc, src)
}

func (e *Engine) walkMarkdown(node ast.Node, source []byte) error {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Heading:
			if err := e.writeHeading(string(n.Text(source)), n.Level); err != nil {
				return err
			}
		case *ast.Paragraph:
			if err := e.writeBlock(markdownParagraphText(n, source), e.DefaultFontSize, 0); err != nil {
				return err
			}
			e.paragraphSpacing()
		case *ast.List:
			if err := e.walkMarkdown(n, source); err != nil {
				return err
			}
		case *ast.ListItem:
			if err := e.writeListItem(markdownItemText(n, source)); err != nil {
				return err
			}
		}
	}
	return nil
}

// markdownParagraphText flattens a paragraph's inline children to plain
// text. Soft and hard line breaks become single spaces.
func markdownParagraphText(n *ast.Paragraph, source []byte) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
			continue
		}
		sb.Write(child.Text(source))
	}
	return sb.String()
}

func markdownItemText(n *ast.ListItem, source []byte) string {
	child := n.FirstChild()
	if child == nil {
		return ""
	}
	if p, ok := child.(*ast.Paragraph); ok {
		return markdownParagraphText(p, source)
	}
	return string(child.Text(source))
}
