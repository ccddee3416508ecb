package layout

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML renders a small HTML subset: h1-h6 headings, paragraphs and
// list items. Everything else contributes only its text content.
func (e *Engine) RenderHTML(source string) error {
	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return err
	}
	if err := e.doc.SetFont(e.DefaultFont); err != nil {
		return err
	}
	return e.walkHTML(doc)
}

func (e *Engine) walkHTML(n *html.Node) error {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			return e.writeHeading(extractText(n), headingLevel(n.DataAtom))
		case atom.P:
			if err := e.writeBlock(extractText(n), e.DefaultFontSize, 0); err != nil {
				return err
			}
			e.paragraphSpacing()
			return nil
		case atom.Li:
			return e.writeListItem(extractText(n))
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := e.walkHTML(c); err != nil {
			return err
		}
	}
	return nil
}

func headingLevel(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	default:
		return 4
	}
}

// extractText concatenates all text nodes beneath n, collapsing runs of
// whitespace to single spaces.
func extractText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
