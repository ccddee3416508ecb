// Package layout renders structured content (Markdown, a small HTML subset)
// onto document pages, handling margins, word wrap and page breaks.
package layout

import (
	"github.com/docstream/pdfgen"
)

// Margins defines page margins in points.
type Margins struct {
	Top, Bottom, Left, Right float64
}

// Engine lays structured content out onto the pages of a document.
type Engine struct {
	doc *pdfgen.Document

	DefaultFont     string
	DefaultFontSize float64
	LineHeight      float64 // multiplier, e.g. 1.2
	Margins         Margins
	TextColor       pdfgen.Color

	page    *pdfgen.Page
	cursorY float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithDefaultFont sets the body font.
func WithDefaultFont(font string) Option {
	return func(e *Engine) { e.DefaultFont = font }
}

// WithDefaultFontSize sets the body font size in points.
func WithDefaultFontSize(size float64) Option {
	return func(e *Engine) { e.DefaultFontSize = size }
}

// WithLineHeight sets the line height multiplier.
func WithLineHeight(height float64) Option {
	return func(e *Engine) { e.LineHeight = height }
}

// WithMargins sets the page margins.
func WithMargins(margins Margins) Option {
	return func(e *Engine) { e.Margins = margins }
}

// WithTextColor sets the body text color.
func WithTextColor(c pdfgen.Color) Option {
	return func(e *Engine) { e.TextColor = c }
}

// NewEngine creates a layout engine writing into doc.
func NewEngine(doc *pdfgen.Document, opts ...Option) *Engine {
	e := &Engine{
		doc:             doc,
		DefaultFont:     "Helvetica",
		DefaultFontSize: 12,
		LineHeight:      1.2,
		Margins:         Margins{Top: 50, Bottom: 50, Left: 50, Right: 50},
		TextColor:       pdfgen.Black,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) wrapWidth() float64 {
	return e.doc.Width() - e.Margins.Left - e.Margins.Right
}

func (e *Engine) ensurePage() error {
	if e.page != nil {
		return nil
	}
	return e.newPage()
}

func (e *Engine) newPage() error {
	page, err := e.doc.AppendPage()
	if err != nil {
		return err
	}
	e.page = page
	e.cursorY = e.doc.Height() - e.Margins.Top
	return nil
}

// checkPageBreak opens a fresh page when the next block of the given height
// would cross the bottom margin.
func (e *Engine) checkPageBreak(height float64) error {
	if e.page == nil {
		return e.newPage()
	}
	if e.cursorY-height < e.Margins.Bottom {
		return e.newPage()
	}
	return nil
}

// writeBlock wraps text into the content column at the given indent and
// advances the cursor, breaking the page first when the whole block fits on
// a fresh page but not on the current one.
func (e *Engine) writeBlock(text string, size, indent float64) error {
	if text == "" {
		return nil
	}
	if err := e.ensurePage(); err != nil {
		return err
	}
	width := e.wrapWidth() - indent
	height, err := e.doc.AddTextWrap(e.page, text, size, 0, 0, e.TextColor, width, pdfgen.AlignNoWrite)
	if err != nil {
		return err
	}
	if err := e.checkPageBreak(height); err != nil {
		return err
	}
	if _, err := e.doc.AddTextWrap(e.page, text, size,
		e.Margins.Left+indent, e.cursorY-size, e.TextColor, width, pdfgen.AlignLeft); err != nil {
		return err
	}
	e.cursorY -= height * e.LineHeight
	return nil
}

func (e *Engine) paragraphSpacing() {
	if e.page != nil {
		e.cursorY -= e.DefaultFontSize * e.LineHeight
	}
}

// headingSize maps a heading level to a font size.
func (e *Engine) headingSize(level int) float64 {
	switch {
	case level <= 1:
		return e.DefaultFontSize * 2.0
	case level == 2:
		return e.DefaultFontSize * 1.5
	default:
		return e.DefaultFontSize * 1.25
	}
}

func (e *Engine) writeHeading(text string, level int) error {
	if err := e.doc.SetFont(e.DefaultFont); err != nil {
		return err
	}
	return e.writeBlock(text, e.headingSize(level), 0)
}

const listIndent = 15.0

func (e *Engine) writeListItem(text string) error {
	if err := e.ensurePage(); err != nil {
		return err
	}
	if err := e.checkPageBreak(e.DefaultFontSize * e.LineHeight); err != nil {
		return err
	}
	if err := e.doc.AddText(e.page, "-", e.DefaultFontSize,
		e.Margins.Left, e.cursorY-e.DefaultFontSize, e.TextColor); err != nil {
		return err
	}
	return e.writeBlock(text, e.DefaultFontSize, listIndent)
}
