// Package pdfgen builds PDF 1.2 documents in memory and serializes them to a
// byte stream. Callers create a Document with a default page size, append
// pages, draw text, shapes, images, barcodes and bookmarks on them, and
// finally save the result as a fully cross-referenced PDF file.
package pdfgen

import (
	"fmt"
	"time"

	"github.com/docstream/pdfgen/fonts"
	"github.com/docstream/pdfgen/object"
	"github.com/docstream/pdfgen/observability"
)

// Standard page sizes in PDF points (1/72 inch).
const (
	A4Width      = 210.0 * 72.0 / 25.4
	A4Height     = 297.0 * 72.0 / 25.4
	A3Width      = 297.0 * 72.0 / 25.4
	A3Height     = 420.0 * 72.0 / 25.4
	LetterWidth  = 8.5 * 72.0
	LetterHeight = 11.0 * 72.0
)

// InchToPoint converts inches to PDF points.
func InchToPoint(inch float64) float64 { return inch * 72.0 }

// MMToPoint converts millimetres to PDF points.
func MMToPoint(mm float64) float64 { return mm * 72.0 / 25.4 }

// Info holds the document information dictionary strings. Missing fields are
// defaulted at creation; each field is truncated to 63 bytes.
type Info struct {
	Creator  string
	Producer string
	Title    string
	Author   string
	Subject  string
	Date     string
}

// Document is a single-threaded, in-memory PDF under construction. It owns
// every object it creates; all inter-object references are weak pointers
// into the owning registry.
type Document struct {
	width  float64
	height float64

	registry    object.Registry
	currentFont *object.Object

	lastErr error
	logger  observability.Logger

	pendingInfo Info
	idNonce     uint64
	nonceSet    bool
}

// Option configures a Document at creation time.
type Option func(*Document)

// WithInfo supplies the information dictionary fields.
func WithInfo(info Info) Option {
	return func(d *Document) { d.pendingInfo = info }
}

// WithLogger routes library diagnostics to the given logger.
func WithLogger(l observability.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithIDNonce seeds the second trailer /ID hash instead of wall-clock time,
// making the output byte-for-byte reproducible.
func WithIDNonce(nonce uint64) Option {
	return func(d *Document) {
		d.idNonce = nonce
		d.nonceSet = true
	}
}

// New creates a document with the given default page size in points. The
// registry is seeded with the reserved zeroth object, the information
// dictionary, the pages container, the catalog, and the Times-Roman font.
func New(width, height float64, opts ...Option) (*Document, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid page size %gx%g: %w", width, height, ErrInvalidArgument)
	}
	d := &Document{
		width:  width,
		height: height,
		logger: observability.NopLogger{},
	}
	for _, opt := range opts {
		opt(d)
	}

	// Object number 0 is reserved as the xref free list head.
	d.registry.Add(object.KindNone, nil)

	info := d.pendingInfo
	if info.Creator == "" {
		info.Creator = "pdfgen"
	}
	if info.Producer == "" {
		info.Producer = "pdfgen"
	}
	if info.Title == "" {
		info.Title = "pdfgen"
	}
	if info.Author == "" {
		info.Author = "pdfgen"
	}
	if info.Subject == "" {
		info.Subject = "pdfgen"
	}
	if info.Date == "" {
		info.Date = time.Now().UTC().Format("20060102150405Z")
	}
	d.registry.Add(object.KindInfo, &object.Info{
		Creator:  truncate(info.Creator, 63),
		Producer: truncate(info.Producer, 63),
		Title:    truncate(info.Title, 63),
		Author:   truncate(info.Author, 63),
		Subject:  truncate(info.Subject, 63),
		Date:     truncate(info.Date, 63),
	})
	d.registry.Add(object.KindPages, nil)
	d.registry.Add(object.KindCatalog, nil)

	if err := d.SetFont("Times-Roman"); err != nil {
		return nil, err
	}

	d.logger.Debug("document created",
		observability.Float64("width", width),
		observability.Float64("height", height))
	return d, nil
}

// Close releases every object the document owns. The document is unusable
// afterwards.
func (d *Document) Close() {
	d.registry.Clear()
	d.currentFont = nil
}

// Width returns the document's default page width in points.
func (d *Document) Width() float64 { return d.width }

// Height returns the document's default page height in points.
func (d *Document) Height() float64 { return d.height }

// Page is a handle to one page of a document.
type Page struct {
	obj *object.Object
}

func (p *Page) data() *object.Page { return p.obj.Payload.(*object.Page) }

// Width returns the page's own media box width.
func (p *Page) Width() float64 { return p.data().Width }

// Height returns the page's own media box height.
func (p *Page) Height() float64 { return p.data().Height }

// AppendPage adds a new page with the document's default size and an empty
// content list.
func (d *Document) AppendPage() (*Page, error) {
	obj := d.registry.Add(object.KindPage, &object.Page{
		Width:  d.width,
		Height: d.height,
	})
	if obj == nil {
		return nil, d.errorf(ErrInternal, "Object table full")
	}
	d.logger.Debug("page appended", observability.Int("object", obj.Index))
	return &Page{obj: obj}, nil
}

// PageSetSize overrides one page's media box. A nil page means the most
// recently added page.
func (d *Document) PageSetSize(page *Page, width, height float64) error {
	obj, err := d.resolvePage(page)
	if err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return d.errorf(ErrInvalidArgument, "Invalid page size %gx%g", width, height)
	}
	data := obj.Payload.(*object.Page)
	data.Width = width
	data.Height = height
	return nil
}

// resolvePage maps a possibly-nil page handle to its object, defaulting to
// the last page added.
func (d *Document) resolvePage(page *Page) (*object.Object, error) {
	if page != nil {
		return page.obj, nil
	}
	obj := d.registry.Last(object.KindPage)
	if obj == nil {
		return nil, d.errorf(ErrInvalidArgument, "Invalid pdf page")
	}
	return obj, nil
}

// SetFont selects the current font, creating its font object on first use.
// Identical names dedupe: a repeat call reuses the existing object. Names
// are matched case-insensitively against the 14 standard Type1 base fonts.
func (d *Document) SetFont(name string) error {
	canonical, ok := fonts.Canonical(name)
	if !ok {
		return d.errorf(ErrInvalidArgument, "Unknown font name %q", name)
	}
	local := 0
	for obj := d.registry.First(object.KindFont); obj != nil; obj = obj.Next {
		font := obj.Payload.(*object.Font)
		if font.Name == canonical {
			d.currentFont = obj
			return nil
		}
		local = font.Local
	}
	obj := d.registry.Add(object.KindFont, &object.Font{
		Name:  canonical,
		Local: local + 1,
	})
	if obj == nil {
		return d.errorf(ErrInternal, "Object table full")
	}
	d.currentFont = obj
	return nil
}

// GetFontTextWidth measures a string in points at the given size, using the
// named font's built-in width table, without touching the document.
func (d *Document) GetFontTextWidth(fontName, text string, size float64) (float64, error) {
	canonical, ok := fonts.Canonical(fontName)
	if !ok {
		return 0, d.errorf(ErrInvalidArgument, "Unknown font name %q", fontName)
	}
	width, err := fonts.TextWidth(canonical, text, size)
	if err != nil {
		return 0, d.errorf(ErrEncoding, "Unable to measure text: %v", err)
	}
	return width, nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
