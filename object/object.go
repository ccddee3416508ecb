// Package object holds the in-memory PDF object graph: a tagged object
// record per indirect PDF object, a segmented append-only table indexed by
// object number, and per-kind insertion-ordered lists used during
// serialization.
package object

import "github.com/docstream/pdfgen/dstr"

// Kind identifies the variant of an object record.
type Kind int

const (
	// KindNone reserves object number 0, which the xref emits as the free
	// list head.
	KindNone Kind = iota
	KindInfo
	KindStream
	KindFont
	KindPage
	KindBookmark
	KindOutline
	KindCatalog
	KindPages
	KindImage

	kindCount
)

var kindNames = [...]string{
	"none", "info", "stream", "font", "page",
	"bookmark", "outline", "catalog", "pages", "image",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Object is one indirect PDF object. Index is the 1-based object number,
// assigned on append and stable for the object's lifetime. Offset is the
// byte position in the serialized file, valid only after a save. Prev and
// Next link objects of the same kind in insertion order.
type Object struct {
	Kind   Kind
	Index  int
	Offset int64
	Prev   *Object
	Next   *Object

	Payload Payload
}

// Payload is the variant-specific part of an object record. Kinds without
// extra state (outline, catalog, pages, none) carry a nil payload.
type Payload interface{ payload() }

// Info carries the document information dictionary strings. All fields are
// truncated to 63 bytes by the document layer before they land here.
type Info struct {
	Creator  string
	Producer string
	Title    string
	Author   string
	Subject  string
	Date     string
}

// Stream holds a fully formatted dictionary+stream body. It is shared by
// KindStream (page content) and KindImage (XObjects); the body is emitted
// verbatim with no further rewriting.
type Stream struct {
	Body dstr.Buffer
}

// Font names a Type1 base font. Local is the font-local index k used to
// reference the font as /Fk from page resources.
type Font struct {
	Name  string
	Local int
}

// Page carries an optional media-box override and the ordered content
// stream references drawn on the page.
type Page struct {
	Width    float64
	Height   float64
	Children []*Object
}

// Bookmark is one outline entry. Page is the destination and is never nil
// once the bookmark is fully constructed; Parent is nil for top-level
// entries. All references are weak: the table owns every object.
type Bookmark struct {
	Title    string
	Page     *Object
	Parent   *Object
	Children []*Object
}

func (*Info) payload()     {}
func (*Stream) payload()   {}
func (*Font) payload()     {}
func (*Page) payload()     {}
func (*Bookmark) payload() {}
