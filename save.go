package pdfgen

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/docstream/pdfgen/object"
	"github.com/docstream/pdfgen/observability"
)

// pdfWriter tracks the output byte offset and latches the first write
// error, so the serializer body stays free of error plumbing.
type pdfWriter struct {
	w   io.Writer
	off int64
	err error
}

func (pw *pdfWriter) write(p []byte) {
	if pw.err != nil {
		return
	}
	n, err := pw.w.Write(p)
	pw.off += int64(n)
	pw.err = err
}

func (pw *pdfWriter) printf(format string, args ...interface{}) {
	if pw.err != nil {
		return
	}
	n, err := fmt.Fprintf(pw.w, format, args...)
	pw.off += int64(n)
	pw.err = err
}

// Save serializes the document to the named file. An empty path routes the
// output to standard output. On write failure a partial file may remain.
func (d *Document) Save(path string) error {
	if path == "" {
		return d.SaveFile(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return d.errorf(ErrIO, "Unable to open '%s': %v", path, err)
	}
	if err := d.SaveFile(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return d.errorf(ErrIO, "Unable to close '%s': %v", path, err)
	}
	return nil
}

// SaveFile serializes the document to a writer: header, every live object
// in index order, the xref table, and the trailer.
func (d *Document) SaveFile(w io.Writer) error {
	pw := &pdfWriter{w: w}

	pw.printf("%%PDF-1.2\r\n")
	// Binary marker bytes per PDF convention.
	pw.write([]byte{0x25, 0xC7, 0xEC, 0x8F, 0xA2, '\r', '\n'})

	count := 0
	for i := 0; i < d.registry.Size(); i++ {
		obj := d.registry.Get(i)
		if obj == nil || obj.Kind == object.KindNone {
			continue
		}
		obj.Offset = pw.off
		pw.printf("%d 0 obj\r\n", obj.Index)
		if err := d.writeObjectBody(pw, obj); err != nil {
			return err
		}
		pw.printf("endobj\r\n")
		count++
	}

	xrefOffset := pw.off
	pw.printf("xref\r\n")
	pw.printf("0 %d\r\n", count+1)
	pw.printf("0000000000 65535 f\r\n")
	for i := 0; i < d.registry.Size(); i++ {
		obj := d.registry.Get(i)
		if obj == nil || obj.Kind == object.KindNone {
			continue
		}
		pw.printf("%10.10d 00000 n\r\n", obj.Offset)
	}

	pw.printf("trailer\r\n<<\r\n/Size %d\r\n", count+1)
	catalog := d.registry.First(object.KindCatalog)
	info := d.registry.First(object.KindInfo)
	if catalog == nil || info == nil {
		return d.errorf(ErrInternal, "Document missing catalog or info")
	}
	pw.printf("/Root %d 0 R\r\n", catalog.Index)
	pw.printf("/Info %d 0 R\r\n", info.Index)
	id1, id2 := d.fileID(info.Payload.(*object.Info))
	pw.printf("/ID [<%16.16x> <%16.16x>]\r\n", id1, id2)
	pw.printf(">>\r\nstartxref\r\n%d\r\n%%%%EOF\r\n", xrefOffset)

	if pw.err != nil {
		return d.errorf(ErrIO, "Unable to write output: %v", pw.err)
	}
	d.logger.Info("document saved",
		observability.Int("objects", count),
		observability.Int64("bytes", pw.off))
	return nil
}

func (d *Document) writeObjectBody(pw *pdfWriter, obj *object.Object) error {
	switch obj.Kind {
	case object.KindStream, object.KindImage:
		pw.write(obj.Payload.(*object.Stream).Body.Data())

	case object.KindInfo:
		info := obj.Payload.(*object.Info)
		pw.printf("<<\r\n"+
			"  /Creator (%s)\r\n"+
			"  /Producer (%s)\r\n"+
			"  /Title (%s)\r\n"+
			"  /Author (%s)\r\n"+
			"  /Subject (%s)\r\n"+
			"  /CreationDate (D:%s)\r\n"+
			">>\r\n",
			info.Creator, info.Producer, info.Title,
			info.Author, info.Subject, info.Date)

	case object.KindPage:
		d.writePageBody(pw, obj)

	case object.KindBookmark:
		d.writeBookmarkBody(pw, obj)

	case object.KindOutline:
		d.writeOutlineBody(pw)

	case object.KindFont:
		font := obj.Payload.(*object.Font)
		pw.printf("<<\r\n"+
			"  /Type /Font\r\n"+
			"  /Subtype /Type1\r\n"+
			"  /BaseFont /%s\r\n"+
			"  /Encoding /WinAnsiEncoding\r\n"+
			">>\r\n", font.Name)

	case object.KindPages:
		pw.printf("<<\r\n/Type /Pages\r\n/Kids [ ")
		n := 0
		for page := d.registry.First(object.KindPage); page != nil; page = page.Next {
			pw.printf("%d 0 R ", page.Index)
			n++
		}
		pw.printf("]\r\n")
		pw.printf("/Count %d\r\n", n)
		pw.printf("/MediaBox [0 0 %s %s]\r\n>>\r\n", fnum(d.width), fnum(d.height))

	case object.KindCatalog:
		pages := d.registry.First(object.KindPages)
		pw.printf("<<\r\n/Type /Catalog\r\n")
		if outline := d.registry.First(object.KindOutline); outline != nil {
			pw.printf("/Outlines %d 0 R\r\n/PageMode /UseOutlines\r\n", outline.Index)
		}
		pw.printf("/Pages %d 0 R\r\n>>\r\n", pages.Index)

	default:
		return d.errorf(ErrInternal, "Invalid PDF object type %d", obj.Kind)
	}
	return nil
}

func (d *Document) writePageBody(pw *pdfWriter, obj *object.Object) {
	page := obj.Payload.(*object.Page)
	pages := d.registry.First(object.KindPages)

	pw.printf("<<\r\n/Type /Page\r\n/Parent %d 0 R\r\n", pages.Index)
	pw.printf("/MediaBox [0 0 %s %s]\r\n", fnum(page.Width), fnum(page.Height))
	pw.printf("/Resources <<\r\n")
	pw.printf("  /Font <<\r\n")
	for font := d.registry.First(object.KindFont); font != nil; font = font.Next {
		pw.printf("    /F%d %d 0 R\r\n", font.Payload.(*object.Font).Local, font.Index)
	}
	pw.printf("  >>\r\n")

	// Every image XObject in the document is listed, not only the ones this
	// page uses. Unused names are inert.
	if image := d.registry.First(object.KindImage); image != nil {
		pw.printf("  /XObject <<")
		for ; image != nil; image = image.Next {
			pw.printf("/Image%d %d 0 R ", image.Index, image.Index)
		}
		pw.printf(">>\r\n")
	}

	// Sixteen alpha states; text selects one from the top nibble of the
	// color's alpha byte.
	pw.printf("  /ExtGState <<\r\n")
	for k := 0; k < 16; k++ {
		pw.printf("    /GS%d << /ca %f >>\r\n", k, float64(15-k)/15.0)
	}
	pw.printf("  >>\r\n")

	pw.printf(">>\r\n")
	pw.printf("/Contents [\r\n")
	for _, child := range page.Children {
		pw.printf("%d 0 R\r\n", child.Index)
	}
	pw.printf("]\r\n>>\r\n")
}

func (d *Document) writeBookmarkBody(pw *pdfWriter, obj *object.Object) {
	bm := obj.Payload.(*object.Bookmark)

	parent := bm.Parent
	if parent == nil {
		parent = d.registry.First(object.KindOutline)
	}
	destHeight := bm.Page.Payload.(*object.Page).Height
	pw.printf("<<\r\n"+
		"/A << /Type /Action\r\n"+
		"      /S /GoTo\r\n"+
		"      /D [%d 0 R /XYZ 0 %s null]\r\n"+
		"   >>\r\n"+
		"/Parent %d 0 R\r\n"+
		"/Title (%s)\r\n",
		bm.Page.Index, fnum(destHeight), parent.Index, bm.Title)
	if n := len(bm.Children); n > 0 {
		pw.printf("/First %d 0 R\r\n", bm.Children[0].Index)
		pw.printf("/Last %d 0 R\r\n", bm.Children[n-1].Index)
	}

	// Siblings are bookmarks sharing this one's parent; the kind list is
	// walked past entries belonging to other parents.
	for other := obj.Prev; other != nil; other = other.Prev {
		if other.Payload.(*object.Bookmark).Parent == bm.Parent {
			pw.printf("/Prev %d 0 R\r\n", other.Index)
			break
		}
	}
	for other := obj.Next; other != nil; other = other.Next {
		if other.Payload.(*object.Bookmark).Parent == bm.Parent {
			pw.printf("/Next %d 0 R\r\n", other.Index)
			break
		}
	}
	pw.printf(">>\r\n")
}

func (d *Document) writeOutlineBody(pw *pdfWriter) {
	var first, last *object.Object
	count := 0
	for bm := d.registry.First(object.KindBookmark); bm != nil; bm = bm.Next {
		if bm.Payload.(*object.Bookmark).Parent != nil {
			continue
		}
		if first == nil {
			first = bm
		}
		last = bm
		count++
	}
	if count == 0 {
		return
	}
	pw.printf("<<\r\n"+
		"/Count %d\r\n"+
		"/Type /Outlines\r\n"+
		"/First %d 0 R\r\n"+
		"/Last %d 0 R\r\n"+
		">>\r\n",
		count, first.Index, last.Index)
}

// fileID derives the trailer /ID pair: a djb2 hash over the information
// dictionary mixed with the object count. The first hash uses the standard
// seed; the second mixes in wall-clock time, or a caller-supplied nonce for
// reproducible output.
func (d *Document) fileID(info *object.Info) (uint64, uint64) {
	hash := func(seed uint64) uint64 {
		h := seed
		for _, s := range []string{
			info.Creator, info.Producer, info.Title,
			info.Author, info.Subject, info.Date,
		} {
			for i := 0; i < len(s); i++ {
				h = h*33 + uint64(s[i])
			}
		}
		return h*33 + uint64(d.registry.Size())
	}

	seed := d.idNonce
	if !d.nonceSet {
		seed = uint64(time.Now().Unix())
	}
	return hash(5381), hash(5381 ^ seed)
}
