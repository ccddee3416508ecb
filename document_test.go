package pdfgen

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"
)

// render saves a document into memory with a fixed ID nonce applied at
// creation, so tests can assert on exact bytes.
func render(t *testing.T, d *Document) string {
	t.Helper()
	var buf bytes.Buffer
	if err := d.SaveFile(&buf); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	return buf.String()
}

// objBody extracts the body of one indirect object from serialized output.
func objBody(t *testing.T, out string, index int) string {
	t.Helper()
	marker := "\r\n" + strconv.Itoa(index) + " 0 obj\r\n"
	start := strings.Index(out, marker)
	if start < 0 {
		t.Fatalf("object %d not found in output", index)
	}
	rest := out[start+len(marker):]
	end := strings.Index(rest, "endobj")
	if end < 0 {
		t.Fatalf("object %d has no endobj", index)
	}
	return rest[:end]
}

func TestEmptyDocument(t *testing.T) {
	d, err := New(A4Width, A4Height, WithIDNonce(7))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out := render(t, d)

	if !strings.HasPrefix(out, "%PDF-1.2\r\n") {
		t.Fatalf("bad header: %q", out[:20])
	}
	if out[10] != 0x25 || out[11] != 0xC7 || out[12] != 0xEC || out[13] != 0x8F || out[14] != 0xA2 {
		t.Fatalf("missing binary marker: % x", out[10:15])
	}
	if !strings.HasSuffix(out, "%%EOF\r\n") {
		t.Fatalf("missing EOF marker: %q", out[len(out)-10:])
	}
	// None, Info, Pages, Catalog and the default font give five xref slots.
	if !strings.Contains(out, "xref\r\n0 5\r\n") {
		t.Fatal("expected 5 xref entries")
	}
	if !strings.Contains(out, "/Size 5") {
		t.Fatal("expected /Size 5")
	}
	if !strings.Contains(out, "/Root ") || !strings.Contains(out, "/Info ") {
		t.Fatal("trailer missing /Root or /Info")
	}
	if strings.Contains(out, "/Outlines") {
		t.Fatal("empty document must not reference an outline")
	}
	if !strings.Contains(out, "/Kids [ ]") || !strings.Contains(out, "/Count 0") {
		t.Fatal("expected empty pages container")
	}
	if !strings.Contains(out, "/BaseFont /Times-Roman") {
		t.Fatal("default font missing")
	}
}

func TestNewRejectsBadSize(t *testing.T) {
	if _, err := New(0, A4Height); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
	if _, err := New(A4Width, -5); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
}

func TestWidthHeight(t *testing.T) {
	d, err := New(300, 400)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.Width() != 300 || d.Height() != 400 {
		t.Fatalf("got %gx%g, want 300x400", d.Width(), d.Height())
	}
}

func TestInfoDefaultsAndTruncation(t *testing.T) {
	long := strings.Repeat("x", 100)
	d, err := New(A4Width, A4Height, WithInfo(Info{Title: long, Date: "20260830120000Z"}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out := render(t, d)
	if !strings.Contains(out, "/Title ("+long[:63]+")\r\n") {
		t.Fatal("title not truncated to 63 bytes")
	}
	if !strings.Contains(out, "/Creator (pdfgen)") {
		t.Fatal("creator not defaulted")
	}
	if !strings.Contains(out, "/CreationDate (D:20260830120000Z)") {
		t.Fatal("creation date not carried through")
	}
}

func TestFontDedup(t *testing.T) {
	d, err := New(A4Width, A4Height)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := d.SetFont("Helvetica"); err != nil {
			t.Fatalf("SetFont: %v", err)
		}
	}
	if err := d.SetFont("times-roman"); err != nil {
		t.Fatalf("SetFont case-insensitive: %v", err)
	}
	out := render(t, d)
	if n := strings.Count(out, "/Type /Font"); n != 2 {
		t.Fatalf("got %d font objects, want 2", n)
	}
}

func TestSetFontUnknown(t *testing.T) {
	d, err := New(A4Width, A4Height)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := d.SetFont("Comic-Sans"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
	if d.GetErr() == nil {
		t.Fatal("last-error slot not populated")
	}
	d.ClearErr()
	if d.GetErr() != nil {
		t.Fatal("ClearErr did not empty the slot")
	}
}

func TestPageSetSize(t *testing.T) {
	d, err := New(A4Width, A4Height)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.AppendPage(); err != nil {
		t.Fatalf("AppendPage: %v", err)
	}
	if err := d.PageSetSize(nil, 300, 300); err != nil {
		t.Fatalf("PageSetSize: %v", err)
	}
	out := render(t, d)
	if !strings.Contains(out, "/MediaBox [0 0 300 300]") {
		t.Fatal("page media box not overridden")
	}
}

func TestPageSetSizeNoPages(t *testing.T) {
	d, err := New(A4Width, A4Height)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := d.PageSetSize(nil, 300, 300); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
}

func TestErrorsNotSticky(t *testing.T) {
	d, err := New(A4Width, A4Height)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := d.SetFont("nope"); err == nil {
		t.Fatal("expected font error")
	}
	if _, err := d.AppendPage(); err != nil {
		t.Fatalf("AppendPage after failure: %v", err)
	}
	if err := d.AddText(nil, "still works", 12, 10, 10, Black); err != nil {
		t.Fatalf("AddText after failure: %v", err)
	}
}

func TestUnitConversions(t *testing.T) {
	if got := InchToPoint(8.5); got != LetterWidth {
		t.Fatalf("InchToPoint(8.5) = %v, want %v", got, LetterWidth)
	}
	if got := MMToPoint(210); got != A4Width {
		t.Fatalf("MMToPoint(210) = %v, want %v", got, A4Width)
	}
}
