package pdfgen

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// TestXrefOffsetsMatch walks the emitted xref table and verifies that every
// entry points at the actual byte position of its object, and that
// startxref points at the xref itself.
func TestXrefOffsetsMatch(t *testing.T) {
	d, err := New(A4Width, A4Height, WithIDNonce(11))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.AppendPage(); err != nil {
		t.Fatalf("AppendPage: %v", err)
	}
	if err := d.AddText(nil, "offsets", 12, 50, 700, Black); err != nil {
		t.Fatalf("AddText: %v", err)
	}
	if err := d.AddLine(nil, 0, 0, 100, 100, 1, Red); err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	out := render(t, d)

	xrefPos := strings.LastIndex(out, "\r\nxref\r\n")
	if xrefPos < 0 {
		t.Fatal("no xref table")
	}
	xrefPos += 2
	sxPos := strings.LastIndex(out, "startxref\r\n")
	if sxPos < 0 {
		t.Fatal("no startxref")
	}
	sxLine := out[sxPos+len("startxref\r\n"):]
	sxLine = sxLine[:strings.Index(sxLine, "\r\n")]
	if got, _ := strconv.Atoi(sxLine); got != xrefPos {
		t.Fatalf("startxref %d, xref actually at %d", got, xrefPos)
	}

	lines := strings.Split(out[xrefPos:], "\r\n")
	// lines[0] = "xref", lines[1] = "0 N", lines[2] = free entry.
	n, err := strconv.Atoi(strings.Fields(lines[1])[1])
	if err != nil {
		t.Fatalf("bad xref count line %q", lines[1])
	}
	for i := 1; i < n; i++ {
		entry := lines[2+i]
		off, err := strconv.Atoi(strings.Fields(entry)[0])
		if err != nil {
			t.Fatalf("bad xref entry %q", entry)
		}
		want := strconv.Itoa(i) + " 0 obj\r\n"
		if !strings.HasPrefix(out[off:], want) {
			t.Fatalf("xref entry %d points at %q, want %q", i, out[off:off+14], want)
		}
	}
	if !strings.Contains(out, "/Size "+strconv.Itoa(n)+"\r\n") {
		t.Fatalf("trailer /Size does not match %d xref entries", n)
	}
}

func TestSaveReproducibleWithNonce(t *testing.T) {
	build := func() string {
		d, err := New(A4Width, A4Height,
			WithIDNonce(42),
			WithInfo(Info{Date: "20260101000000Z"}))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if _, err := d.AppendPage(); err != nil {
			t.Fatalf("AppendPage: %v", err)
		}
		if err := d.AddText(nil, "deterministic", 12, 50, 700, Black); err != nil {
			t.Fatalf("AddText: %v", err)
		}
		return render(t, d)
	}
	if build() != build() {
		t.Fatal("same nonce must produce identical bytes")
	}
}

func TestSaveDistinctIDs(t *testing.T) {
	d, err := New(A4Width, A4Height,
		WithIDNonce(1), WithInfo(Info{Date: "20260101000000Z"}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out1 := render(t, d)

	d2, err := New(A4Width, A4Height,
		WithIDNonce(2), WithInfo(Info{Date: "20260101000000Z"}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out2 := render(t, d2)

	id := func(out string) string {
		i := strings.Index(out, "/ID [")
		j := strings.Index(out[i:], "]")
		return out[i : i+j]
	}
	if id(out1) == id(out2) {
		t.Fatal("different nonces must yield different IDs")
	}
	// The first ID half ignores the nonce.
	first := func(out string) string {
		i := strings.Index(out, "/ID [<")
		return out[i+6 : i+22]
	}
	if first(out1) != first(out2) {
		t.Fatal("first ID half must depend only on document contents")
	}
}

func TestSaveToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	d, err := New(A4Width, A4Height, WithIDNonce(5))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.AppendPage(); err != nil {
		t.Fatalf("AppendPage: %v", err)
	}
	if err := d.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.2\r\n")) {
		t.Fatal("file missing PDF header")
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\r\n")) {
		t.Fatal("file missing EOF marker")
	}
}

func TestSaveWriteFailure(t *testing.T) {
	d, err := New(A4Width, A4Height)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := d.SaveFile(failingWriter{}); err == nil {
		t.Fatal("expected write error")
	}
	if d.GetErr() == nil {
		t.Fatal("write failure not cached in last-error slot")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, os.ErrClosed
}
