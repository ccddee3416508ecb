package dstr

import (
	"bytes"
	"strings"
	"testing"
)

func TestAppendStaysInline(t *testing.T) {
	var b Buffer
	b.AppendString("BT ")
	b.Printf("%d %d TD ", 50, 750)
	b.AppendString("ET")
	if got, want := b.String(), "BT 50 750 TD ET"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if b.heap != nil {
		t.Fatalf("short buffer should not spill to heap")
	}
}

func TestAppendGrowsPastInline(t *testing.T) {
	var b Buffer
	chunk := strings.Repeat("x", 100)
	for i := 0; i < 50; i++ {
		b.AppendString(chunk)
	}
	if b.Len() != 5000 {
		t.Fatalf("len = %d, want 5000", b.Len())
	}
	if !bytes.Equal(b.Data(), []byte(strings.Repeat("x", 5000))) {
		t.Fatalf("contents corrupted after growth")
	}
	if b.heap == nil {
		t.Fatalf("expected heap storage after overflow")
	}
}

func TestGrowthPreservesInlinePrefix(t *testing.T) {
	var b Buffer
	b.AppendString("prefix-")
	b.AppendString(strings.Repeat("y", 200))
	if !strings.HasPrefix(b.String(), "prefix-") {
		t.Fatalf("inline prefix lost on first overflow: %q", b.String()[:16])
	}
}

func TestTrimLineEndings(t *testing.T) {
	cases := []struct{ in, want string }{
		{"abc\r\n", "abc"},
		{"abc\n\n\r", "abc"},
		{"abc", "abc"},
		{"\r\n", ""},
		{"", ""},
		{"a\nb", "a\nb"},
	}
	for _, tc := range cases {
		var b Buffer
		b.AppendString(tc.in)
		b.TrimLineEndings()
		if got := b.String(); got != tc.want {
			t.Errorf("TrimLineEndings(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAppendByteAndReset(t *testing.T) {
	var b Buffer
	for i := 0; i < 300; i++ {
		b.AppendByte(byte('a' + i%26))
	}
	if b.Len() != 300 {
		t.Fatalf("len = %d, want 300", b.Len())
	}
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("reset did not clear length")
	}
	b.AppendString("fresh")
	if b.String() != "fresh" {
		t.Fatalf("buffer unusable after reset: %q", b.String())
	}
}
