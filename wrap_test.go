package pdfgen

import (
	"strings"
	"testing"
)

const loremLine = "The quick brown fox jumps over the lazy dog and keeps on running"

func TestWrapBreaksAtWords(t *testing.T) {
	d := textDoc(t)
	height, err := d.AddTextWrap(nil, loremLine, 12, 50, 700, Black, 150, AlignLeft)
	if err != nil {
		t.Fatalf("AddTextWrap: %v", err)
	}
	if height <= 12 {
		t.Fatalf("expected multiple lines, consumed height %g", height)
	}
	out := render(t, d)
	if n := strings.Count(out, ") Tj"); n < 2 {
		t.Fatalf("expected several text runs, got %d", n)
	}
	// Lines must break between words, never inside one.
	if strings.Contains(out, "(The quick brown fox jumps over the lazy dog and keeps on running)") {
		t.Fatal("text was not wrapped")
	}
}

func TestWrapNoWriteMatchesLeftHeight(t *testing.T) {
	measure, err := New(A4Width, A4Height)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := measure.AppendPage(); err != nil {
		t.Fatalf("AppendPage: %v", err)
	}
	draw := textDoc(t)

	h1, err := measure.AddTextWrap(nil, loremLine, 12, 50, 700, Black, 150, AlignNoWrite)
	if err != nil {
		t.Fatalf("NoWrite wrap: %v", err)
	}
	h2, err := draw.AddTextWrap(nil, loremLine, 12, 50, 700, Black, 150, AlignLeft)
	if err != nil {
		t.Fatalf("Left wrap: %v", err)
	}
	if h1 != h2 {
		t.Fatalf("NoWrite height %g != Left height %g", h1, h2)
	}
	// NoWrite must leave the page empty.
	if strings.Contains(render(t, measure), ") Tj") {
		t.Fatal("NoWrite emitted content")
	}
}

func TestWrapChopsOversizedWord(t *testing.T) {
	d := textDoc(t)
	height, err := d.AddTextWrap(nil, "Incomprehensibilities", 12, 50, 700, Black, 40, AlignLeft)
	if err != nil {
		t.Fatalf("AddTextWrap: %v", err)
	}
	if height <= 12 {
		t.Fatal("oversized word not chopped onto multiple lines")
	}
}

func TestWrapHonorsNewlines(t *testing.T) {
	d := textDoc(t)
	height, err := d.AddTextWrap(nil, "one\ntwo\nthree", 10, 50, 700, Black, 500, AlignLeft)
	if err != nil {
		t.Fatalf("AddTextWrap: %v", err)
	}
	if height != 30 {
		t.Fatalf("got height %g, want 30", height)
	}
	out := render(t, d)
	for _, want := range []string{"(one) Tj", "(two) Tj", "(three) Tj"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestWrapRightAlignShiftsX(t *testing.T) {
	d := textDoc(t)
	if _, err := d.AddTextWrap(nil, "end", 10, 0, 700, Black, 200, AlignRight); err != nil {
		t.Fatalf("AddTextWrap: %v", err)
	}
	out := render(t, d)
	if strings.Contains(out, "BT /GS0 gs 0 700 TD") {
		t.Fatal("right-aligned line not shifted")
	}
}

func TestWrapJustifyEmitsSpacing(t *testing.T) {
	d := textDoc(t)
	if _, err := d.AddTextWrap(nil, loremLine, 12, 50, 700, Black, 150, AlignJustify); err != nil {
		t.Fatalf("AddTextWrap: %v", err)
	}
	if !strings.Contains(render(t, d), " Tc ") {
		t.Fatal("justified lines must carry character spacing")
	}
}

func TestWrapJustifyShortLineUnspaced(t *testing.T) {
	d := textDoc(t)
	if _, err := d.AddTextWrap(nil, "ab", 12, 50, 700, Black, 200, AlignJustifyAll); err != nil {
		t.Fatalf("AddTextWrap: %v", err)
	}
	out := render(t, d)
	if !strings.Contains(out, "(ab) Tj") {
		t.Fatal("short line not drawn")
	}
	// A two-character line has no interior gaps: spreading it would divide
	// by zero and leak a non-finite Tc operand into the stream.
	for _, bad := range []string{" Tc ", "+Inf", "NaN"} {
		if strings.Contains(out, bad) {
			t.Fatalf("output contains %q", bad)
		}
	}
}
