// Package barcode encodes Code-128A and Code-39 symbols as filled bar
// geometry. The encoders are pure: they return the bars relative to the
// symbol origin and leave drawing to the caller.
package barcode

import (
	"fmt"
	"math"
)

// Kind selects a symbology.
type Kind int

const (
	Code128A Kind = iota
	Code39
)

// Bar is one filled rectangle of a rendered symbol, positioned relative to
// the symbol's lower-left corner.
type Bar struct {
	X, Y, W, H float64
}

const (
	code128Start = 104
	code128Stop  = 106
)

// symbolValue maps a character to its Code-128A symbol value.
func symbolValue(ch byte) (int, bool) {
	if ch < ' ' || ch > '~' {
		return 0, false
	}
	return int(ch) - ' ', true
}

// Encode128A lays out text as a Code-128A symbol filling width x height.
// The symbol is start code, data, weighted mod-103 checksum, stop.
func Encode128A(text string, width, height float64) ([]Bar, error) {
	if text == "" {
		return nil, nil
	}
	for i := 0; i < len(text); i++ {
		if _, ok := symbolValue(text[i]); !ok {
			return nil, fmt.Errorf("Invalid barcode character 0x%x", text[i])
		}
	}

	charWidth := width / float64(len(text)+3)
	var bars []Bar
	x := 0.0

	x = appendCode128(&bars, x, charWidth, height, code128Start)
	checksum := code128Start
	for i := 0; i < len(text); i++ {
		value, _ := symbolValue(text[i])
		x = appendCode128(&bars, x, charWidth, height, value)
		checksum += value * (i + 1)
	}
	x = appendCode128(&bars, x, charWidth, height, checksum%103)
	appendCode128(&bars, x, charWidth, height, code128Stop)
	return bars, nil
}

// appendCode128 emits one symbol value at x and returns the advanced x.
// Even runs are bars, odd runs spaces; run widths are the pattern nibbles.
func appendCode128(bars *[]Bar, x, charWidth, height float64, value int) float64 {
	pattern := code128Patterns[value]
	runs := 6
	if value == code128Stop {
		runs = 7
	}
	module := charWidth / 11
	for i := 0; i < runs; i++ {
		shift := uint((runs - 1 - i) * 4)
		w := float64((pattern>>shift)&0xF) * module
		if i%2 == 0 {
			*bars = append(*bars, Bar{X: x, Y: 0, W: w, H: height})
		}
		x += w
	}
	return x
}

// Encode39 lays out text as a Code-39 symbol filling width x height. The
// data is bracketed by the '*' start/stop character.
func Encode39(text string, width, height float64) ([]Bar, error) {
	if text == "" {
		return nil, nil
	}
	for i := 0; i < len(text); i++ {
		if _, ok := code39Patterns[text[i]]; !ok {
			return nil, fmt.Errorf("Invalid barcode character 0x%x", text[i])
		}
	}

	charWidth := width / float64(len(text)+2)
	narrow := charWidth / 12
	wide := charWidth / 4
	if math.Round(narrow) <= 1 || math.Round(wide) <= 1 {
		return nil, fmt.Errorf("Bar width %.1f too small for barcode", narrow)
	}

	var bars []Bar
	x := 0.0
	x = appendCode39(&bars, x, narrow, wide, height, '*')
	for i := 0; i < len(text); i++ {
		x = appendCode39(&bars, x, narrow, wide, height, text[i])
	}
	appendCode39(&bars, x, narrow, wide, height, '*')
	return bars, nil
}

// appendCode39 emits one character's nine elements plus the inter-character
// gap and returns the advanced x. Bars are drawn one point short so
// adjacent narrow bars stay distinct.
func appendCode39(bars *[]Bar, x, narrow, wide, height float64, ch byte) float64 {
	pattern := code39Patterns[ch]
	for i := 0; i < 9; i++ {
		w := narrow
		if pattern&(1<<uint(8-i)) != 0 {
			w = wide
		}
		if i%2 == 0 {
			*bars = append(*bars, Bar{X: x, Y: 0, W: w - 1, H: height})
		}
		x += w
	}
	return x + narrow
}
