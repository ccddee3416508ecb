// Package fonts knows the base-14 Type1 fonts: their canonical PDF names,
// their 14 pt glyph width tables, and text width measurement over the
// WinAnsi encoding.
package fonts

import (
	"fmt"
	"strings"
)

// The accepted base fonts. Lookup is case-insensitive but the canonical
// spelling below is what lands in the /BaseFont entry.
var baseFonts = []string{
	"Courier",
	"Courier-Bold",
	"Courier-BoldOblique",
	"Courier-Oblique",
	"Helvetica",
	"Helvetica-Bold",
	"Helvetica-BoldOblique",
	"Helvetica-Oblique",
	"Times-Roman",
	"Times-Bold",
	"Times-Italic",
	"Times-BoldItalic",
	"Symbol",
	"ZapfDingbats",
}

// Canonical resolves a font name case-insensitively and returns its
// canonical spelling.
func Canonical(name string) (string, bool) {
	for _, f := range baseFonts {
		if strings.EqualFold(f, name) {
			return f, true
		}
	}
	return "", false
}

func widthTable(name string) *[256]uint16 {
	switch name {
	case "Helvetica":
		return &helveticaWidths
	case "Helvetica-Bold":
		return &helveticaBoldWidths
	case "Helvetica-BoldOblique":
		return &helveticaBoldObliqueWidths
	case "Helvetica-Oblique":
		return &helveticaObliqueWidths
	case "Courier", "Courier-Bold", "Courier-BoldOblique", "Courier-Oblique":
		return &courierWidths
	case "Times-Roman":
		return &timesWidths
	case "Times-Bold":
		return &timesBoldWidths
	case "Times-Italic":
		return &timesItalicWidths
	case "Times-BoldItalic":
		return &timesBoldItalicWidths
	case "Symbol":
		return &symbolWidths
	case "ZapfDingbats":
		return &zapfDingbatsWidths
	}
	return nil
}

// TextWidth measures text rendered in the named font at the given size and
// returns the width in points. Newline and carriage return contribute zero
// width; any codepoint the WinAnsi encoding cannot represent is an error.
func TextWidth(fontName, text string, size float64) (float64, error) {
	widths := widthTable(fontName)
	if widths == nil {
		return 0, fmt.Errorf("no width table for font %q", fontName)
	}
	var sum uint64
	for i := 0; i < len(text); {
		b, n, err := EncodeNext(text[i:])
		if err != nil {
			return 0, err
		}
		if b != '\n' && b != '\r' {
			sum += uint64(widths[b])
		}
		i += n
	}
	// The tables are for a 14 pt face.
	return float64(sum) * size / (14.0 * 72.0), nil
}
