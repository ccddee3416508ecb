package pdfgen

import (
	"github.com/docstream/pdfgen/fonts"
	"github.com/docstream/pdfgen/object"
)

// Alignment controls horizontal placement of wrapped text lines.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
	// AlignJustify spreads every line except the last of a paragraph to the
	// full wrap width through character spacing.
	AlignJustify
	// AlignJustifyAll justifies every line including paragraph-final ones.
	AlignJustifyAll
	// AlignNoWrite measures height only; nothing is drawn.
	AlignNoWrite
)

func isBreak(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// wordBreak advances from the given offset to the next whitespace byte.
func wordBreak(s string, from int) int {
	i := from
	if i > len(s) {
		return len(s)
	}
	for i < len(s) && !isBreak(s[i]) {
		i++
	}
	return i
}

// AddTextWrap lays out text inside wrapWidth, breaking at word boundaries
// and advancing the baseline by size per line. A single word wider than the
// wrap width is chopped at the widest fitting character boundary. The
// consumed height (start y minus final y) is returned.
func (d *Document) AddTextWrap(page *Page, text string, size, x, y float64, color Color, wrapWidth float64, align Alignment) (float64, error) {
	fontName := d.currentFont.Payload.(*object.Font).Name
	origY := y

	measure := func(s string) (float64, error) {
		w, err := fonts.TextWidth(fontName, s, size)
		if err != nil {
			return 0, d.errorf(ErrEncoding, "Unable to measure text: %v", err)
		}
		return w, nil
	}

	start, lastBest, end := 0, 0, 0
	for start < len(text) {
		end = wordBreak(text, end+1)

		lineWidth, err := measure(text[start:end])
		if err != nil {
			return 0, err
		}

		output := false
		if lineWidth >= wrapWidth {
			if lastBest == start {
				// One word wider than the whole line: binary-search the
				// widest prefix that still fits.
				lo, hi := 1, end-start
				for lo < hi {
					mid := (lo + hi + 1) / 2
					w, err := measure(text[start : start+mid])
					if err != nil {
						return 0, err
					}
					if w < wrapWidth {
						lo = mid
					} else {
						hi = mid - 1
					}
				}
				end = start + lo
			} else {
				end = lastBest
			}
			output = true
		}
		atEnd := end >= len(text)
		if atEnd || text[end] == '\n' || text[end] == '\r' {
			output = true
		}

		if !output {
			lastBest = end
			continue
		}

		line := text[start:end]
		if align != AlignNoWrite {
			if err := d.emitWrappedLine(page, line, size, x, y, color, wrapWidth, align, atEnd || text[end] == '\n' || text[end] == '\r'); err != nil {
				return 0, err
			}
		}
		if !atEnd && text[end] == ' ' {
			end++
		}
		start, lastBest = end, end
		y -= size
	}

	return origY - y, nil
}

func (d *Document) emitWrappedLine(page *Page, line string, size, x, y float64, color Color, wrapWidth float64, align Alignment, paragraphEnd bool) error {
	fontName := d.currentFont.Payload.(*object.Font).Name
	lineWidth, err := fonts.TextWidth(fontName, line, size)
	if err != nil {
		return d.errorf(ErrEncoding, "Unable to measure text: %v", err)
	}

	spacing := 0.0
	switch align {
	case AlignRight:
		x += wrapWidth - lineWidth
	case AlignCenter:
		x += (wrapWidth - lineWidth) / 2
	case AlignJustify:
		if len(line) > 2 && !paragraphEnd {
			spacing = (wrapWidth - lineWidth) / float64(len(line)-2)
		}
	case AlignJustifyAll:
		// Lines of two characters or fewer have no interior gaps to
		// spread, so they render unspaced.
		if len(line) > 2 {
			spacing = (wrapWidth - lineWidth) / float64(len(line)-2)
		}
	}
	if spacing != 0 {
		return d.AddTextSpacing(page, line, size, x, y, color, spacing)
	}
	return d.AddText(page, line, size, x, y, color)
}
