package pdfgen

import (
	"github.com/docstream/pdfgen/dstr"
	"github.com/docstream/pdfgen/fonts"
	"github.com/docstream/pdfgen/object"
)

// AddText draws a text run at the given baseline position in the current
// font. Text is encoded as WinAnsi; codepoints outside that range fail.
func (d *Document) AddText(page *Page, text string, size, x, y float64, color Color) error {
	return d.addText(page, text, size, x, y, color, 0, false)
}

// AddTextSpacing draws a text run with extra per-character spacing, in
// points, applied through the Tc operator.
func (d *Document) AddTextSpacing(page *Page, text string, size, x, y float64, color Color, spacing float64) error {
	return d.addText(page, text, size, x, y, color, spacing, true)
}

func (d *Document) addText(page *Page, text string, size, x, y float64, color Color, spacing float64, withSpacing bool) error {
	if text == "" {
		return nil
	}

	var buf dstr.Buffer
	buf.AppendString("BT ")
	buf.Printf("/GS%d gs ", color.alpha()>>4&0xF)
	buf.Printf("%s %s TD ", fnum(x), fnum(y))
	buf.Printf("/F%d %s Tf ", d.currentFont.Payload.(*object.Font).Local, fnum(size))
	appendColor(&buf, color, "rg")
	if withSpacing {
		buf.Printf("%s Tc ", fnum(spacing))
	}
	buf.AppendString("(")
	if err := d.appendEscaped(&buf, text); err != nil {
		return err
	}
	buf.AppendString(") Tj ")
	buf.AppendString("ET")

	return d.addStream(page, &buf)
}

// appendEscaped encodes text as a PDF string literal body: WinAnsi bytes
// with (, ) and \ backslash-escaped, layout control characters dropped, and
// 0x80 (the euro sign) written as an octal escape.
func (d *Document) appendEscaped(buf *dstr.Buffer, text string) error {
	for len(text) > 0 {
		b, n, err := fonts.EncodeNext(text)
		if err != nil {
			return d.errorf(ErrEncoding, "Invalid text encoding: %v", err)
		}
		text = text[n:]
		switch b {
		case '(', ')', '\\':
			buf.AppendByte('\\')
			buf.AppendByte(b)
		case '\n', '\r', '\t', '\b', '\f':
			// Dropped from the literal.
		case 0x80:
			buf.AppendString(`\200`)
		default:
			buf.AppendByte(b)
		}
	}
	return nil
}
