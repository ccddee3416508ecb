package pdfgen

import "github.com/docstream/pdfgen/barcode"

// Barcode symbologies accepted by AddBarcode.
const (
	BarcodeCode128A = barcode.Code128A
	BarcodeCode39   = barcode.Code39
)

// AddBarcode renders a 1-D barcode as filled rectangles inside the box
// (x, y, width, height). An empty string draws nothing and succeeds.
func (d *Document) AddBarcode(kind barcode.Kind, page *Page, x, y, width, height float64, text string, color Color) error {
	if text == "" {
		return nil
	}

	var bars []barcode.Bar
	var err error
	switch kind {
	case barcode.Code128A:
		bars, err = barcode.Encode128A(text, width, height)
	case barcode.Code39:
		bars, err = barcode.Encode39(text, width, height)
	default:
		return d.errorf(ErrInvalidArgument, "Invalid barcode code %d", kind)
	}
	if err != nil {
		return d.errorf(ErrInvalidArgument, "%v", err)
	}

	for _, b := range bars {
		if err := d.AddFilledRectangle(page, x+b.X, y+b.Y, b.W, b.H, 0, color); err != nil {
			return err
		}
	}
	return nil
}
