package pdfgen

import (
	"math"
	"strconv"

	"github.com/docstream/pdfgen/dstr"
	"github.com/docstream/pdfgen/object"
)

// Handle length for approximating a quarter circle with one cubic Bézier.
var bezierCircleFactor = 4.0 / 3.0 * (math.Sqrt2 - 1)

// fnum formats a coordinate or width with the shortest exact decimal form,
// so integral values render without a fractional part.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// appendColor emits the three channels followed by a color operator such as
// rg or RG. Channels use three fractional digits for reproducible output.
func appendColor(buf *dstr.Buffer, c Color, op string) {
	r, g, b := c.components()
	buf.Printf("%.3f %.3f %.3f %s ", r, g, b, op)
}

// addStream trims trailing line endings from the scratch buffer, wraps it in
// a stream dictionary, and appends the resulting object to the page's
// content list. Every drawing primitive funnels through here.
func (d *Document) addStream(page *Page, scratch *dstr.Buffer) error {
	pageObj, err := d.resolvePage(page)
	if err != nil {
		return err
	}
	scratch.TrimLineEndings()

	stream := &object.Stream{}
	stream.Body.Printf("<< /Length %d >>stream\r\n", scratch.Len())
	stream.Body.Append(scratch.Data())
	stream.Body.AppendString("\r\nendstream\r\n")

	obj := d.registry.Add(object.KindStream, stream)
	if obj == nil {
		return d.errorf(ErrInternal, "Object table full")
	}
	data := pageObj.Payload.(*object.Page)
	data.Children = append(data.Children, obj)
	return nil
}

// AddLine strokes a straight line between two points.
func (d *Document) AddLine(page *Page, x1, y1, x2, y2, width float64, color Color) error {
	var buf dstr.Buffer
	buf.Printf("%s w ", fnum(width))
	buf.Printf("%s %s m ", fnum(x1), fnum(y1))
	buf.AppendString("/DeviceRGB CS ")
	appendColor(&buf, color, "RG")
	buf.Printf("%s %s l S", fnum(x2), fnum(y2))
	return d.addStream(page, &buf)
}

// AddRectangle strokes a rectangle outline.
func (d *Document) AddRectangle(page *Page, x, y, width, height, borderWidth float64, color Color) error {
	var buf dstr.Buffer
	appendColor(&buf, color, "RG")
	buf.Printf("%s w ", fnum(borderWidth))
	buf.Printf("%s %s %s %s re S", fnum(x), fnum(y), fnum(width), fnum(height))
	return d.addStream(page, &buf)
}

// AddFilledRectangle fills a rectangle.
func (d *Document) AddFilledRectangle(page *Page, x, y, width, height, borderWidth float64, color Color) error {
	var buf dstr.Buffer
	appendColor(&buf, color, "rg")
	buf.Printf("%s w ", fnum(borderWidth))
	buf.Printf("%s %s %s %s re f", fnum(x), fnum(y), fnum(width), fnum(height))
	return d.addStream(page, &buf)
}

// AddPolygon strokes a closed polygon through the given vertices.
func (d *Document) AddPolygon(page *Page, xs, ys []float64, borderWidth float64, color Color) error {
	return d.addPolygon(page, xs, ys, borderWidth, color, "S")
}

// AddFilledPolygon fills a closed polygon.
func (d *Document) AddFilledPolygon(page *Page, xs, ys []float64, borderWidth float64, color Color) error {
	return d.addPolygon(page, xs, ys, borderWidth, color, "f")
}

func (d *Document) addPolygon(page *Page, xs, ys []float64, borderWidth float64, color Color, paint string) error {
	if len(xs) != len(ys) || len(xs) < 2 {
		return d.errorf(ErrInvalidArgument, "Invalid polygon with %d x %d points", len(xs), len(ys))
	}
	var buf dstr.Buffer
	if paint == "f" {
		appendColor(&buf, color, "rg")
	} else {
		appendColor(&buf, color, "RG")
	}
	buf.Printf("%s w ", fnum(borderWidth))
	buf.Printf("%s %s m ", fnum(xs[0]), fnum(ys[0]))
	for i := 1; i < len(xs); i++ {
		buf.Printf("%s %s l ", fnum(xs[i]), fnum(ys[i]))
	}
	buf.Printf("h %s", paint)
	return d.addStream(page, &buf)
}

// AddCubicBezier strokes a cubic Bézier from (x1,y1) to (x2,y2) with the two
// control points (cx1,cy1) and (cx2,cy2).
func (d *Document) AddCubicBezier(page *Page, x1, y1, x2, y2, cx1, cy1, cx2, cy2, width float64, color Color) error {
	var buf dstr.Buffer
	buf.Printf("%s w ", fnum(width))
	buf.Printf("%s %s m ", fnum(x1), fnum(y1))
	buf.AppendString("/DeviceRGB CS ")
	appendColor(&buf, color, "RG")
	buf.Printf("%s %s %s %s %s %s c S",
		fnum(cx1), fnum(cy1), fnum(cx2), fnum(cy2), fnum(x2), fnum(y2))
	return d.addStream(page, &buf)
}

// AddQuadraticBezier strokes a quadratic Bézier with one control point,
// elevated to the equivalent cubic.
func (d *Document) AddQuadraticBezier(page *Page, x1, y1, x2, y2, cx, cy, width float64, color Color) error {
	cx1 := x1 + 2.0/3.0*(cx-x1)
	cy1 := y1 + 2.0/3.0*(cy-y1)
	cx2 := x2 + 2.0/3.0*(cx-x2)
	cy2 := y2 + 2.0/3.0*(cy-y2)
	return d.AddCubicBezier(page, x1, y1, x2, y2, cx1, cy1, cx2, cy2, width, color)
}

// PathOp is one step of a custom path. Op selects the PDF path operator:
// 'm' moveto (X1,Y1), 'l' lineto (X1,Y1), 'c' full cubic with both control
// points, 'v' and 'y' cubics with one implied control point, 'h' closepath.
type PathOp struct {
	Op                     byte
	X1, Y1, X2, Y2, X3, Y3 float64
}

// AddCustomPath emits an arbitrary path and paints it. A transparent fill
// strokes only; otherwise the path is filled and stroked.
func (d *Document) AddCustomPath(page *Page, ops []PathOp, strokeWidth float64, stroke, fill Color) error {
	var buf dstr.Buffer
	if !fill.IsTransparent() {
		appendColor(&buf, fill, "rg")
	}
	buf.Printf("%s w ", fnum(strokeWidth))
	buf.AppendString("/DeviceRGB CS ")
	appendColor(&buf, stroke, "RG")
	for _, op := range ops {
		switch op.Op {
		case 'm':
			buf.Printf("%s %s m ", fnum(op.X1), fnum(op.Y1))
		case 'l':
			buf.Printf("%s %s l ", fnum(op.X1), fnum(op.Y1))
		case 'c':
			buf.Printf("%s %s %s %s %s %s c ",
				fnum(op.X1), fnum(op.Y1), fnum(op.X2), fnum(op.Y2), fnum(op.X3), fnum(op.Y3))
		case 'v':
			buf.Printf("%s %s %s %s v ", fnum(op.X1), fnum(op.Y1), fnum(op.X2), fnum(op.Y2))
		case 'y':
			buf.Printf("%s %s %s %s y ", fnum(op.X1), fnum(op.Y1), fnum(op.X2), fnum(op.Y2))
		case 'h':
			buf.AppendString("h ")
		default:
			return d.errorf(ErrInvalidArgument, "Invalid path operation %q", op.Op)
		}
	}
	if fill.IsTransparent() {
		buf.AppendString("S")
	} else {
		buf.AppendString("B")
	}
	return d.addStream(page, &buf)
}

// AddEllipse draws an ellipse centered at (x,y) from four cubic Bézier
// quarters. A transparent fill strokes the outline only.
func (d *Document) AddEllipse(page *Page, x, y, rx, ry, width float64, stroke, fill Color) error {
	lx := bezierCircleFactor * rx
	ly := bezierCircleFactor * ry

	var buf dstr.Buffer
	buf.AppendString("/DeviceRGB CS ")
	if !fill.IsTransparent() {
		appendColor(&buf, fill, "rg")
	}
	appendColor(&buf, stroke, "RG")
	buf.Printf("%s w ", fnum(width))
	buf.Printf("%s %s m ", fnum(x+rx), fnum(y))
	buf.Printf("%s %s %s %s %s %s c ",
		fnum(x+rx), fnum(y+ly), fnum(x+lx), fnum(y+ry), fnum(x), fnum(y+ry))
	buf.Printf("%s %s %s %s %s %s c ",
		fnum(x-lx), fnum(y+ry), fnum(x-rx), fnum(y+ly), fnum(x-rx), fnum(y))
	buf.Printf("%s %s %s %s %s %s c ",
		fnum(x-rx), fnum(y-ly), fnum(x-lx), fnum(y-ry), fnum(x), fnum(y-ry))
	buf.Printf("%s %s %s %s %s %s c ",
		fnum(x+lx), fnum(y-ry), fnum(x+rx), fnum(y-ly), fnum(x+rx), fnum(y))
	if fill.IsTransparent() {
		buf.AppendString("S")
	} else {
		buf.AppendString("B")
	}
	return d.addStream(page, &buf)
}

// AddCircle draws a circle of radius r centered at (x,y).
func (d *Document) AddCircle(page *Page, x, y, r, width float64, stroke, fill Color) error {
	return d.AddEllipse(page, x, y, r, r, width, stroke, fill)
}
