package pdfgen

import (
	"os"

	"github.com/docstream/pdfgen/dstr"
	"github.com/docstream/pdfgen/images"
	"github.com/docstream/pdfgen/object"
	"github.com/docstream/pdfgen/observability"
)

// AddPPM decodes a binary PPM file and places it on the page at (x,y)
// scaled to width x height points.
func (d *Document) AddPPM(page *Page, x, y, width, height float64, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return d.errorf(ErrIO, "Unable to open '%s': %v", path, err)
	}
	defer f.Close()

	img, err := images.DecodePPM(f)
	if err != nil {
		return d.errorf(ErrInvalidArgument, "%v", err)
	}
	return d.addRGBImage(page, x, y, width, height, img)
}

// AddBMP decodes a Windows bitmap file and places it on the page.
func (d *Document) AddBMP(page *Page, x, y, width, height float64, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return d.errorf(ErrIO, "Unable to open '%s': %v", path, err)
	}
	defer f.Close()

	img, err := images.DecodeBMP(f)
	if err != nil {
		return d.errorf(ErrInvalidArgument, "%v", err)
	}
	return d.addRGBImage(page, x, y, width, height, img)
}

// AddJPEG places a JPEG file on the page. The JPEG bytes pass through
// unmodified under a DCTDecode filter.
func (d *Document) AddJPEG(page *Page, x, y, width, height float64, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return d.errorf(ErrIO, "Unable to read '%s': %v", path, err)
	}
	return d.AddJPEGData(page, x, y, width, height, data)
}

// AddJPEGData places an in-memory JPEG byte stream on the page.
func (d *Document) AddJPEGData(page *Page, x, y, width, height float64, data []byte) error {
	w, h, err := images.JPEGSize(data)
	if err != nil {
		return d.errorf(ErrInvalidArgument, "%v", err)
	}
	nameIndex := d.registry.Size()
	return d.placeImage(page, x, y, width, height,
		images.DCTBody(nameIndex, w, h, data))
}

func (d *Document) addRGBImage(page *Page, x, y, width, height float64, img *images.RGB) error {
	nameIndex := d.registry.Size()
	return d.placeImage(page, x, y, width, height, images.HexBody(nameIndex, img))
}

// placeImage registers a fully formatted XObject body and appends a content
// stream invoking it. The XObject name always equals its object number.
func (d *Document) placeImage(page *Page, x, y, width, height float64, body []byte) error {
	pageObj, err := d.resolvePage(page)
	if err != nil {
		return err
	}

	stream := &object.Stream{}
	stream.Body.Append(body)
	obj := d.registry.Add(object.KindImage, stream)
	if obj == nil {
		return d.errorf(ErrInternal, "Object table full")
	}

	var buf dstr.Buffer
	buf.Printf("q %s 0 0 %s %s %s cm /Image%d Do Q",
		fnum(width), fnum(height), fnum(x), fnum(y), obj.Index)
	if err := d.addStream(&Page{obj: pageObj}, &buf); err != nil {
		return err
	}
	d.logger.Debug("image placed",
		observability.Int("object", obj.Index),
		observability.Int64("bytes", int64(len(body))))
	return nil
}
