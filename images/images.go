// Package images turns bitmap sources into fully formatted image XObject
// bodies. PPM and BMP pixels are ASCIIHex encoded; JPEG data passes through
// untouched under a DCTDecode filter.
package images

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"golang.org/x/image/bmp"
)

// MaxDim bounds image width and height in pixels.
const MaxDim = 4096

// RGB is a decoded 24-bit image, three bytes per pixel in row-major order.
type RGB struct {
	Width  int
	Height int
	Pix    []byte
}

// DecodePPM reads a binary (P6) PPM image. Comment lines starting with '#'
// may appear between the magic and the dimensions.
func DecodePPM(r io.Reader) (*RGB, error) {
	br := bufio.NewReader(r)

	magic, err := br.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("Invalid PPM file")
	}
	if len(magic) < 2 || magic[0] != 'P' || magic[1] != '6' {
		return nil, fmt.Errorf("Only binary PPM files supported")
	}

	var width, height int
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("Unable to find PPM size")
		}
		if len(line) > 0 && line[0] == '#' {
			continue
		}
		if _, err := fmt.Sscanf(line, "%d %d", &width, &height); err != nil {
			return nil, fmt.Errorf("Unable to find PPM size")
		}
		break
	}
	if width <= 0 || height <= 0 || width > MaxDim || height > MaxDim {
		return nil, fmt.Errorf("Invalid PPM size %dx%d", width, height)
	}

	// The max-colour-value line is read and ignored.
	if _, err := br.ReadString('\n'); err != nil {
		return nil, fmt.Errorf("No byte-size line in PPM file")
	}

	pix := make([]byte, width*height*3)
	if _, err := io.ReadFull(br, pix); err != nil {
		return nil, fmt.Errorf("Insufficient RGB data available")
	}
	return &RGB{Width: width, Height: height, Pix: pix}, nil
}

// DecodeBMP reads a Windows bitmap and converts it to 24-bit RGB.
func DecodeBMP(r io.Reader) (*RGB, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("Invalid BMP file: %v", err)
	}
	return fromImage(img)
}

func fromImage(img image.Image) (*RGB, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 || w > MaxDim || h > MaxDim {
		return nil, fmt.Errorf("Invalid image size %dx%d", w, h)
	}
	pix := make([]byte, 0, w*h*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pix = append(pix, byte(r>>8), byte(g>>8), byte(b>>8))
		}
	}
	return &RGB{Width: w, Height: h, Pix: pix}, nil
}

// JPEGSize extracts the pixel dimensions from a JFIF byte stream by walking
// the segment markers to the SOF0 frame header.
func JPEGSize(data []byte) (width, height int, err error) {
	if len(data) < 11 ||
		data[0] != 0xFF || data[1] != 0xD8 || data[2] != 0xFF || data[3] != 0xE0 {
		return 0, 0, fmt.Errorf("Unable to determine jpeg width/height")
	}
	i := 4
	if data[i+2] != 'J' || data[i+3] != 'F' || data[i+4] != 'I' ||
		data[i+5] != 'F' || data[i+6] != 0x00 {
		return 0, 0, fmt.Errorf("Unable to determine jpeg width/height")
	}
	blockLength := int(data[i])*256 + int(data[i+1])
	for i < len(data) {
		i += blockLength
		if i+8 >= len(data) {
			return 0, 0, fmt.Errorf("Unable to determine jpeg width/height")
		}
		if data[i] != 0xFF {
			return 0, 0, fmt.Errorf("Unable to determine jpeg width/height")
		}
		if data[i+1] == 0xC0 {
			height = int(data[i+5])*256 + int(data[i+6])
			width = int(data[i+7])*256 + int(data[i+8])
			return width, height, nil
		}
		i += 2
		blockLength = int(data[i])*256 + int(data[i+1])
	}
	return 0, 0, fmt.Errorf("Unable to determine jpeg width/height")
}
