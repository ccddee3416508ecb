package images

import "fmt"

const hexDigits = "0123456789ABCDEF"

// HexBody builds a complete ASCIIHex-encoded image XObject body, dictionary
// and stream included. The declared /Length covers the hex digits plus the
// closing '>' marker.
func HexBody(nameIndex int, img *RGB) []byte {
	header := fmt.Sprintf(
		"<<\r\n/Type /XObject\r\n/Name /Image%d\r\n/Subtype /Image\r\n"+
			"/ColorSpace /DeviceRGB\r\n/Height %d\r\n/Width %d\r\n"+
			"/BitsPerComponent 8\r\n/Filter /ASCIIHexDecode\r\n"+
			"/Length %d\r\n>>stream\r\n",
		nameIndex, img.Height, img.Width, len(img.Pix)*2+1)
	trailer := ">\r\nendstream\r\n"

	out := make([]byte, 0, len(header)+len(img.Pix)*2+len(trailer))
	out = append(out, header...)
	for _, b := range img.Pix {
		out = append(out, hexDigits[b>>4], hexDigits[b&0xF])
	}
	out = append(out, trailer...)
	return out
}

// DCTBody builds an image XObject body holding raw JPEG data under a
// DCTDecode filter.
func DCTBody(nameIndex, width, height int, jpeg []byte) []byte {
	header := fmt.Sprintf(
		"<<\r\n/Type /XObject\r\n/Name /Image%d\r\n"+
			"/Subtype /Image\r\n/ColorSpace /DeviceRGB\r\n"+
			"/Width %d\r\n/Height %d\r\n"+
			"/BitsPerComponent 8\r\n/Filter /DCTDecode\r\n"+
			"/Length %d\r\n>>stream\r\n",
		nameIndex, width, height, len(jpeg))
	trailer := "\r\nendstream\r\n"

	out := make([]byte, 0, len(header)+len(jpeg)+len(trailer))
	out = append(out, header...)
	out = append(out, jpeg...)
	out = append(out, trailer...)
	return out
}
