package preflight

import (
	"bytes"
	"encoding/binary"
)

// Resolution metadata lives outside the pixel data, in format-specific
// headers the stdlib decoders do not expose. These readers scan the raw
// bytes for just the resolution fields and nothing else.

const defaultDPI = 72

// resolution returns the image's DPI on each axis, falling back to the
// 72x72 screen convention when the file carries no resolution metadata.
func resolution(data []byte, format string) (x, y float64) {
	switch format {
	case "jpeg":
		if x, y, ok := jpegDPI(data); ok {
			return x, y
		}
	case "png":
		if x, y, ok := pngDPI(data); ok {
			return x, y
		}
	case "tiff":
		if x, y, ok := tiffDPI(data); ok {
			return x, y
		}
	}
	return defaultDPI, defaultDPI
}

// jpegDPI reads the pixel density from the JFIF APP0 segment. Density
// unit 1 is dots per inch, unit 2 dots per centimeter; unit 0 declares
// an aspect ratio only and carries no physical resolution.
func jpegDPI(data []byte) (x, y float64, ok bool) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return 0, 0, false
	}

	i := 2
	for i+4 <= len(data) && data[i] == 0xFF {
		marker := data[i+1]
		if marker == 0xD9 || marker == 0xDA { // EOI / SOS: metadata is over
			break
		}
		length := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
		if length < 2 || i+2+length > len(data) {
			break
		}
		segment := data[i+4 : i+2+length]

		if marker == 0xE0 && len(segment) >= 12 && bytes.HasPrefix(segment, []byte("JFIF\x00")) {
			unit := segment[7]
			dx := float64(binary.BigEndian.Uint16(segment[8:10]))
			dy := float64(binary.BigEndian.Uint16(segment[10:12]))
			switch unit {
			case 1:
				return dx, dy, dx > 0 && dy > 0
			case 2:
				return dx * 2.54, dy * 2.54, dx > 0 && dy > 0
			}
			return 0, 0, false
		}

		i += 2 + length
	}

	return 0, 0, false
}

var pngSignature = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// pngDPI reads the pHYs chunk, which stores pixels per metre.
func pngDPI(data []byte) (x, y float64, ok bool) {
	if !bytes.HasPrefix(data, pngSignature) {
		return 0, 0, false
	}

	i := len(pngSignature)
	for i+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[i : i+4]))
		chunkType := string(data[i+4 : i+8])
		if i+8+length > len(data) {
			break
		}
		payload := data[i+8 : i+8+length]

		switch chunkType {
		case "pHYs":
			if length != 9 || payload[8] != 1 { // unit 1 = metre
				return 0, 0, false
			}
			ppmX := float64(binary.BigEndian.Uint32(payload[0:4]))
			ppmY := float64(binary.BigEndian.Uint32(payload[4:8]))
			return ppmX * 0.0254, ppmY * 0.0254, ppmX > 0 && ppmY > 0
		case "IDAT", "IEND":
			// pHYs must precede the image data.
			return 0, 0, false
		}

		i += 8 + length + 4 // header + payload + CRC
	}

	return 0, 0, false
}

// TIFF IFD tags for resolution.
const (
	tagXResolution    = 282
	tagYResolution    = 283
	tagResolutionUnit = 296
)

// tiffDPI reads the XResolution/YResolution rational tags from the first
// IFD, honoring the ResolutionUnit tag (2 = inch, the default; 3 =
// centimeter).
func tiffDPI(data []byte) (x, y float64, ok bool) {
	if len(data) < 8 {
		return 0, 0, false
	}

	var order binary.ByteOrder
	switch {
	case data[0] == 'I' && data[1] == 'I':
		order = binary.LittleEndian
	case data[0] == 'M' && data[1] == 'M':
		order = binary.BigEndian
	default:
		return 0, 0, false
	}
	if order.Uint16(data[2:4]) != 42 {
		return 0, 0, false
	}

	ifdOffset := int(order.Uint32(data[4:8]))
	if ifdOffset+2 > len(data) {
		return 0, 0, false
	}

	entryCount := int(order.Uint16(data[ifdOffset : ifdOffset+2]))
	entries := ifdOffset + 2
	if entries+entryCount*12 > len(data) {
		return 0, 0, false
	}

	var resX, resY float64
	unit := 2.0 // inch unless the file says otherwise

	for n := 0; n < entryCount; n++ {
		entry := data[entries+n*12 : entries+(n+1)*12]
		tag := order.Uint16(entry[0:2])

		switch tag {
		case tagXResolution, tagYResolution:
			if order.Uint16(entry[2:4]) != 5 { // RATIONAL
				continue
			}
			valueOffset := int(order.Uint32(entry[8:12]))
			if valueOffset+8 > len(data) {
				continue
			}
			numerator := float64(order.Uint32(data[valueOffset : valueOffset+4]))
			denominator := float64(order.Uint32(data[valueOffset+4 : valueOffset+8]))
			if denominator == 0 {
				continue
			}
			if tag == tagXResolution {
				resX = numerator / denominator
			} else {
				resY = numerator / denominator
			}
		case tagResolutionUnit:
			unit = float64(order.Uint16(entry[8:10]))
		}
	}

	if resX <= 0 || resY <= 0 {
		return 0, 0, false
	}
	if unit == 3 {
		return resX * 2.54, resY * 2.54, true
	}
	return resX, resY, true
}
