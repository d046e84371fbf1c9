package export

import (
	"strconv"
	"strings"
)

// RGB is one decoded color, each channel in the 0-255 range.
type RGB struct {
	R int
	G int
	B int
}

// HexToRGB decodes a 6-digit hex color string, with or without a
// leading "#". Any malformed input (wrong length, non-hex characters,
// empty value) decodes to black so a single bad token never aborts an
// export.
func HexToRGB(hex string) RGB {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}
	}
	return RGB{
		R: int(v >> 16 & 0xFF),
		G: int(v >> 8 & 0xFF),
		B: int(v & 0xFF),
	}
}

// Normalized scales the channels to the 0.0-1.0 range used by formats
// with floating-point color encodings.
func (c RGB) Normalized() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}
