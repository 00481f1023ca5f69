// Package color contains the color type of marq.
package color

import (
	"fmt"
	"strings"
)

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA returns a color from its four channels.
func RGBA(r, g, b, a uint8) Color { return Color{r, g, b, a} }

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{r, g, b, 0xff} }

// String returns the color as "#rrggbb", or "#rrggbbaa" when it is not fully
// opaque.
func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ErrInvalidHex is returned by ParseHex for malformed input.
type ErrInvalidHex struct {
	Text string
}

func (err ErrInvalidHex) Error() string {
	return fmt.Sprintf("invalid hex color: %q", err.Text)
}

// ParseHex parses a color in one of the forms "rgb", "rgba", "rrggbb" and
// "rrggbbaa", with an optional leading "#".
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	var digits []uint8
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return Color{}, ErrInvalidHex{s}
		}
		digits = append(digits, d)
	}
	ch := make([]uint8, 0, 4)
	switch len(digits) {
	case 3, 4:
		for _, d := range digits {
			ch = append(ch, d*17)
		}
	case 6, 8:
		for i := 0; i < len(digits); i += 2 {
			ch = append(ch, digits[i]<<4|digits[i+1])
		}
	default:
		return Color{}, ErrInvalidHex{s}
	}
	if len(ch) == 3 {
		ch = append(ch, 0xff)
	}
	return Color{ch[0], ch[1], ch[2], ch[3]}, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
