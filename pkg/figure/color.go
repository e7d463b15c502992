package figure

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// splitHex splits "#rgb", "#rrggbb" or "#rrggbbaa" into a normalised
// "#rrggbb" and the alpha digits, if any.
func splitHex(s string) (rgb, alpha string, ok bool) {
	s = strings.TrimSpace(s)
	if len(s) == 9 {
		alpha = strings.ToLower(s[7:])
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", "", false
	}
	return c.Hex(), alpha, true
}

// withRGB replaces the RGB part of an 8-hex colour, keeping cur's alpha
// digits. An alpha in color itself wins. Colours that are not hex are
// returned unchanged.
func withRGB(cur, color string) string {
	rgb, alpha, ok := splitHex(color)
	if !ok {
		return color
	}
	if alpha == "" {
		if _, curAlpha, ok := splitHex(cur); ok {
			alpha = curAlpha
		}
	}
	if alpha == "" {
		alpha = "ff"
	}
	return rgb + alpha
}

// withAlpha rewrites the trailing two hex digits of an 8-hex colour with
// round(alpha*255), leaving the RGB digits untouched. It reports false for
// colours that are not hex, such as CSS names or rgba() strings.
func withAlpha(cur string, alpha float64) (string, bool) {
	if !strings.HasPrefix(cur, "#") || (len(cur) != 7 && len(cur) != 9) {
		return cur, false
	}
	if _, _, ok := splitHex(cur); !ok {
		return cur, false
	}
	alpha = math.Max(0, math.Min(1, alpha))
	return cur[:7] + fmt.Sprintf("%02x", int(math.Round(alpha*255))), true
}
