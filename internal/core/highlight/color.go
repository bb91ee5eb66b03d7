// Package highlight contains the pure business logic for highlight records.
package highlight

// Highlight colors. Anything outside this set normalizes to yellow.
const (
	ColorYellow = "yellow"
	ColorGreen  = "green"
	ColorBlue   = "blue"
	ColorPink   = "pink"
)

// validColors is the closed set of colors the subsystem accepts.
var validColors = map[string]bool{
	ColorYellow: true,
	ColorGreen:  true,
	ColorBlue:   true,
	ColorPink:   true,
}

// IsValidColor reports whether c is one of the accepted highlight colors.
func IsValidColor(c string) bool {
	return validColors[c]
}

// NormalizeColor maps an arbitrary color string onto the accepted set.
// Invalid or missing values become yellow rather than being rejected.
func NormalizeColor(c string) string {
	if validColors[c] {
		return c
	}
	return ColorYellow
}

// Colors returns the accepted colors in display order.
func Colors() []string {
	return []string{ColorYellow, ColorGreen, ColorBlue, ColorPink}
}
