package selection

import (
	"fmt"
	"net/url"
)

// DefaultPopupWidth is the approximate rendered width of the action popup.
const DefaultPopupWidth = 240

// popupGap is the vertical gap between the selection box and the popup.
const popupGap = 10

// Point is a position in viewport coordinates.
type Point struct {
	X float64
	Y float64
}

// ClampX keeps the popup's horizontal center within
// [popupWidth/2, viewportWidth - popupWidth/2] so it never renders
// off-screen.
func ClampX(x, popupWidth, viewportWidth float64) float64 {
	minX := popupWidth / 2
	maxX := viewportWidth - popupWidth/2
	if x < minX {
		return minX
	}
	if x > maxX {
		return maxX
	}
	return x
}

// PopupPosition computes where the popup anchors for a selection: centered
// horizontally over the selection (clamped to the viewport), fixed just
// above the selection's bounding box.
func PopupPosition(box Box, popupWidth, viewportWidth float64) Point {
	return Point{
		X: ClampX(box.Left+box.Width/2, popupWidth, viewportWidth),
		Y: box.Top - popupGap,
	}
}

// LookupURL builds the definition-search URL for the "Look up" action.
func LookupURL(text string) string {
	return fmt.Sprintf("https://www.google.com/search?q=%s", url.QueryEscape("define "+text))
}
