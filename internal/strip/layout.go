package strip

import (
	"image"
	"image/color"
	"image/draw"
)

// Layout maps the canvas into the zones of the flight strip: a logo banner on
// top, an 11-row route box with the animated airplane, and a departure board
// area below. All values are pixel rows/columns on the canvas.
type Layout struct {
	Width  int
	Height int

	LogoHeight int // logo banner occupies rows [0, LogoHeight)
	LogoSepY   int // dashed separator under the banner

	RouteBoxY  int // route box top row
	RouteBoxH  int
	RouteTextY int // baseline row for origin/destination codes
	RouteLineY int // dashed route line row
	RouteStart int // airplane window [RouteStart, RouteEnd)
	RouteEnd   int
	PlaneY     int // airplane sprite anchor row

	InfoSepY  int // dashed separator above the info area
	InfoBoxY  int // info background from here to the bottom edge
	UpperRowY int
	RowSepY   int // dashed separator between the two info rows
	LowerRowY int
}

// DefaultLayout is the 64x64 flight strip layout.
func DefaultLayout() Layout {
	return Layout{
		Width:      64,
		Height:     64,
		LogoHeight: 20,
		LogoSepY:   20,
		RouteBoxY:  21,
		RouteBoxH:  11,
		RouteTextY: 20,
		RouteLineY: 26,
		RouteStart: 21,
		RouteEnd:   43,
		PlaneY:     24,
		InfoSepY:   32,
		InfoBoxY:   33,
		UpperRowY:  34,
		RowSepY:    48,
		LowerRowY:  50,
	}
}

// MeasureText estimates the rendered width of s in pixels under the
// fixed-width glyph model: CharWidth per character minus the trailing
// spacing pixel, never less than 1. All centering math is built on this
// estimate, so it must stay exact.
func MeasureText(s string) int {
	return max(1, len(s)*CharWidth-1)
}

// CenterX returns the x offset that centers s within a container of the
// given width, clamped at 0 (floor division).
func CenterX(width int, s string) int {
	return max(0, (width-MeasureText(s))/2)
}

// fillRect fills the w x h rectangle at (x, y), clipped to the image.
func fillRect(img *image.RGBA, x, y, w, h int, col color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(img.Bounds())
	draw.Draw(img, r, &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// drawSeparator draws a horizontal rule across the full canvas width.
// Dashed rules are 2-px dashes every 4 px, solid rules a single filled row.
func (l Layout) drawSeparator(img *image.RGBA, y int, dashed bool, col color.RGBA) {
	if !dashed {
		fillRect(img, 0, y, l.Width, 1, col)
		return
	}
	for x := 0; x < l.Width; x += 4 {
		fillRect(img, x, y, 2, 1, col)
	}
}

// drawRouteBox draws the route box background, the left/right aligned
// airport codes and the dashed route line between them.
func (l Layout) drawRouteBox(img *image.RGBA, origin, destination string, p Palette) {
	fillRect(img, 0, l.RouteBoxY, l.Width, l.RouteBoxH, p.Box)

	DrawText(img, origin, 2, l.RouteTextY, p.Text)
	DrawText(img, destination, l.Width-2-MeasureText(destination), l.RouteTextY, p.Text)

	for x := l.RouteStart; x < l.RouteEnd; x += 3 {
		fillRect(img, x, l.RouteLineY, 2, 1, p.RouteLine)
	}
}

// drawLabelValue draws one departure-board row: label in the muted label
// tone, value in the text tone, centered as one unit. The value starts one
// character cell after the label so the pair reads as "LABEL VALUE".
func (l Layout) drawLabelValue(img *image.RGBA, label, value string, y int, p Palette) {
	full := label + " " + value
	x := CenterX(l.Width, full)
	DrawText(img, label, x, y, p.Label)
	DrawText(img, value, x+(len(label)+1)*CharWidth, y, p.Text)
}
