package strip

import (
	"image"
	"image/color"
)

// PlaneWidth is the airplane sprite width in pixels.
const PlaneWidth = 5

// planeSprite is the 5x5 side-view airplane as offsets from the sprite
// anchor: a 5-px fuselage, a 5-px wing column through its center and a 3-px
// tail stub at the back.
//
//	  #
//	# #
//	#####
//	# #
//	  #
var planeSprite = []image.Point{
	{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2}, // fuselage
	{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 3}, {X: 2, Y: 4}, // wings
	{X: 0, Y: 1}, {X: 0, Y: 3}, // tail
}

// CycleLength is the number of frames for one full traversal of the route
// window: the sprite enters fully from the left and exits fully on the
// right, so the travel distance is the window width plus the sprite width.
func CycleLength(routeStart, routeEnd int) int {
	return (routeEnd - routeStart) + PlaneWidth
}

// PlaneX returns the sprite anchor column for the given frame index. The
// position is periodic with period CycleLength and starts with the sprite
// just off the left edge of the window.
func PlaneX(frame, routeStart, routeEnd int) int {
	return routeStart - PlaneWidth + frame%CycleLength(routeStart, routeEnd)
}

// DrawPlane draws the airplane sprite anchored at (x, y). Each sprite pixel
// clips independently against the [clipLeft, clipRight) column window, so
// the sprite emerges through the window edge pixel by pixel instead of
// popping in whole.
func DrawPlane(img *image.RGBA, x, y, clipLeft, clipRight int, col color.RGBA) {
	for _, p := range planeSprite {
		px := x + p.X
		if clipLeft <= px && px < clipRight {
			setPixel(img, px, y+p.Y, col)
		}
	}
}
