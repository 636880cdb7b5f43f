package strip

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"
	"time"

	"flightstrip/internal/models"
)

// Animation is one pre-rendered loop: a fixed number of full-canvas frames
// plus the duration each frame is displayed. The device owns looping; the
// compositor never re-renders a running animation.
type Animation struct {
	Frames        []*image.RGBA
	FrameDuration time.Duration
}

// Builder turns one flight record into a complete animation. It performs no
// I/O beyond reading the record's logo file and holds no mutable state:
// building the same record twice yields bit-identical frames.
type Builder struct {
	layout        Layout
	palette       Palette
	frameDuration time.Duration
}

func NewBuilder(layout Layout, palette Palette, frameDuration time.Duration) *Builder {
	return &Builder{
		layout:        layout,
		palette:       palette,
		frameDuration: frameDuration,
	}
}

// Build renders the full animation loop for rec. The frame count equals one
// airplane traversal of the route window, and the departure-board rotation
// is driven off the same clock. On any failure no frames are returned; a
// partial animation must never reach the device.
func (b *Builder) Build(rec *models.FlightRecord) (*Animation, error) {
	logo, err := loadLogo(rec.LogoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build animation: %w", err)
	}

	l := b.layout
	origin := clip(orPlaceholder(rec.Origin, "---"), maxAirportLen)
	destination := clip(orPlaceholder(rec.Destination, "---"), maxAirportLen)
	pages := BuildPages(rec)
	totalFrames := CycleLength(l.RouteStart, l.RouteEnd)

	frames := make([]*image.RGBA, 0, totalFrames)
	for i := 0; i < totalFrames; i++ {
		frame := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
		fillRect(frame, 0, 0, l.Width, l.Height, b.palette.Background)

		b.drawTop(frame, logo, rec.Airline, origin, destination)

		planeX := PlaneX(i, l.RouteStart, l.RouteEnd)
		DrawPlane(frame, planeX, l.PlaneY, l.RouteStart, l.RouteEnd, b.palette.Plane)

		page := pages[PageIndex(i, totalFrames, len(pages))]
		b.drawInfoPage(frame, page)

		frames = append(frames, frame)
	}

	return &Animation{Frames: frames, FrameDuration: b.frameDuration}, nil
}

// drawTop draws the logo banner (or the centered airline name when no logo
// is cached), the separator under it, and the route box.
func (b *Builder) drawTop(frame *image.RGBA, logo image.Image, airline, origin, destination string) {
	l, p := b.layout, b.palette

	if logo != nil {
		banner := image.Rect(0, 0, l.Width, l.LogoHeight)
		draw.Draw(frame, banner, logo, logo.Bounds().Min, draw.Over)
	} else if airline != "" {
		name := clip(airline, maxAirlineLen)
		DrawText(frame, name, CenterX(l.Width, name), 7, p.Plane)
	}

	l.drawSeparator(frame, l.LogoSepY, true, p.Separator)
	l.drawRouteBox(frame, origin, destination, p)
}

// drawInfoPage draws the departure-board area: background, separators and
// the two centered label/value rows of the current page.
func (b *Builder) drawInfoPage(frame *image.RGBA, page InfoPage) {
	l, p := b.layout, b.palette

	fillRect(frame, 0, l.InfoBoxY, l.Width, l.Height-l.InfoBoxY, p.Box)
	l.drawSeparator(frame, l.InfoSepY, true, p.Separator)
	l.drawLabelValue(frame, page.Upper.Label, page.Upper.Value, l.UpperRowY, p)
	l.drawSeparator(frame, l.RowSepY, true, p.Separator)
	l.drawLabelValue(frame, page.Lower.Label, page.Lower.Value, l.LowerRowY, p)
}

// loadLogo reads the pre-sized banner image from the cache. An empty path
// means no logo and is not an error; an unreadable or undecodable file is,
// because silently dropping the banner would ship a degraded frame.
func loadLogo(path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open logo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode logo %s: %w", path, err)
	}
	return img, nil
}
