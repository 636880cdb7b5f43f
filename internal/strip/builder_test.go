package strip

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"flightstrip/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() *models.FlightRecord {
	return &models.FlightRecord{
		ICAO24:        "3C6444",
		FlightNumber:  "FR2263",
		AircraftType:  "A320",
		Registration:  "D-ABCD",
		Airline:       "Ryanair",
		Origin:        "BER",
		Destination:   "STN",
		AltitudeFt:    models.IntPtr(3400),
		GroundSpeedKt: models.IntPtr(450),
		HeadingDeg:    models.IntPtr(90),
	}
}

func newTestBuilder() *Builder {
	return NewBuilder(DefaultLayout(), DefaultPalette(), 300*time.Millisecond)
}

func TestBuild_FrameCountAndDuration(t *testing.T) {
	anim, err := newTestBuilder().Build(testRecord())
	require.NoError(t, err)

	assert.Len(t, anim.Frames, 27)
	assert.Equal(t, 300*time.Millisecond, anim.FrameDuration)
	for _, f := range anim.Frames {
		assert.Equal(t, image.Rect(0, 0, 64, 64), f.Bounds())
	}
}

// bottomZone returns the raw pixels of the departure-board area so frames
// can be compared page by page.
func bottomZone(f *image.RGBA, l Layout) []byte {
	top := l.InfoSepY
	return append([]byte(nil), f.Pix[f.PixOffset(0, top):]...)
}

func TestBuild_PageRotation(t *testing.T) {
	l := DefaultLayout()
	anim, err := newTestBuilder().Build(testRecord())
	require.NoError(t, err)

	// Every frame within a page slice shows the same board content.
	for i := 1; i < 9; i++ {
		assert.Equal(t, bottomZone(anim.Frames[0], l), bottomZone(anim.Frames[i], l), "frame %d", i)
	}
	for i := 10; i < 18; i++ {
		assert.Equal(t, bottomZone(anim.Frames[9], l), bottomZone(anim.Frames[i], l), "frame %d", i)
	}
	for i := 19; i < 27; i++ {
		assert.Equal(t, bottomZone(anim.Frames[18], l), bottomZone(anim.Frames[i], l), "frame %d", i)
	}

	// And the three pages are actually distinct.
	assert.NotEqual(t, bottomZone(anim.Frames[0], l), bottomZone(anim.Frames[9], l))
	assert.NotEqual(t, bottomZone(anim.Frames[9], l), bottomZone(anim.Frames[18], l))
	assert.NotEqual(t, bottomZone(anim.Frames[0], l), bottomZone(anim.Frames[18], l))
}

func TestBuild_PageContent(t *testing.T) {
	l := DefaultLayout()
	p := DefaultPalette()
	anim, err := newTestBuilder().Build(testRecord())
	require.NoError(t, err)

	// Render each expected page onto a blank canvas and compare the two
	// board rows pixel for pixel.
	expectations := []struct {
		frame int
		page  InfoPage
	}{
		{0, InfoPage{Upper: BoardRow{"FLT", "FR2263"}, Lower: BoardRow{"ALT", "FL034"}}},
		{9, InfoPage{Upper: BoardRow{"TYPE", "A320"}, Lower: BoardRow{"REG", "D-ABCD"}}},
		{18, InfoPage{Upper: BoardRow{"SPD", "450KT"}, Lower: BoardRow{"HDG", "090"}}},
	}

	for _, tc := range expectations {
		want := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
		fillRect(want, 0, 0, l.Width, l.Height, p.Background)
		fillRect(want, 0, l.InfoBoxY, l.Width, l.Height-l.InfoBoxY, p.Box)
		l.drawSeparator(want, l.InfoSepY, true, p.Separator)
		l.drawLabelValue(want, tc.page.Upper.Label, tc.page.Upper.Value, l.UpperRowY, p)
		l.drawSeparator(want, l.RowSepY, true, p.Separator)
		l.drawLabelValue(want, tc.page.Lower.Label, tc.page.Lower.Value, l.LowerRowY, p)

		assert.Equal(t, bottomZone(want, l), bottomZone(anim.Frames[tc.frame], l), "frame %d", tc.frame)
	}
}

func TestBuild_PlaneMovesEveryFrame(t *testing.T) {
	anim, err := newTestBuilder().Build(testRecord())
	require.NoError(t, err)

	// The top zone differs between consecutive frames while the plane is
	// inside the window.
	l := DefaultLayout()
	topZone := func(f *image.RGBA) []byte {
		return append([]byte(nil), f.Pix[:f.PixOffset(0, l.InfoSepY)]...)
	}
	assert.NotEqual(t, topZone(anim.Frames[10]), topZone(anim.Frames[11]))
}

func TestBuild_Deterministic(t *testing.T) {
	b := newTestBuilder()
	rec := testRecord()

	first, err := b.Build(rec)
	require.NoError(t, err)
	second, err := b.Build(rec)
	require.NoError(t, err)

	require.Len(t, second.Frames, len(first.Frames))
	for i := range first.Frames {
		assert.Equal(t, first.Frames[i].Pix, second.Frames[i].Pix, "frame %d", i)
	}
}

func TestBuild_AllFieldsMissing(t *testing.T) {
	anim, err := newTestBuilder().Build(&models.FlightRecord{ICAO24: "3C6444"})
	require.NoError(t, err)
	assert.Len(t, anim.Frames, 27)
}

func TestBuild_WithLogo(t *testing.T) {
	dir := t.TempDir()
	logoPath := filepath.Join(dir, "FR.png")

	logo := image.NewRGBA(image.Rect(0, 0, 64, 20))
	fillRect(logo, 0, 0, 64, 20, color.RGBA{R: 0, G: 0, B: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, logo))
	require.NoError(t, os.WriteFile(logoPath, buf.Bytes(), 0o644))

	rec := testRecord()
	rec.LogoPath = logoPath

	anim, err := newTestBuilder().Build(rec)
	require.NoError(t, err)

	// Banner pixels come from the logo, not the airline name fallback.
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 200, A: 255}, anim.Frames[0].RGBAAt(5, 5))
}

func TestBuild_BadLogoFailsAtomically(t *testing.T) {
	dir := t.TempDir()
	logoPath := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(logoPath, []byte("not a png"), 0o644))

	rec := testRecord()
	rec.LogoPath = logoPath

	anim, err := newTestBuilder().Build(rec)
	assert.Error(t, err)
	assert.Nil(t, anim)
}
