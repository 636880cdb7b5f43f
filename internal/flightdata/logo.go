package flightdata

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// DefaultLogoBaseURL serves airline logotypes keyed by "<IATA>_<ICAO>.png".
const DefaultLogoBaseURL = "https://images.flightradar24.com/assets/airlines/logotypes"

// Banner dimensions the display's logo zone expects. All resizing happens
// here, outside the compositor.
const (
	bannerWidth  = 64
	bannerHeight = 20
)

// LogoCache downloads airline logos once and keeps them on disk, pre-sized
// for the banner. The compositor only ever reads the returned paths.
type LogoCache struct {
	dir        string
	baseURL    string
	background color.RGBA
	httpClient *http.Client
}

func NewLogoCache(dir, baseURL string, background color.RGBA, httpClient *http.Client) (*LogoCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create logo directory: %w", err)
	}
	return &LogoCache{
		dir:        dir,
		baseURL:    baseURL,
		background: background,
		httpClient: httpClient,
	}, nil
}

// Path returns the on-disk path of the banner-sized logo for an airline,
// downloading and resizing it on first use. Empty return means no logo is
// available; that is a degraded display, not an error the caller must act on.
func (lc *LogoCache) Path(ctx context.Context, iata, icao string) string {
	base := safeFileBase(iata)
	if base == "" {
		base = safeFileBase(icao)
	}
	if base == "" {
		return ""
	}

	path := filepath.Join(lc.dir, base+".png")
	if _, err := os.Stat(path); err == nil {
		return path
	}

	if err := lc.download(ctx, iata, icao, path); err != nil {
		slog.Warn("Airline logo unavailable", "iata", iata, "icao", icao, "error", err)
		return ""
	}
	return path
}

func (lc *LogoCache) download(ctx context.Context, iata, icao, path string) error {
	url := fmt.Sprintf("%s/%s_%s.png", lc.baseURL, iata, icao)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := lc.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch logo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("logo server returned status %d", resp.StatusCode)
	}

	src, _, err := image.Decode(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to decode logo: %w", err)
	}

	banner := resizeToBanner(src, lc.background)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create logo file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, banner); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write logo file: %w", err)
	}
	return nil
}

// resizeToBanner scales src to fit the banner while keeping its aspect
// ratio, centered and flattened onto the display background so transparency
// does not halo on the matrix.
func resizeToBanner(src image.Image, background color.RGBA) *image.RGBA {
	banner := image.NewRGBA(image.Rect(0, 0, bannerWidth, bannerHeight))
	xdraw.Draw(banner, banner.Bounds(), &image.Uniform{C: background}, image.Point{}, xdraw.Src)

	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return banner
	}

	scale := float64(bannerWidth) / float64(sb.Dx())
	if s := float64(bannerHeight) / float64(sb.Dy()); s < scale {
		scale = s
	}
	w := int(float64(sb.Dx()) * scale)
	h := int(float64(sb.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	x := (bannerWidth - w) / 2
	y := (bannerHeight - h) / 2
	dst := image.Rect(x, y, x+w, y+h)
	xdraw.CatmullRom.Scale(banner, dst, src, sb, xdraw.Over, nil)

	return banner
}

// safeFileBase strips anything that does not belong in a cache filename.
func safeFileBase(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
