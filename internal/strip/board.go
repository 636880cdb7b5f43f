package strip

import (
	"fmt"

	"flightstrip/internal/models"
)

// Field caps keep every value inside the canvas without measuring at render
// time. Anything longer is truncated, never wrapped.
const (
	maxAirportLen = 3
	maxFlightLen  = 7
	maxTypeLen    = 4
	maxRegLen     = 7
	maxAirlineLen = 10
)

// InfoPage is one departure-board page: two label/value rows shown together
// for a contiguous slice of the animation.
type InfoPage struct {
	Upper BoardRow
	Lower BoardRow
}

// BoardRow is a single "LABEL VALUE" line.
type BoardRow struct {
	Label string
	Value string
}

// FormatFlightLevel renders altitude as a flight level code. Below 1000 ft
// (or unknown) the aircraft reads as on the ground.
func FormatFlightLevel(altitudeFt *int) string {
	if altitudeFt == nil || *altitudeFt < 1000 {
		return "GND"
	}
	return fmt.Sprintf("FL%03d", *altitudeFt/100)
}

// FormatSpeed renders ground speed in knots, "---KT" when unknown.
func FormatSpeed(speedKt *int) string {
	if speedKt == nil {
		return "---KT"
	}
	return fmt.Sprintf("%dKT", *speedKt)
}

// FormatHeading renders a heading as zero-padded degrees, "---" when unknown.
func FormatHeading(headingDeg *int) string {
	if headingDeg == nil {
		return "---"
	}
	return fmt.Sprintf("%03d", *headingDeg)
}

// BuildPages derives the fixed three-page rotation for one flight. The page
// set is frozen at build time; absent fields appear as placeholders so they
// cannot be mistaken for real data.
func BuildPages(rec *models.FlightRecord) []InfoPage {
	return []InfoPage{
		{
			Upper: BoardRow{Label: "FLT", Value: clip(orPlaceholder(rec.FlightNumber, "----"), maxFlightLen)},
			Lower: BoardRow{Label: "ALT", Value: FormatFlightLevel(rec.AltitudeFt)},
		},
		{
			Upper: BoardRow{Label: "TYPE", Value: clip(orPlaceholder(rec.AircraftType, "----"), maxTypeLen)},
			Lower: BoardRow{Label: "REG", Value: clip(orPlaceholder(rec.Registration, "------"), maxRegLen)},
		},
		{
			Upper: BoardRow{Label: "SPD", Value: FormatSpeed(rec.GroundSpeedKt)},
			Lower: BoardRow{Label: "HDG", Value: FormatHeading(rec.HeadingDeg)},
		},
	}
}

// PageIndex maps a frame index to its departure-board page. Pages get equal
// contiguous slices of the animation; integer truncation hands any remainder
// frames to the last page.
func PageIndex(frame, totalFrames, pageCount int) int {
	framesPerPage := totalFrames / pageCount
	idx := frame / framesPerPage
	if idx > pageCount-1 {
		idx = pageCount - 1
	}
	return idx
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
