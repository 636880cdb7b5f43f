package strip

import (
	"testing"

	"flightstrip/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFlightLevel(t *testing.T) {
	assert.Equal(t, "GND", FormatFlightLevel(nil))
	assert.Equal(t, "GND", FormatFlightLevel(models.IntPtr(0)))
	assert.Equal(t, "GND", FormatFlightLevel(models.IntPtr(999)))
	assert.Equal(t, "FL010", FormatFlightLevel(models.IntPtr(1000)))
	assert.Equal(t, "FL035", FormatFlightLevel(models.IntPtr(3500)))
	assert.Equal(t, "FL034", FormatFlightLevel(models.IntPtr(3400)))
	assert.Equal(t, "FL100", FormatFlightLevel(models.IntPtr(10000)))
	assert.Equal(t, "FL350", FormatFlightLevel(models.IntPtr(35075)))
}

func TestFormatSpeed(t *testing.T) {
	assert.Equal(t, "---KT", FormatSpeed(nil))
	assert.Equal(t, "0KT", FormatSpeed(models.IntPtr(0)))
	assert.Equal(t, "250KT", FormatSpeed(models.IntPtr(250)))
}

func TestFormatHeading(t *testing.T) {
	assert.Equal(t, "---", FormatHeading(nil))
	assert.Equal(t, "007", FormatHeading(models.IntPtr(7)))
	assert.Equal(t, "090", FormatHeading(models.IntPtr(90)))
	assert.Equal(t, "270", FormatHeading(models.IntPtr(270)))
}

func TestBuildPages(t *testing.T) {
	rec := &models.FlightRecord{
		ICAO24:        "3C6444",
		FlightNumber:  "FR2263",
		AircraftType:  "A320",
		Registration:  "D-ABCD",
		AltitudeFt:    models.IntPtr(3400),
		GroundSpeedKt: models.IntPtr(450),
		HeadingDeg:    models.IntPtr(90),
	}

	pages := BuildPages(rec)
	require.Len(t, pages, 3)

	assert.Equal(t, BoardRow{Label: "FLT", Value: "FR2263"}, pages[0].Upper)
	assert.Equal(t, BoardRow{Label: "ALT", Value: "FL034"}, pages[0].Lower)
	assert.Equal(t, BoardRow{Label: "TYPE", Value: "A320"}, pages[1].Upper)
	assert.Equal(t, BoardRow{Label: "REG", Value: "D-ABCD"}, pages[1].Lower)
	assert.Equal(t, BoardRow{Label: "SPD", Value: "450KT"}, pages[2].Upper)
	assert.Equal(t, BoardRow{Label: "HDG", Value: "090"}, pages[2].Lower)
}

func TestBuildPages_Placeholders(t *testing.T) {
	pages := BuildPages(&models.FlightRecord{ICAO24: "3C6444"})
	require.Len(t, pages, 3)

	assert.Equal(t, "----", pages[0].Upper.Value)
	assert.Equal(t, "GND", pages[0].Lower.Value)
	assert.Equal(t, "----", pages[1].Upper.Value)
	assert.Equal(t, "------", pages[1].Lower.Value)
	assert.Equal(t, "---KT", pages[2].Upper.Value)
	assert.Equal(t, "---", pages[2].Lower.Value)
}

func TestBuildPages_Truncation(t *testing.T) {
	rec := &models.FlightRecord{
		FlightNumber: "LONGFLIGHT99",
		AircraftType: "B77W9",
		Registration: "N1234567890",
	}

	pages := BuildPages(rec)
	assert.Equal(t, "LONGFLI", pages[0].Upper.Value)
	assert.Equal(t, "B77W", pages[1].Upper.Value)
	assert.Equal(t, "N123456", pages[1].Lower.Value)
}

func TestPageIndex(t *testing.T) {
	// 27 frames over 3 pages: 9 frames each.
	assert.Equal(t, 0, PageIndex(0, 27, 3))
	assert.Equal(t, 0, PageIndex(8, 27, 3))
	assert.Equal(t, 1, PageIndex(9, 27, 3))
	assert.Equal(t, 1, PageIndex(17, 27, 3))
	assert.Equal(t, 2, PageIndex(18, 27, 3))
	assert.Equal(t, 2, PageIndex(26, 27, 3))
}

func TestPageIndex_RemainderGoesToLastPage(t *testing.T) {
	// 29 frames over 3 pages: frames_per_page = 9, so frames 27 and 28
	// overflow past page arithmetic and clamp onto the last page.
	assert.Equal(t, 2, PageIndex(27, 29, 3))
	assert.Equal(t, 2, PageIndex(28, 29, 3))
}
