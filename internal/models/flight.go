package models

// FlightRecord is the normalized view of one aircraft as returned by the
// flight data fetcher. ICAO24 is the only field the rest of the system
// relies on being present; everything else may be missing and is rendered
// with placeholders by the display layer.
type FlightRecord struct {
	ICAO24       string // 24-bit transponder address, hex (e.g. "3C6444")
	Callsign     string
	FlightNumber string // commercial flight number (e.g. "FR2263")
	Registration string // tail number (e.g. "D-ABCD")
	AircraftType string // ICAO type designator (e.g. "A320")
	Airline      string // airline display name
	AirlineIATA  string
	AirlineICAO  string
	Origin       string // origin airport IATA code
	Destination  string // destination airport IATA code
	DestICAO     string // destination airport ICAO code, used for METAR lookup

	Latitude  float64
	Longitude float64

	// Position fields straight off the transponder. nil means the feed did
	// not report a value, which is distinct from zero (an aircraft on the
	// ground legitimately reports altitude 0).
	AltitudeFt    *int
	GroundSpeedKt *int
	HeadingDeg    *int

	// LogoPath points at a pre-sized logo PNG in the on-disk cache, empty
	// when no logo is available. The compositor reads it and never writes.
	LogoPath string

	// DestinationMETAR carries the latest weather report for the
	// destination airport, nil when unavailable.
	DestinationMETAR *METAR
}

// METAR is one routine aviation weather report.
type METAR struct {
	Raw       string // the report itself (e.g. "EDDB 301020Z 27008KT ...")
	Timestamp string // observation time line as published by the NOAA feed
	Station   string // reporting station ICAO code
}

// IntPtr is a convenience for building records with optional numeric fields.
func IntPtr(v int) *int {
	return &v
}
