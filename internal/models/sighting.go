package models

import "time"

// Sighting is one row in the sighting log: a flight the display switched to.
// Position fields are captured at switch time and stored as reported, with
// NULL for values the feed did not provide.
type Sighting struct {
	ICAO24        string
	Callsign      string
	FlightNumber  string
	Registration  string
	AircraftType  string
	Airline       string
	Origin        string
	Destination   string
	AltitudeFt    *int
	GroundSpeedKt *int
	HeadingDeg    *int
	SeenAt        time.Time
}

// SightingFromRecord captures a flight record as a sighting at the given time.
func SightingFromRecord(rec *FlightRecord, at time.Time) *Sighting {
	return &Sighting{
		ICAO24:        rec.ICAO24,
		Callsign:      rec.Callsign,
		FlightNumber:  rec.FlightNumber,
		Registration:  rec.Registration,
		AircraftType:  rec.AircraftType,
		Airline:       rec.Airline,
		Origin:        rec.Origin,
		Destination:   rec.Destination,
		AltitudeFt:    rec.AltitudeFt,
		GroundSpeedKt: rec.GroundSpeedKt,
		HeadingDeg:    rec.HeadingDeg,
		SeenAt:        at,
	}
}
