package database

import (
	"database/sql"
	"fmt"

	"flightstrip/internal/models"
)

// SightingRepository stores the flights the display has shown. One row is
// written per aircraft change, so there is no need for batching here.
type SightingRepository interface {
	Insert(s *models.Sighting) error
	Recent(limit int) ([]*models.Sighting, error)
}

type sightingRepository struct {
	db *sql.DB
}

func NewSightingRepository(db *sql.DB) SightingRepository {
	return &sightingRepository{db: db}
}

func (r *sightingRepository) Insert(s *models.Sighting) error {
	query := `INSERT INTO sightings (
		icao24, callsign, flight_number, registration, aircraft_type,
		airline, origin, destination, altitude_ft, ground_speed_kt,
		heading_deg, seen_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		s.ICAO24,
		s.Callsign,
		s.FlightNumber,
		s.Registration,
		s.AircraftType,
		s.Airline,
		s.Origin,
		s.Destination,
		nullableInt(s.AltitudeFt),
		nullableInt(s.GroundSpeedKt),
		nullableInt(s.HeadingDeg),
		s.SeenAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sighting: %w", err)
	}
	return nil
}

// Recent returns the latest sightings, newest first.
func (r *sightingRepository) Recent(limit int) ([]*models.Sighting, error) {
	query := `SELECT icao24, callsign, flight_number, registration,
		aircraft_type, airline, origin, destination, altitude_ft,
		ground_speed_kt, heading_deg, seen_at
	FROM sightings ORDER BY seen_at DESC, id DESC LIMIT ?`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sightings: %w", err)
	}
	defer rows.Close()

	var sightings []*models.Sighting
	for rows.Next() {
		s := &models.Sighting{}
		var altitude, speed, heading sql.NullInt64
		if err := rows.Scan(
			&s.ICAO24,
			&s.Callsign,
			&s.FlightNumber,
			&s.Registration,
			&s.AircraftType,
			&s.Airline,
			&s.Origin,
			&s.Destination,
			&altitude,
			&speed,
			&heading,
			&s.SeenAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sighting: %w", err)
		}
		s.AltitudeFt = fromNullInt(altitude)
		s.GroundSpeedKt = fromNullInt(speed)
		s.HeadingDeg = fromNullInt(heading)
		sightings = append(sightings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sightings: %w", err)
	}
	return sightings, nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func fromNullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
