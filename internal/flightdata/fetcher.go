package flightdata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"flightstrip/internal/models"
)

// DefaultFeedBaseURL is the flightradar24 live feed endpoint.
const DefaultFeedBaseURL = "https://data-live.flightradar24.com"

// Live feed entries are positional arrays. Only the indexes the display
// needs are named here.
const (
	feedIdxICAO24       = 0
	feedIdxLatitude     = 1
	feedIdxLongitude    = 2
	feedIdxHeading      = 3
	feedIdxAltitude     = 4
	feedIdxGroundSpeed  = 5
	feedIdxTypeCode     = 8
	feedIdxRegistration = 9
	feedIdxOrigin       = 11
	feedIdxDestination  = 12
	feedIdxFlightNum    = 13
	feedIdxCallsign     = 16
	feedIdxAirlineICAO  = 18
)

// Fetcher resolves the aircraft closest to a point from the flightradar24
// live feed and normalizes it into a FlightRecord, attaching flight details,
// destination METAR and a cached airline logo where available.
type Fetcher struct {
	httpClient   *http.Client
	feedBaseURL  string
	metarBaseURL string
	logos        *LogoCache
	radiusKm     float64
}

// NewFetcher creates a fetcher searching within radiusKm of the query point.
// logos may be nil to disable the logo pipeline.
func NewFetcher(radiusKm float64, logos *LogoCache) *Fetcher {
	return &Fetcher{
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		feedBaseURL:  DefaultFeedBaseURL,
		metarBaseURL: DefaultMETARBaseURL,
		logos:        logos,
		radiusKm:     radiusKm,
	}
}

// feedEntry is one aircraft from the live feed, plus the feed key used to
// request its details.
type feedEntry struct {
	id           string
	icao24       string
	latitude     float64
	longitude    float64
	heading      *int
	altitudeFt   *int
	speedKt      *int
	typeCode     string
	registration string
	origin       string
	destination  string
	flightNum    string
	callsign     string
	airlineICAO  string
}

// ClosestFlight returns the nearest aircraft to (lat, lon) that carries an
// airline code, or nil when nothing suitable is in the air nearby.
func (f *Fetcher) ClosestFlight(ctx context.Context, lat, lon float64) (*models.FlightRecord, error) {
	entries, err := f.fetchFeed(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	var closest *feedEntry
	minDist := 0.0
	for i := range entries {
		e := &entries[i]
		if e.airlineICAO == "" {
			// GA traffic and gliders have no airline branding to show.
			continue
		}
		dist := Haversine(lat, lon, e.latitude, e.longitude)
		if closest == nil || dist < minDist {
			closest = e
			minDist = dist
		}
	}
	if closest == nil {
		return nil, nil
	}

	rec := &models.FlightRecord{
		ICAO24:        closest.icao24,
		Callsign:      closest.callsign,
		FlightNumber:  closest.flightNum,
		Registration:  closest.registration,
		AircraftType:  closest.typeCode,
		AirlineICAO:   closest.airlineICAO,
		Origin:        closest.origin,
		Destination:   closest.destination,
		Latitude:      closest.latitude,
		Longitude:     closest.longitude,
		AltitudeFt:    closest.altitudeFt,
		GroundSpeedKt: closest.speedKt,
		HeadingDeg:    closest.heading,
	}

	// Details carry the airline name and airport ICAO codes the feed
	// array omits. Losing them degrades the strip but is not fatal.
	if err := f.attachDetails(ctx, closest.id, rec); err != nil {
		slog.Warn("Flight details unavailable, using feed data only",
			"flight_id", closest.id, "error", err)
	}

	if rec.DestICAO != "" {
		metar, err := f.FetchMETAR(ctx, rec.DestICAO)
		if err != nil {
			slog.Debug("Destination METAR unavailable", "station", rec.DestICAO, "error", err)
		} else {
			rec.DestinationMETAR = metar
		}
	}

	if f.logos != nil {
		rec.LogoPath = f.logos.Path(ctx, rec.AirlineIATA, rec.AirlineICAO)
	}

	slog.Debug("Resolved closest flight",
		"icao24", rec.ICAO24,
		"flight", rec.FlightNumber,
		"distance_km", fmt.Sprintf("%.1f", minDist),
	)
	return rec, nil
}

// fetchFeed queries the live feed for everything inside the search box.
func (f *Fetcher) fetchFeed(ctx context.Context, lat, lon float64) ([]feedEntry, error) {
	north, south, west, east := boundingBox(lat, lon, f.radiusKm)
	url := fmt.Sprintf("%s/zones/fcgi/feed.js?bounds=%.3f,%.3f,%.3f,%.3f&faa=1&satellite=1&mlat=1&flarm=1&adsb=1&gnd=0&air=1&vehicles=0&estimated=1&gliders=0&stats=0",
		f.feedBaseURL, north, south, west, east)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query live feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("live feed returned status %d", resp.StatusCode)
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	var entries []feedEntry
	for id, msg := range raw {
		// Non-aircraft keys (full_count, version, stats) are scalars or
		// objects and simply fail the array unmarshal.
		var fields []any
		if err := json.Unmarshal(msg, &fields); err != nil {
			continue
		}
		if len(fields) <= feedIdxCallsign {
			continue
		}
		entries = append(entries, feedEntry{
			id:           id,
			icao24:       fieldString(fields, feedIdxICAO24),
			latitude:     fieldFloat(fields, feedIdxLatitude),
			longitude:    fieldFloat(fields, feedIdxLongitude),
			heading:      fieldInt(fields, feedIdxHeading),
			altitudeFt:   fieldInt(fields, feedIdxAltitude),
			speedKt:      fieldInt(fields, feedIdxGroundSpeed),
			typeCode:     fieldString(fields, feedIdxTypeCode),
			registration: fieldString(fields, feedIdxRegistration),
			origin:       fieldString(fields, feedIdxOrigin),
			destination:  fieldString(fields, feedIdxDestination),
			flightNum:    fieldString(fields, feedIdxFlightNum),
			callsign:     fieldString(fields, feedIdxCallsign),
			airlineICAO:  fieldString(fields, feedIdxAirlineICAO),
		})
	}
	return entries, nil
}

// detailsResponse mirrors the parts of the clickhandler payload the display
// uses.
type detailsResponse struct {
	Identification struct {
		Number struct {
			Default string `json:"default"`
		} `json:"number"`
		Callsign string `json:"callsign"`
	} `json:"identification"`
	Aircraft struct {
		Model struct {
			Code string `json:"code"`
			Text string `json:"text"`
		} `json:"model"`
		Registration string `json:"registration"`
	} `json:"aircraft"`
	Airline struct {
		Name string `json:"name"`
		Code struct {
			IATA string `json:"iata"`
			ICAO string `json:"icao"`
		} `json:"code"`
	} `json:"airline"`
	Airport struct {
		Origin *struct {
			Code struct {
				IATA string `json:"iata"`
				ICAO string `json:"icao"`
			} `json:"code"`
		} `json:"origin"`
		Destination *struct {
			Code struct {
				IATA string `json:"iata"`
				ICAO string `json:"icao"`
			} `json:"code"`
		} `json:"destination"`
	} `json:"airport"`
}

// attachDetails enriches rec with the details payload for one feed entry,
// preferring detail fields over the terser feed values.
func (f *Fetcher) attachDetails(ctx context.Context, flightID string, rec *models.FlightRecord) error {
	url := fmt.Sprintf("%s/clickhandler/?flight=%s&version=1.5", f.feedBaseURL, flightID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create details request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to query flight details: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("details endpoint returned status %d", resp.StatusCode)
	}

	var details detailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return fmt.Errorf("failed to decode flight details: %w", err)
	}

	if v := details.Identification.Number.Default; v != "" {
		rec.FlightNumber = v
	}
	if v := details.Identification.Callsign; v != "" {
		rec.Callsign = v
	}
	if v := details.Aircraft.Model.Code; v != "" {
		rec.AircraftType = v
	}
	if v := details.Aircraft.Registration; v != "" {
		rec.Registration = v
	}
	rec.Airline = details.Airline.Name
	rec.AirlineIATA = details.Airline.Code.IATA
	if v := details.Airline.Code.ICAO; v != "" {
		rec.AirlineICAO = v
	}
	if details.Airport.Origin != nil && details.Airport.Origin.Code.IATA != "" {
		rec.Origin = details.Airport.Origin.Code.IATA
	}
	if details.Airport.Destination != nil {
		if v := details.Airport.Destination.Code.IATA; v != "" {
			rec.Destination = v
		}
		rec.DestICAO = details.Airport.Destination.Code.ICAO
	}
	return nil
}

func fieldString(fields []any, idx int) string {
	if idx >= len(fields) {
		return ""
	}
	s, _ := fields[idx].(string)
	return s
}

func fieldFloat(fields []any, idx int) float64 {
	if idx >= len(fields) {
		return 0
	}
	v, _ := fields[idx].(float64)
	return v
}

func fieldInt(fields []any, idx int) *int {
	if idx >= len(fields) {
		return nil
	}
	v, ok := fields[idx].(float64)
	if !ok {
		return nil
	}
	i := int(v)
	return &i
}
