package flightdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"flightstrip/internal/models"
)

// DefaultMETARBaseURL is the NOAA text feed of current station reports.
const DefaultMETARBaseURL = "https://tgftp.nws.noaa.gov/data/observations/metar/stations"

// FetchMETAR retrieves the latest report for an airport ICAO code. The feed
// serves one small text file per station: an observation timestamp line
// followed by the raw report.
func (f *Fetcher) FetchMETAR(ctx context.Context, icao string) (*models.METAR, error) {
	icao = strings.ToUpper(strings.TrimSpace(icao))
	if icao == "" {
		return nil, fmt.Errorf("empty station code")
	}

	url := fmt.Sprintf("%s/%s.TXT", f.metarBaseURL, icao)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch METAR for %s: %w", icao, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("METAR feed returned status %d for %s", resp.StatusCode, icao)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read METAR body: %w", err)
	}

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("empty METAR response for %s", icao)
	}

	m := &models.METAR{Station: icao}
	if len(lines) >= 2 {
		m.Timestamp = strings.TrimSpace(lines[0])
		m.Raw = strings.TrimSpace(lines[1])
	} else {
		m.Raw = strings.TrimSpace(lines[0])
	}
	return m, nil
}
