package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"weather-helper/internal/weather"
)

const metnoUserAgent = "weather-helper/1.0"

// MetNoProvider fetches hourly forecasts from the met.no
// locationforecast API. It tries the complete endpoint first and falls
// back to the compact one when the complete response is too thin.
type MetNoProvider struct {
	name        string
	completeURL string
	compactURL  string
	httpCfg     HTTPClientConfig
	circuit     *gobreaker.CircuitBreaker
}

func NewMetNoProvider(client *http.Client) *MetNoProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "metno",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &MetNoProvider{
		name:        "metno",
		completeURL: "https://api.met.no/weatherapi/locationforecast/2.0/complete",
		compactURL:  "https://api.met.no/weatherapi/locationforecast/2.0/compact",
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
			// met.no asks clients to throttle themselves.
			Limiter: rate.NewLimiter(rate.Limit(2), 2),
		},
		circuit: cb,
	}
}

func (p *MetNoProvider) Name() string {
	return p.name
}

func (p *MetNoProvider) FetchHourly(ctx context.Context, loc weather.Location, days int) ([]weather.HourlyRecord, error) {
	body, err := p.get(ctx, p.completeURL, loc)
	if err == nil {
		records, perr := parseMetNoForecast(body)
		if perr == nil && len(records) >= 5 {
			return clipHorizon(records, days), nil
		}
	}

	// Fall back to the compact endpoint.
	body, err = p.get(ctx, p.compactURL, loc)
	if err != nil {
		return nil, err
	}
	records, err := parseMetNoForecast(body)
	if err != nil {
		return nil, err
	}
	return clipHorizon(records, days), nil
}

func (p *MetNoProvider) get(ctx context.Context, baseURL string, loc weather.Location) ([]byte, error) {
	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s?lat=%.4f&lon=%.4f", baseURL, loc.Lat, loc.Lon)
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", metnoUserAgent)
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

type metnoPeriod struct {
	Summary struct {
		SymbolCode string `json:"symbol_code"`
	} `json:"summary"`
	Details struct {
		PrecipitationAmount        *float64 `json:"precipitation_amount"`
		ProbabilityOfPrecipitation *float64 `json:"probability_of_precipitation"`
	} `json:"details"`
}

type metnoEntry struct {
	Time time.Time `json:"time"`
	Data struct {
		Instant struct {
			Details struct {
				AirTemperature    *float64 `json:"air_temperature"`
				WindSpeed         *float64 `json:"wind_speed"`
				CloudAreaFraction *float64 `json:"cloud_area_fraction"`
				RelativeHumidity  *float64 `json:"relative_humidity"`
			} `json:"details"`
		} `json:"instant"`
		Next1Hours *metnoPeriod `json:"next_1_hours"`
		Next6Hours *metnoPeriod `json:"next_6_hours"`
	} `json:"data"`
}

// parseMetNoForecast converts a locationforecast payload into hourly
// records. Precipitation comes from the next-1-hour details, falling
// back to next-6-hours; the symbol from whichever period supplied the
// precipitation.
func parseMetNoForecast(body []byte) ([]weather.HourlyRecord, error) {
	var payload struct {
		Properties struct {
			Timeseries []metnoEntry `json:"timeseries"`
		} `json:"properties"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding met.no payload: %w", err)
	}

	records := make([]weather.HourlyRecord, 0, len(payload.Properties.Timeseries))
	for _, entry := range payload.Properties.Timeseries {
		details := entry.Data.Instant.Details

		rec := weather.HourlyRecord{
			Time:        entry.Time.UTC(),
			Temperature: floatOrNaN(details.AirTemperature),
			WindSpeed:   floatOrNaN(details.WindSpeed),
			CloudCover:  floatOrNaN(details.CloudAreaFraction),
			Humidity:    details.RelativeHumidity,
		}

		period := entry.Data.Next1Hours
		if period == nil || period.Details.PrecipitationAmount == nil {
			if entry.Data.Next6Hours != nil {
				period = entry.Data.Next6Hours
			}
		}
		if period != nil {
			rec.PrecipAmount = period.Details.PrecipitationAmount
			rec.PrecipProb = period.Details.ProbabilityOfPrecipitation
			rec.Symbol = weather.NormalizeSymbol(period.Summary.SymbolCode)
		}

		records = append(records, rec)
	}

	return records, nil
}

// clipHorizon drops records beyond the requested number of days.
func clipHorizon(records []weather.HourlyRecord, days int) []weather.HourlyRecord {
	if days <= 0 {
		return records
	}
	cutoff := time.Now().UTC().AddDate(0, 0, days)
	kept := records[:0:0]
	for _, rec := range records {
		if rec.Time.Before(cutoff) {
			kept = append(kept, rec)
		}
	}
	return kept
}

func floatOrNaN(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}
