package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"weather-helper/internal/weather"
)

// OpenMeteoProvider fetches hourly forecasts from the Open-Meteo API.
// It needs no API key.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client) *OpenMeteoProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

func (p *OpenMeteoProvider) FetchHourly(ctx context.Context, loc weather.Location, days int) ([]weather.HourlyRecord, error) {
	if days <= 0 {
		days = 7
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", loc.Lat))
		values.Set("longitude", fmt.Sprintf("%f", loc.Lon))
		values.Set("hourly", "temperature_2m,windspeed_10m,cloudcover,precipitation,precipitation_probability,relativehumidity_2m,weathercode")
		values.Set("windspeed_unit", "ms")
		values.Set("timezone", "UTC")
		values.Set("forecast_days", strconv.Itoa(days))

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Hourly struct {
			Time                     []string   `json:"time"`
			Temperature2m            []*float64 `json:"temperature_2m"`
			WindSpeed10m             []*float64 `json:"windspeed_10m"`
			CloudCover               []*float64 `json:"cloudcover"`
			Precipitation            []*float64 `json:"precipitation"`
			PrecipitationProbability []*float64 `json:"precipitation_probability"`
			RelativeHumidity2m       []*float64 `json:"relativehumidity_2m"`
			WeatherCode              []*int     `json:"weathercode"`
		} `json:"hourly"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding open-meteo payload: %w", err)
	}

	hourly := payload.Hourly
	records := make([]weather.HourlyRecord, 0, len(hourly.Time))
	for i, raw := range hourly.Time {
		// Open-Meteo uses a minute-resolution ISO timestamp without zone.
		ts, err := time.Parse("2006-01-02T15:04", raw)
		if err != nil {
			continue
		}

		rec := weather.HourlyRecord{
			Time:         ts.UTC(),
			Temperature:  floatOrNaN(at(hourly.Temperature2m, i)),
			WindSpeed:    floatOrNaN(at(hourly.WindSpeed10m, i)),
			CloudCover:   floatOrNaN(at(hourly.CloudCover, i)),
			PrecipAmount: at(hourly.Precipitation, i),
			PrecipProb:   at(hourly.PrecipitationProbability, i),
			Humidity:     at(hourly.RelativeHumidity2m, i),
		}
		if code := atInt(hourly.WeatherCode, i); code != nil {
			rec.Symbol = symbolFromWeatherCode(*code)
		}

		records = append(records, rec)
	}

	return records, nil
}

func at(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}

func atInt(values []*int, i int) *int {
	if i >= len(values) {
		return nil
	}
	return values[i]
}

// symbolFromWeatherCode maps WMO weather codes (simplified) onto the
// met.no symbol vocabulary the scorer understands.
func symbolFromWeatherCode(code int) weather.Symbol {
	switch {
	case code == 0:
		return weather.SymbolClearSky
	case code >= 1 && code <= 2:
		return weather.SymbolPartlyCloudy
	case code == 3:
		return weather.SymbolCloudy
	case code >= 45 && code <= 48:
		return weather.SymbolFog
	case code >= 51 && code <= 57:
		return "lightrain"
	case (code >= 61 && code <= 67) || (code >= 80 && code <= 82):
		return weather.SymbolRain
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return weather.SymbolSnow
	case code >= 95:
		return weather.SymbolThunderstorm
	default:
		return weather.SymbolUnknown
	}
}
