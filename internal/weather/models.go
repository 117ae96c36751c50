package weather

import (
	"strings"
	"time"
)

// Symbol is a normalized weather-symbol category as reported by the
// forecast providers (met.no symbol codes, without day/night variants).
type Symbol string

const (
	SymbolUnknown      Symbol = ""
	SymbolClearSky     Symbol = "clearsky"
	SymbolFair         Symbol = "fair"
	SymbolPartlyCloudy Symbol = "partlycloudy"
	SymbolCloudy       Symbol = "cloudy"
	SymbolFog          Symbol = "fog"
	SymbolRain         Symbol = "rain"
	SymbolSnow         Symbol = "snow"
	SymbolThunderstorm Symbol = "thunderstorm"
)

// NormalizeSymbol strips the day/night/twilight variant suffix from a raw
// provider symbol code ("partlycloudy_day" -> "partlycloudy").
func NormalizeSymbol(code string) Symbol {
	base := code
	if i := strings.IndexByte(code, '_'); i >= 0 {
		base = code[:i]
	}
	return Symbol(strings.ToLower(strings.TrimSpace(base)))
}

// Location represents a place we track, with fixed coordinates.
type Location struct {
	Key  string  `json:"key"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// DefaultLocations returns the built-in location table.
func DefaultLocations() []Location {
	return []Location{
		{Key: "gijon", Name: "Gijón", Lat: 43.5322, Lon: -5.6610},
		{Key: "oviedo", Name: "Oviedo", Lat: 43.3623, Lon: -5.8485},
		{Key: "llanes", Name: "Llanes", Lat: 43.4211, Lon: -4.7562},
		{Key: "aviles", Name: "Avilés", Lat: 43.5567, Lon: -5.9256},
		{Key: "luarca", Name: "Luarca", Lat: 43.5420, Lon: -6.5359},
		{Key: "luanco", Name: "Luanco", Lat: 43.6137, Lon: -5.7929},
		{Key: "salinas", Name: "Salinas", Lat: 43.5753, Lon: -5.9585},
		{Key: "alicante", Name: "Alicante", Lat: 38.3452, Lon: -0.4830},
		{Key: "cudillero", Name: "Cudillero", Lat: 43.5629, Lon: -6.1453},
		{Key: "ribadesella", Name: "Ribadesella", Lat: 43.4631, Lon: -5.0567},
	}
}

// HourlyRecord is one hour of raw weather observations for a location,
// as produced by a forecast provider. Temperature, wind speed and cloud
// cover are required; a provider that cannot supply one of them sets it
// to NaN, which the evaluator rejects. The pointer fields are optional
// and may be nil depending on the data source.
//
// Records are immutable once constructed.
type HourlyRecord struct {
	Time time.Time `json:"time"` // start of the hourly interval, UTC

	Temperature float64 `json:"temperature"` // °C
	WindSpeed   float64 `json:"windSpeed"`   // m/s
	CloudCover  float64 `json:"cloudCover"`  // %

	PrecipAmount *float64 `json:"precipAmount,omitempty"` // mm
	PrecipProb   *float64 `json:"precipProb,omitempty"`   // %
	Humidity     *float64 `json:"humidity,omitempty"`     // %

	Symbol Symbol `json:"symbol,omitempty"`
}
