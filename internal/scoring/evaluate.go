package scoring

import (
	"errors"
	"fmt"
	"math"
	"time"

	"weather-helper/internal/weather"
)

// ErrInvalidMeasurement is returned when a required field of an hourly
// record is missing or non-finite. The bad hour is dropped by callers;
// it never poisons the rest of the day.
var ErrInvalidMeasurement = errors.New("invalid measurement")

// HourlyScore is the scored view of one HourlyRecord: every applicable
// component score, their exact sum, and the derived rating.
type HourlyScore struct {
	Record weather.HourlyRecord `json:"record"`
	Hour   int                  `json:"hour"` // local hour within the day

	TempScore     int `json:"tempScore"`
	WindScore     int `json:"windScore"`
	CloudScore    int `json:"cloudScore"`
	PrecipScore   int `json:"precipScore"`
	HumidityScore int `json:"humidityScore"`
	SymbolScore   int `json:"symbolScore"`

	Total  int    `json:"total"`
	Rating Rating `json:"rating"`
}

// Evaluate scores one hourly record. Temperature, wind speed and cloud
// cover are required and must be finite. Precipitation is scored from
// the amount when present, falling back to the probability; humidity
// and symbol contribute zero when absent. The hour is taken from the
// record time in loc.
func (c Config) Evaluate(rec weather.HourlyRecord, loc *time.Location) (HourlyScore, error) {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"temperature", rec.Temperature},
		{"wind speed", rec.WindSpeed},
		{"cloud cover", rec.CloudCover},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return HourlyScore{}, fmt.Errorf("%w: %s at %s", ErrInvalidMeasurement, f.name, rec.Time.Format(time.RFC3339))
		}
	}

	hs := HourlyScore{
		Record:     rec,
		Hour:       rec.Time.In(loc).Hour(),
		TempScore:  c.TempScore(rec.Temperature),
		WindScore:  c.WindScore(rec.WindSpeed),
		CloudScore: c.CloudScore(rec.CloudCover),
	}

	// Precedence: amount preferred, probability as fallback.
	switch {
	case rec.PrecipAmount != nil:
		hs.PrecipScore = c.PrecipAmountScore(*rec.PrecipAmount)
	case rec.PrecipProb != nil:
		hs.PrecipScore = c.PrecipProbScore(*rec.PrecipProb)
	}

	if rec.Humidity != nil {
		hs.HumidityScore = c.HumidityScore(*rec.Humidity)
	}
	hs.SymbolScore = c.SymbolScore(rec.Symbol)

	hs.Total = hs.TempScore + hs.WindScore + hs.CloudScore + hs.PrecipScore + hs.HumidityScore + hs.SymbolScore
	hs.Rating = c.Rate(float64(hs.Total))

	return hs, nil
}
