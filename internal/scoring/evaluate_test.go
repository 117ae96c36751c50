package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-helper/internal/weather"
)

func ptr(v float64) *float64 { return &v }

func record(temp, wind, cloud float64) weather.HourlyRecord {
	return weather.HourlyRecord{
		Time:        time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		Temperature: temp,
		WindSpeed:   wind,
		CloudCover:  cloud,
	}
}

func TestEvaluateTotalIsExactComponentSum(t *testing.T) {
	cfg := DefaultConfig()

	rec := record(21, 2, 15)
	rec.PrecipAmount = ptr(0.0)
	rec.Humidity = ptr(55)
	rec.Symbol = weather.SymbolClearSky

	hs, err := cfg.Evaluate(rec, time.UTC)
	require.NoError(t, err)

	sum := hs.TempScore + hs.WindScore + hs.CloudScore + hs.PrecipScore + hs.HumidityScore + hs.SymbolScore
	assert.Equal(t, sum, hs.Total)

	// 8 + 2 + 4 + 5 + 3 + 10
	assert.Equal(t, 32, hs.Total)
	assert.Equal(t, Excellent, hs.Rating)
	assert.Equal(t, 12, hs.Hour)
}

func TestEvaluateOptionalComponentsContributeZeroWhenAbsent(t *testing.T) {
	cfg := DefaultConfig()

	hs, err := cfg.Evaluate(record(21, 2, 15), time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 0, hs.PrecipScore)
	assert.Equal(t, 0, hs.HumidityScore)
	assert.Equal(t, 0, hs.SymbolScore)
	assert.Equal(t, hs.TempScore+hs.WindScore+hs.CloudScore, hs.Total)
}

func TestEvaluatePrecipPrecedence(t *testing.T) {
	cfg := DefaultConfig()

	// Amount preferred over probability when both are present.
	rec := record(21, 2, 15)
	rec.PrecipAmount = ptr(3.0) // moderate rain, -4
	rec.PrecipProb = ptr(90)    // almost certain, -10

	hs, err := cfg.Evaluate(rec, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, -4, hs.PrecipScore)

	// Probability used as fallback when the amount is absent.
	rec.PrecipAmount = nil
	hs, err = cfg.Evaluate(rec, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, -10, hs.PrecipScore)
}

func TestEvaluateRejectsNonFiniteRequiredFields(t *testing.T) {
	cfg := DefaultConfig()

	for _, rec := range []weather.HourlyRecord{
		record(math.NaN(), 2, 15),
		record(21, math.NaN(), 15),
		record(21, 2, math.NaN()),
		record(math.Inf(1), 2, 15),
	} {
		_, err := cfg.Evaluate(rec, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidMeasurement)
	}
}

func TestEvaluateUsesLocalHour(t *testing.T) {
	cfg := DefaultConfig()
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	rec := record(21, 2, 15)
	rec.Time = time.Date(2026, 9, 1, 22, 0, 0, 0, time.UTC) // 00:00 next day in Madrid

	hs, err := cfg.Evaluate(rec, madrid)
	require.NoError(t, err)
	assert.Equal(t, 0, hs.Hour)
}

func TestRateMonotonicity(t *testing.T) {
	cfg := DefaultConfig()

	prev := cfg.Rate(-30)
	for total := -29.0; total <= 30; total += 0.5 {
		r := cfg.Rate(total)
		assert.GreaterOrEqual(t, int(r), int(prev), "rating regressed at total %v", total)
		prev = r
	}
}

func TestRateThresholds(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, Poor, cfg.Rate(1.99))
	assert.Equal(t, Fair, cfg.Rate(2))
	assert.Equal(t, Fair, cfg.Rate(6.99))
	assert.Equal(t, Good, cfg.Rate(7))
	assert.Equal(t, VeryGood, cfg.Rate(13))
	assert.Equal(t, VeryGood, cfg.Rate(17.99))
	assert.Equal(t, Excellent, cfg.Rate(18))
	assert.Equal(t, Excellent, cfg.Rate(100))
}

func TestRatingLabels(t *testing.T) {
	assert.Equal(t, "Poor", Poor.String())
	assert.Equal(t, "Very Good", VeryGood.String())

	text, err := Excellent.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Excellent", string(text))
}
