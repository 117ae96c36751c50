package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weather-helper/internal/weather"
)

// sweep covers each component's table span plus far-out extremes.
var sweep = []float64{-1000, -50, -5, -0.5, 0, 0.05, 0.5, 1, 2.5, 5, 10, 15, 20, 24, 30, 40, 60, 85, 95, 100, 1000}

func TestComponentScoresStayWithinDeclaredRanges(t *testing.T) {
	cfg := DefaultConfig()

	components := []struct {
		name     string
		score    func(float64) int
		min, max int
	}{
		{"temperature", cfg.TempScore, -15, 8},
		{"wind", cfg.WindScore, -8, 2},
		{"cloud", cfg.CloudScore, -3, 4},
		{"precip amount", cfg.PrecipAmountScore, -12, 5},
		{"precip probability", cfg.PrecipProbScore, -10, 0},
		{"humidity", cfg.HumidityScore, -4, 3},
	}

	for _, comp := range components {
		for _, v := range sweep {
			got := comp.score(v)
			assert.GreaterOrEqual(t, got, comp.min, "%s score for %v", comp.name, v)
			assert.LessOrEqual(t, got, comp.max, "%s score for %v", comp.name, v)
		}
	}
}

func TestTempScoreBuckets(t *testing.T) {
	cfg := DefaultConfig()

	// Exactly 20°C scores the ideal 20-24 bucket, not 17-20.
	assert.Equal(t, 8, cfg.TempScore(20))
	assert.Equal(t, 6, cfg.TempScore(19.9))
	assert.Equal(t, 6, cfg.TempScore(24))
	assert.Equal(t, 2, cfg.TempScore(10))
	assert.Equal(t, -9, cfg.TempScore(-3))

	// Values beyond both table ends bind to the terminal buckets.
	assert.Equal(t, -15, cfg.TempScore(-60))
	assert.Equal(t, -15, cfg.TempScore(55))
}

func TestWindScoreBuckets(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.WindScore(0))
	assert.Equal(t, 2, cfg.WindScore(1))
	assert.Equal(t, 2, cfg.WindScore(2.9))
	assert.Equal(t, 0, cfg.WindScore(3))
	assert.Equal(t, -8, cfg.WindScore(35))
}

func TestPrecipAmountScoreDryBonus(t *testing.T) {
	cfg := DefaultConfig()

	// A completely dry hour beats trace amounts.
	assert.Equal(t, 5, cfg.PrecipAmountScore(0))
	assert.Equal(t, 4, cfg.PrecipAmountScore(0.05))
	assert.Equal(t, 2, cfg.PrecipAmountScore(0.1))
	assert.Equal(t, -12, cfg.PrecipAmountScore(50))
}

func TestSymbolScoreLookup(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 10, cfg.SymbolScore(weather.SymbolClearSky))
	assert.Equal(t, -15, cfg.SymbolScore(weather.SymbolThunderstorm))
	assert.Equal(t, -2, cfg.SymbolScore("lightrainshowers"))

	// Unknown and absent symbols contribute zero, never an error.
	assert.Equal(t, 0, cfg.SymbolScore("volcanic_ash"))
	assert.Equal(t, 0, cfg.SymbolScore(weather.SymbolUnknown))
}

func TestNormalizeSymbolVariants(t *testing.T) {
	assert.Equal(t, weather.SymbolPartlyCloudy, weather.NormalizeSymbol("partlycloudy_day"))
	assert.Equal(t, weather.SymbolClearSky, weather.NormalizeSymbol("clearsky_night"))
	assert.Equal(t, weather.Symbol("heavyrainshowers"), weather.NormalizeSymbol("heavyrainshowers_polartwilight"))
	assert.Equal(t, weather.SymbolUnknown, weather.NormalizeSymbol(""))
}
