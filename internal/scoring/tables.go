package scoring

import (
	"math"

	"weather-helper/internal/weather"
)

// Thresholds are the ascending rating cut points applied to a total
// score: < Fair is Poor, [Fair, Good) is Fair, and so on.
type Thresholds struct {
	Fair      float64
	Good      float64
	VeryGood  float64
	Excellent float64
}

// Config bundles the range tables, symbol scores and rating thresholds
// used by the scorers and the hourly evaluator. It is built once at
// startup and passed in explicitly; it is never mutated.
type Config struct {
	Temperature  RangeTable
	Wind         RangeTable
	Cloud        RangeTable
	PrecipAmount RangeTable
	PrecipProb   RangeTable
	Humidity     RangeTable

	Symbols map[weather.Symbol]int

	Ratings Thresholds
}

// DefaultConfig returns the standard scoring configuration.
func DefaultConfig() Config {
	inf := math.Inf(1)

	return Config{
		// Air temperature in °C, scores -15..8.
		Temperature: RangeTable{
			{-inf, -5, -15, "Beyond extreme cold"},
			{-5, 0, -9, "Extremely cold"},
			{0, 5, -6, "Very cold"},
			{5, 10, -1, "Cold"},
			{10, 15, 2, "Cool but acceptable"},
			{15, 17, 4, "Cool but comfortable"},
			{17, 20, 6, "Cool but very pleasant"},
			{20, 24, 8, "Ideal"},
			{24, 27, 6, "Warm but very pleasant"},
			{27, 30, 4, "Warm but comfortable"},
			{30, 33, 1, "Hot but manageable"},
			{33, 36, -3, "Very hot"},
			{36, 40, -9, "Extremely hot"},
			{40, inf, -15, "Beyond extreme heat"},
		},
		// Wind speed in m/s, scores -8..2.
		Wind: RangeTable{
			{0, 1, 1, "Calm"},
			{1, 3, 2, "Light breeze"},
			{3, 5, 0, "Gentle breeze"},
			{5, 8, -2, "Moderate breeze"},
			{8, 12, -4, "Fresh breeze"},
			{12, 16, -6, "Strong breeze"},
			{16, 20, -7, "Near gale"},
			{20, inf, -8, "Gale and above"},
		},
		// Cloud coverage in %, scores -3..4.
		Cloud: RangeTable{
			{0, 10, 3, "Clear skies"},
			{10, 30, 4, "Few to scattered clouds"},
			{30, 60, 2, "Partly cloudy"},
			{60, 80, 0, "Mostly cloudy"},
			{80, 95, -1, "Very cloudy"},
			{95, inf, -3, "Overcast"},
		},
		// Precipitation amount in mm, scores -12..5. The degenerate
		// first bucket gives completely dry hours a dedicated bonus.
		PrecipAmount: RangeTable{
			{0, 0, 5, "Dry"},
			{0, 0.1, 4, "Trace amounts"},
			{0.1, 0.5, 2, "Very light"},
			{0.5, 1.0, 0, "Light drizzle"},
			{1.0, 2.5, -2, "Light rain"},
			{2.5, 5.0, -4, "Moderate rain"},
			{5.0, 10.0, -6, "Heavy rain"},
			{10.0, 20.0, -8, "Very heavy rain"},
			{20.0, inf, -12, "Extreme precipitation"},
		},
		// Precipitation probability in %, scores -10..0.
		PrecipProb: RangeTable{
			{0, 5, 0, "Very unlikely"},
			{5, 15, -1, "Unlikely"},
			{15, 30, -3, "Slight chance"},
			{30, 50, -5, "Moderate chance"},
			{50, 70, -7, "Likely"},
			{70, 85, -9, "Very likely"},
			{85, inf, -10, "Almost certain"},
		},
		// Relative humidity in %, scores -4..3.
		Humidity: RangeTable{
			{-inf, 5, -4, "Near zero"},
			{5, 10, -3, "Extremely dry"},
			{10, 15, -2, "Very dry"},
			{15, 20, -1, "Dry"},
			{20, 30, 0, "Low"},
			{30, 40, 2, "Comfortably low"},
			{40, 60, 3, "Ideal"},
			{60, 70, 1, "Moderate"},
			{70, 80, 0, "High"},
			{80, 85, -1, "Very high"},
			{85, 90, -2, "Extremely high"},
			{90, 95, -3, "Near saturation"},
			{95, inf, -4, "Saturated"},
		},

		Symbols: map[weather.Symbol]int{
			"clearsky":          10,
			"fair":              8,
			"partlycloudy":      6,
			"cloudy":            3,
			"lightrain":         -2,
			"lightrainshowers":  -2,
			"lightsleet":        -3,
			"lightsleetshowers": -3,
			"lightsnow":         -3,
			"lightsnowshowers":  -3,
			"rain":              -5,
			"rainshowers":       -5,
			"sleet":             -6,
			"sleetshowers":      -6,
			"snow":              -6,
			"snowshowers":       -6,
			"heavyrain":         -10,
			"heavyrainshowers":  -10,
			"heavysleet":        -10,
			"heavysleetshowers": -10,
			"heavysnow":         -10,
			"heavysnowshowers":  -10,
			"fog":               -4,
			"thunderstorm":      -15,
		},

		Ratings: Thresholds{Fair: 2, Good: 7, VeryGood: 13, Excellent: 18},
	}
}
