package scoring

import "weather-helper/internal/weather"

// Component scorers. Each maps one raw measurement to a bounded score
// through its range table; identical inputs always produce identical
// scores.

// TempScore rates air temperature (°C) for outdoor comfort, -15..8.
func (c Config) TempScore(temp float64) int {
	return c.Temperature.Score(temp)
}

// WindScore rates wind speed (m/s), -8..2.
func (c Config) WindScore(windSpeed float64) int {
	return c.Wind.Score(windSpeed)
}

// CloudScore rates cloud coverage (%), -3..4.
func (c Config) CloudScore(cloudCover float64) int {
	return c.Cloud.Score(cloudCover)
}

// PrecipAmountScore rates precipitation amount (mm), -12..5.
func (c Config) PrecipAmountScore(amount float64) int {
	return c.PrecipAmount.Score(amount)
}

// PrecipProbScore rates precipitation probability (%), -10..0.
func (c Config) PrecipProbScore(probability float64) int {
	return c.PrecipProb.Score(probability)
}

// HumidityScore rates relative humidity (%), -4..3.
func (c Config) HumidityScore(humidity float64) int {
	return c.Humidity.Score(humidity)
}

// SymbolScore rates a weather-symbol category via direct lookup.
// Unknown or absent symbols contribute zero.
func (c Config) SymbolScore(sym weather.Symbol) int {
	return c.Symbols[sym]
}
