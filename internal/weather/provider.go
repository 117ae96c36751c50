package weather

import (
	"context"
)

// Provider abstracts a forecast data source (e.g. met.no, Open-Meteo).
// Implementations must return records in ascending chronological order
// with no duplicate timestamps; gaps are allowed.
type Provider interface {
	Name() string
	FetchHourly(ctx context.Context, loc Location, days int) ([]HourlyRecord, error)
}
