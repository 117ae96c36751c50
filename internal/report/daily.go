package report

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"weather-helper/internal/scoring"
)

// ErrEmptyWindow is returned when a day has no qualifying daylight
// hours at all. Callers surface it as "no data for this day" rather
// than treating the day as Poor.
var ErrEmptyWindow = errors.New("no hours in daylight window")

// Window is the inclusive hour range within which daily aggregation
// and block search operate.
type Window struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

func (w Window) Contains(hour int) bool {
	return hour >= w.StartHour && hour <= w.EndHour
}

// Config carries the daylight window and the block-finder weights.
// Like scoring.Config it is constructed once and passed in explicitly.
type Config struct {
	Window Window

	// DurationWeight scales the logarithmic duration bonus and
	// ConsistencyWeight scales the standard-deviation penalty in the
	// block objective.
	DurationWeight    float64
	ConsistencyWeight float64

	// TopBlocks limits how many candidate blocks a report keeps.
	TopBlocks int
}

// DefaultConfig returns the standard report configuration.
func DefaultConfig() Config {
	return Config{
		Window:            Window{StartHour: 8, EndHour: 20},
		DurationWeight:    2.0,
		ConsistencyWeight: 0.5,
		TopBlocks:         3,
	}
}

// DailyReport is one calendar day of scored daylight hours for one
// location, with the aggregate score, rating, summary stats and the
// optimal activity blocks. It is a read-only value object.
type DailyReport struct {
	LocationKey  string    `json:"locationKey"`
	LocationName string    `json:"locationName"`
	Date         time.Time `json:"date"` // midnight, local

	Hours []scoring.HourlyScore `json:"hours"` // daylight window, ascending

	AvgScore float64        `json:"avgScore"`
	Rating   scoring.Rating `json:"rating"`

	MinTemp *float64 `json:"minTemp,omitempty"`
	MaxTemp *float64 `json:"maxTemp,omitempty"`
	AvgTemp *float64 `json:"avgTemp,omitempty"`

	LikelyRainHours int    `json:"likelyRainHours"`
	Description     string `json:"description"`

	Blocks []Block `json:"blocks"`
}

// BuildDaily reduces one day's hourly scores into a DailyReport,
// keeping only hours inside the daylight window. The aggregate is the
// arithmetic mean of the in-window totals and the daily rating applies
// the same cut-table used for hourly ratings.
func BuildDaily(cfg Config, sc scoring.Config, locKey, locName string, date time.Time, hours []scoring.HourlyScore) (DailyReport, error) {
	daylight := make([]scoring.HourlyScore, 0, len(hours))
	for _, h := range hours {
		if cfg.Window.Contains(h.Hour) {
			daylight = append(daylight, h)
		}
	}
	if len(daylight) == 0 {
		return DailyReport{}, ErrEmptyWindow
	}

	sort.Slice(daylight, func(i, j int) bool { return daylight[i].Hour < daylight[j].Hour })

	rep := DailyReport{
		LocationKey:  locKey,
		LocationName: locName,
		Date:         date,
		Hours:        daylight,
	}

	var totalSum float64
	var tempSum float64
	var tempCount int
	for _, h := range daylight {
		totalSum += float64(h.Total)

		t := h.Record.Temperature
		if tempCount == 0 {
			rep.MinTemp, rep.MaxTemp = ptr(t), ptr(t)
		} else {
			if t < *rep.MinTemp {
				rep.MinTemp = ptr(t)
			}
			if t > *rep.MaxTemp {
				rep.MaxTemp = ptr(t)
			}
		}
		tempSum += t
		tempCount++

		if h.Record.PrecipAmount != nil && *h.Record.PrecipAmount > 0.5 {
			rep.LikelyRainHours++
		}
	}

	rep.AvgScore = totalSum / float64(len(daylight))
	rep.Rating = sc.Rate(rep.AvgScore)
	if tempCount > 0 {
		rep.AvgTemp = ptr(tempSum / float64(tempCount))
	}
	rep.Description = describe(rep)
	rep.Blocks = FindBlocks(cfg, daylight)

	return rep, nil
}

// describe classifies the day for display purposes, rain first, then
// by average temperature.
func describe(rep DailyReport) string {
	if rep.LikelyRainHours > 0 {
		return fmt.Sprintf("Rain (%dh)", rep.LikelyRainHours)
	}
	if rep.AvgTemp == nil {
		return "Mixed"
	}
	switch t := *rep.AvgTemp; {
	case t >= 22:
		return "Warm"
	case t >= 18:
		return "Pleasant"
	case t >= 10:
		return "Cool"
	default:
		return "Cold"
	}
}

func ptr(v float64) *float64 { return &v }
