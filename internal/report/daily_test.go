package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-helper/internal/scoring"
	"weather-helper/internal/weather"
)

func scoredHour(h int, total int, temp float64, precip *float64) scoring.HourlyScore {
	return scoring.HourlyScore{
		Hour:  h,
		Total: total,
		Record: weather.HourlyRecord{
			Temperature:  temp,
			WindSpeed:    2,
			PrecipAmount: precip,
		},
	}
}

func testDate() time.Time {
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
}

func TestBuildDailyRestrictsToDaylightWindow(t *testing.T) {
	cfg := DefaultConfig()
	sc := scoring.DefaultConfig()

	hours := []scoring.HourlyScore{
		scoredHour(6, 100, 20, nil), // before the window, must be ignored
		scoredHour(10, 8, 20, nil),
		scoredHour(11, 10, 22, nil),
		scoredHour(12, 12, 24, nil),
		scoredHour(22, -50, 20, nil), // after the window
	}

	rep, err := BuildDaily(cfg, sc, "gijon", "Gijón", testDate(), hours)
	require.NoError(t, err)

	assert.Len(t, rep.Hours, 3)
	assert.InDelta(t, 10.0, rep.AvgScore, 1e-9)
	assert.Equal(t, scoring.Good, rep.Rating)
}

func TestBuildDailyEmptyWindow(t *testing.T) {
	cfg := DefaultConfig()
	sc := scoring.DefaultConfig()

	_, err := BuildDaily(cfg, sc, "gijon", "Gijón", testDate(), []scoring.HourlyScore{
		scoredHour(3, 5, 18, nil),
		scoredHour(23, 5, 18, nil),
	})
	assert.ErrorIs(t, err, ErrEmptyWindow)

	_, err = BuildDaily(cfg, sc, "gijon", "Gijón", testDate(), nil)
	assert.ErrorIs(t, err, ErrEmptyWindow)
}

func TestBuildDailySortsHoursAscending(t *testing.T) {
	cfg := DefaultConfig()
	sc := scoring.DefaultConfig()

	rep, err := BuildDaily(cfg, sc, "gijon", "Gijón", testDate(), []scoring.HourlyScore{
		scoredHour(14, 5, 20, nil),
		scoredHour(9, 5, 20, nil),
		scoredHour(11, 5, 20, nil),
	})
	require.NoError(t, err)

	hours := make([]int, len(rep.Hours))
	for i, h := range rep.Hours {
		hours[i] = h.Hour
	}
	assert.Equal(t, []int{9, 11, 14}, hours)
}

func TestBuildDailyDailyRatingUsesSameCutTable(t *testing.T) {
	cfg := DefaultConfig()
	sc := scoring.DefaultConfig()

	// Mean 18 sits exactly on the Excellent threshold.
	rep, err := BuildDaily(cfg, sc, "gijon", "Gijón", testDate(), []scoring.HourlyScore{
		scoredHour(10, 17, 20, nil),
		scoredHour(11, 19, 20, nil),
	})
	require.NoError(t, err)
	assert.Equal(t, scoring.Excellent, rep.Rating)
	assert.Equal(t, sc.Rate(rep.AvgScore), rep.Rating)
}

func TestBuildDailyTemperatureStats(t *testing.T) {
	cfg := DefaultConfig()
	sc := scoring.DefaultConfig()

	rep, err := BuildDaily(cfg, sc, "gijon", "Gijón", testDate(), []scoring.HourlyScore{
		scoredHour(10, 5, 16, nil),
		scoredHour(11, 5, 22, nil),
		scoredHour(12, 5, 19, nil),
	})
	require.NoError(t, err)

	require.NotNil(t, rep.MinTemp)
	require.NotNil(t, rep.MaxTemp)
	require.NotNil(t, rep.AvgTemp)
	assert.Equal(t, 16.0, *rep.MinTemp)
	assert.Equal(t, 22.0, *rep.MaxTemp)
	assert.InDelta(t, 19.0, *rep.AvgTemp, 1e-9)
	assert.Equal(t, "Pleasant", rep.Description)
}

func TestBuildDailyRainDescription(t *testing.T) {
	cfg := DefaultConfig()
	sc := scoring.DefaultConfig()

	wet := 2.0
	dry := 0.1
	rep, err := BuildDaily(cfg, sc, "gijon", "Gijón", testDate(), []scoring.HourlyScore{
		scoredHour(10, 3, 20, &wet),
		scoredHour(11, 3, 20, &wet),
		scoredHour(12, 5, 20, &dry),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, rep.LikelyRainHours)
	assert.Equal(t, "Rain (2h)", rep.Description)
}

func TestBuildDailyToleratesGapsAndKeepsBlocksSplit(t *testing.T) {
	cfg := DefaultConfig()
	sc := scoring.DefaultConfig()

	// Hours 12-13 missing; aggregation uses what is present and the
	// block finder must not bridge the gap.
	rep, err := BuildDaily(cfg, sc, "gijon", "Gijón", testDate(), []scoring.HourlyScore{
		scoredHour(10, 6, 20, nil),
		scoredHour(11, 6, 20, nil),
		scoredHour(14, 6, 20, nil),
		scoredHour(15, 6, 20, nil),
	})
	require.NoError(t, err)

	assert.InDelta(t, 6.0, rep.AvgScore, 1e-9)
	require.Len(t, rep.Blocks, 2)
	assert.Equal(t, 2, rep.Blocks[0].Duration)
	assert.Equal(t, 2, rep.Blocks[1].Duration)
}
