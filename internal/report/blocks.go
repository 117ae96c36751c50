package report

import (
	"math"
	"sort"

	"weather-helper/internal/scoring"
)

// Block is a contiguous run of non-negative-scoring hours within the
// daylight window: the sustained good-weather period of a day. Blocks
// are produced by FindBlocks and never mutated.
type Block struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
	Duration  int `json:"duration"` // hours

	AvgScore      float64 `json:"avgScore"`      // mean hourly total
	StdDev        float64 `json:"stdDev"`        // population std dev of hourly totals
	CombinedScore float64 `json:"combinedScore"` // selection objective

	AvgTemp float64 `json:"avgTemp"`
	AvgWind float64 `json:"avgWind"`
}

// FindBlocks locates the candidate activity blocks within one day's
// daylight hours, best first.
//
// Candidates are the maximal contiguous runs of hours whose individual
// total is >= 0; a negative hour, or a gap in the hourly sequence,
// terminates a run. Each candidate of length L with mean quality Q and
// standard deviation C scores
//
//	Q + durationWeight*ln(1+L) - consistencyWeight*C
//
// so longer blocks help with diminishing returns and erratic blocks
// are penalized. Ties go to the longer block, then the earlier start.
// A day where every hour scores negative has no blocks.
func FindBlocks(cfg Config, hours []scoring.HourlyScore) []Block {
	var blocks []Block

	var run []scoring.HourlyScore
	flush := func() {
		if len(run) > 0 {
			blocks = append(blocks, newBlock(cfg, run))
			run = nil
		}
	}

	for i, h := range hours {
		if h.Total < 0 {
			flush()
			continue
		}
		// A missing hour breaks contiguity the same way a negative
		// hour does.
		if len(run) > 0 && h.Hour != hours[i-1].Hour+1 {
			flush()
		}
		run = append(run, h)
	}
	flush()

	sort.SliceStable(blocks, func(i, j int) bool {
		a, b := blocks[i], blocks[j]
		if a.CombinedScore != b.CombinedScore {
			return a.CombinedScore > b.CombinedScore
		}
		if a.Duration != b.Duration {
			return a.Duration > b.Duration
		}
		return a.StartHour < b.StartHour
	})

	if cfg.TopBlocks > 0 && len(blocks) > cfg.TopBlocks {
		blocks = blocks[:cfg.TopBlocks]
	}
	return blocks
}

func newBlock(cfg Config, run []scoring.HourlyScore) Block {
	n := float64(len(run))

	var sum, tempSum, windSum float64
	for _, h := range run {
		sum += float64(h.Total)
		tempSum += h.Record.Temperature
		windSum += h.Record.WindSpeed
	}
	mean := sum / n

	var variance float64
	for _, h := range run {
		d := float64(h.Total) - mean
		variance += d * d
	}
	variance /= n
	stdDev := math.Sqrt(variance)

	durationBonus := cfg.DurationWeight * math.Log(1+n)
	consistencyPenalty := cfg.ConsistencyWeight * stdDev

	return Block{
		StartHour:     run[0].Hour,
		EndHour:       run[len(run)-1].Hour,
		Duration:      len(run),
		AvgScore:      mean,
		StdDev:        stdDev,
		CombinedScore: mean + durationBonus - consistencyPenalty,
		AvgTemp:       tempSum / n,
		AvgWind:       windSum / n,
	}
}
