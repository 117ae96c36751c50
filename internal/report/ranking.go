package report

import (
	"errors"
	"sort"
	"time"
)

// ErrNoLocations is returned when a ranking is requested over an empty
// set of reports.
var ErrNoLocations = errors.New("no locations to rank")

// LocationRanking orders locations best to worst for a fixed date.
type LocationRanking struct {
	Date    time.Time     `json:"date"`
	Entries []DailyReport `json:"entries"`
}

// Rank sorts the given daily reports descending by aggregate score,
// breaking ties by location name so the output is reproducible. It
// performs no rescoring.
func Rank(date time.Time, reports []DailyReport) (LocationRanking, error) {
	if len(reports) == 0 {
		return LocationRanking{}, ErrNoLocations
	}

	entries := make([]DailyReport, len(reports))
	copy(entries, reports)

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].AvgScore != entries[j].AvgScore {
			return entries[i].AvgScore > entries[j].AvgScore
		}
		return entries[i].LocationName < entries[j].LocationName
	})

	return LocationRanking{Date: date, Entries: entries}, nil
}
