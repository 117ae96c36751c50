package store

import (
	"errors"
	"sync"
	"time"

	"weather-helper/internal/report"
)

// ErrNotFound is returned when no report is available for a given
// location and date.
var ErrNotFound = errors.New("no report for location and date")

const dateKeyLayout = "2006-01-02"

type storedReport struct {
	report  report.DailyReport
	savedAt time.Time
}

// MemoryStore is a concurrency-safe in-memory store of daily reports,
// keyed by location and date.
type MemoryStore struct {
	mu sync.RWMutex

	// location key -> date key -> report
	data map[string]map[string]storedReport

	// maxAge evicts reports not refreshed within the window; <= 0
	// means unlimited.
	maxAge time.Duration
}

// NewMemoryStore creates a MemoryStore with an optional retention age.
func NewMemoryStore(maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:   make(map[string]map[string]storedReport),
		maxAge: maxAge,
	}
}

// SaveReport inserts or replaces the report for its location and date.
func (s *MemoryStore) SaveReport(rep report.DailyReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	days, ok := s.data[rep.LocationKey]
	if !ok {
		days = make(map[string]storedReport)
		s.data[rep.LocationKey] = days
	}
	days[rep.Date.Format(dateKeyLayout)] = storedReport{report: rep, savedAt: time.Now()}

	s.evictLocked()
}

// GetReport returns the report for a location and date.
func (s *MemoryStore) GetReport(locationKey string, date time.Time) (report.DailyReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	days, ok := s.data[locationKey]
	if !ok {
		return report.DailyReport{}, ErrNotFound
	}
	stored, ok := days[date.Format(dateKeyLayout)]
	if !ok {
		return report.DailyReport{}, ErrNotFound
	}
	return stored.report, nil
}

// ReportsForDate returns every location's report for the given date.
// Locations with no report for that date are simply absent.
func (s *MemoryStore) ReportsForDate(date time.Time) []report.DailyReport {
	key := date.Format(dateKeyLayout)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var reports []report.DailyReport
	for _, days := range s.data {
		if stored, ok := days[key]; ok {
			reports = append(reports, stored.report)
		}
	}
	return reports
}

// evictLocked enforces age-based retention; the caller holds the lock.
func (s *MemoryStore) evictLocked() {
	if s.maxAge <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.maxAge)
	for locKey, days := range s.data {
		for dateKey, stored := range days {
			if stored.savedAt.Before(cutoff) {
				delete(days, dateKey)
			}
		}
		if len(days) == 0 {
			delete(s.data, locKey)
		}
	}
}
