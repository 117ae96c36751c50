package forecast

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"weather-helper/internal/report"
	"weather-helper/internal/scoring"
	"weather-helper/internal/weather"
)

// Store is the contract the report store must satisfy.
type Store interface {
	SaveReport(rep report.DailyReport)
	GetReport(locationKey string, date time.Time) (report.DailyReport, error)
	ReportsForDate(date time.Time) []report.DailyReport
}

// Service orchestrates fetching hourly forecasts, scoring them and
// persisting daily reports per location.
type Service struct {
	store     Store
	providers []weather.Provider
	locations []weather.Location

	scoringCfg scoring.Config
	reportCfg  report.Config

	tz   *time.Location
	days int
}

// NewService creates a new Service. Providers are tried in order; the
// first one that returns records for a location wins.
func NewService(store Store, providers []weather.Provider, locations []weather.Location,
	scoringCfg scoring.Config, reportCfg report.Config, tz *time.Location, days int) *Service {
	if tz == nil {
		tz = time.UTC
	}
	return &Service{
		store:      store,
		providers:  providers,
		locations:  locations,
		scoringCfg: scoringCfg,
		reportCfg:  reportCfg,
		tz:         tz,
		days:       days,
	}
}

// Locations returns the configured location table.
func (s *Service) Locations() []weather.Location {
	return s.locations
}

// RefreshAll fetches and rebuilds reports for every location
// concurrently. Locations are independent, so one failed fetch only
// degrades the result set; it never blocks the others.
func (s *Service) RefreshAll(ctx context.Context) {
	var wg sync.WaitGroup
	for _, loc := range s.locations {
		loc := loc
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.RefreshLocation(ctx, loc); err != nil {
				log.Printf("ERROR: refresh failed for %s: %v", loc.Key, err)
			}
		}()
	}
	wg.Wait()
}

// RefreshLocation fetches the hourly forecast for one location, scores
// it and stores the resulting daily reports.
func (s *Service) RefreshLocation(ctx context.Context, loc weather.Location) error {
	if len(s.providers) == 0 {
		return fmt.Errorf("no forecast providers configured")
	}

	var records []weather.HourlyRecord
	var lastErr error
	for _, p := range s.providers {
		recs, err := p.FetchHourly(ctx, loc, s.days)
		if err != nil {
			log.Printf("INFO: provider %s failed for %s: %v", p.Name(), loc.Key, err)
			lastErr = err
			continue
		}
		if len(recs) > 0 {
			records = recs
			break
		}
	}
	if len(records) == 0 {
		if lastErr != nil {
			return fmt.Errorf("all providers failed: %w", lastErr)
		}
		return fmt.Errorf("no forecast data available")
	}

	for _, rep := range s.buildReports(loc, records) {
		s.store.SaveReport(rep)
	}
	return nil
}

// buildReports scores the records and reduces them into one report per
// local calendar day. Hours with invalid measurements are logged and
// skipped; days with no daylight data are omitted.
func (s *Service) buildReports(loc weather.Location, records []weather.HourlyRecord) []report.DailyReport {
	byDay := make(map[time.Time][]scoring.HourlyScore)
	for _, rec := range records {
		hs, err := s.scoringCfg.Evaluate(rec, s.tz)
		if err != nil {
			log.Printf("INFO: skipping hour for %s: %v", loc.Key, err)
			continue
		}

		local := rec.Time.In(s.tz)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.tz)
		byDay[day] = append(byDay[day], hs)
	}

	reports := make([]report.DailyReport, 0, len(byDay))
	for day, hours := range byDay {
		rep, err := report.BuildDaily(s.reportCfg, s.scoringCfg, loc.Key, loc.Name, day, hours)
		if err != nil {
			if !errors.Is(err, report.ErrEmptyWindow) {
				log.Printf("ERROR: building report for %s on %s: %v", loc.Key, day.Format("2006-01-02"), err)
			}
			continue
		}
		reports = append(reports, rep)
	}
	return reports
}

// Report returns the stored daily report for a location and date.
func (s *Service) Report(locationKey string, date time.Time) (report.DailyReport, error) {
	return s.store.GetReport(locationKey, date)
}

// Rankings orders all locations with data for the date, best first.
// It ranks whatever subset of locations has reports; a failed fetch
// for one location never blocks the comparison.
func (s *Service) Rankings(date time.Time, top int) (report.LocationRanking, error) {
	ranking, err := report.Rank(date, s.store.ReportsForDate(date))
	if err != nil {
		return report.LocationRanking{}, err
	}
	if top > 0 && len(ranking.Entries) > top {
		ranking.Entries = ranking.Entries[:top]
	}
	return ranking, nil
}
