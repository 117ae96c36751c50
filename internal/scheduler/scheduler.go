package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"weather-helper/internal/forecast"
)

// Scheduler periodically refreshes forecasts for all locations.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *forecast.Service
	interval  time.Duration
}

// New creates a new Scheduler.
func New(interval time.Duration, service *forecast.Service) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and runs it once
// immediately so the store is populated at startup.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 60
	}

	job := func() {
		log.Println("scheduler: refreshing forecasts")

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		s.service.RefreshAll(ctx)
		log.Println("scheduler: refresh complete")
	}

	if _, err := s.scheduler.Every(minutes).Minutes().Do(job); err != nil {
		return err
	}

	s.scheduler.StartAsync()
	go job()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
