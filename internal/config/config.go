package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"weather-helper/internal/report"
	"weather-helper/internal/weather"
)

// AppConfig is the process-wide configuration, read once at startup.
type AppConfig struct {
	Port string

	// FetchInterval controls how often forecasts are refreshed.
	FetchInterval time.Duration

	// ForecastDays is the horizon of days to score.
	ForecastDays int

	// Timezone used for grouping hours into local calendar days.
	Timezone *time.Location

	// Locations to track.
	Locations []weather.Location

	// Report holds the daylight window and block-finder weights.
	Report report.Config

	// StoreMaxAge evicts reports not refreshed within the window.
	StoreMaxAge time.Duration

	HTTPTimeout time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		Port:         getenvDefault("PORT", "8080"),
		ForecastDays: getenvInt("FORECAST_DAYS", 7),
		HTTPTimeout:  10 * time.Second,
	}

	interval, err := time.ParseDuration(getenvDefault("FETCH_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_INTERVAL: %w", err)
	}
	cfg.FetchInterval = interval

	maxAge, err := time.ParseDuration(getenvDefault("STORE_MAX_AGE", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_MAX_AGE: %w", err)
	}
	cfg.StoreMaxAge = maxAge

	tz, err := time.LoadLocation(getenvDefault("TIMEZONE", "Europe/Madrid"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Timezone = tz

	cfg.Report = report.DefaultConfig()
	cfg.Report.Window.StartHour = getenvInt("DAYLIGHT_START_HOUR", cfg.Report.Window.StartHour)
	cfg.Report.Window.EndHour = getenvInt("DAYLIGHT_END_HOUR", cfg.Report.Window.EndHour)
	cfg.Report.TopBlocks = getenvInt("TOP_BLOCKS", cfg.Report.TopBlocks)
	if cfg.Report.Window.StartHour > cfg.Report.Window.EndHour {
		return nil, fmt.Errorf("daylight window start %d is after end %d",
			cfg.Report.Window.StartHour, cfg.Report.Window.EndHour)
	}

	locs, err := loadLocations()
	if err != nil {
		return nil, err
	}
	cfg.Locations = locs

	return cfg, nil
}

// loadLocations parses the LOCATIONS override ("key:Name:lat:lon"
// entries separated by commas) or falls back to the built-in table.
func loadLocations() ([]weather.Location, error) {
	raw := os.Getenv("LOCATIONS")
	if raw == "" {
		return weather.DefaultLocations(), nil
	}

	var locs []weather.Location
	seen := make(map[string]bool)
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 4 {
			return nil, fmt.Errorf("invalid LOCATIONS entry %q, want key:Name:lat:lon", entry)
		}
		lat, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude in LOCATIONS entry %q: %w", entry, err)
		}
		lon, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude in LOCATIONS entry %q: %w", entry, err)
		}
		if seen[parts[0]] {
			return nil, fmt.Errorf("duplicate location key %q", parts[0])
		}
		seen[parts[0]] = true
		locs = append(locs, weather.Location{Key: parts[0], Name: parts[1], Lat: lat, Lon: lon})
	}
	return locs, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
