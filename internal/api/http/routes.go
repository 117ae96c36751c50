package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"weather-helper/internal/forecast"
	"weather-helper/internal/report"
	"weather-helper/internal/store"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *forecast.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/locations", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"locations": service.Locations()})
	})

	v1.Get("/report", func(c *fiber.Ctx) error {
		req, err := parseReportQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		rep, err := service.Report(req.Location, req.date)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no report for requested location and date")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch report")
		}

		return c.JSON(rep)
	})

	v1.Get("/report/hours", func(c *fiber.Ctx) error {
		req, err := parseReportQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		rep, err := service.Report(req.Location, req.date)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no report for requested location and date")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch report")
		}

		return c.JSON(fiber.Map{
			"location": rep.LocationKey,
			"date":     rep.Date,
			"hours":    rep.Hours,
		})
	})

	v1.Get("/rankings", func(c *fiber.Ctx) error {
		dateStr := c.Query("date")
		if dateStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "date query parameter is required")
		}
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid date format; use YYYY-MM-DD")
		}

		top := 0
		if topStr := c.Query("top"); topStr != "" {
			top, err = strconv.Atoi(topStr)
			if err != nil || top < 1 {
				return fiber.NewError(fiber.StatusBadRequest, "top must be a positive integer")
			}
		}

		ranking, err := service.Rankings(date, top)
		if err != nil {
			if errors.Is(err, report.ErrNoLocations) {
				return fiber.NewError(fiber.StatusNotFound, "no reports for requested date")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to rank locations")
		}

		return c.JSON(ranking)
	})
}

// reportQuery holds query parameters identifying one location-day.
type reportQuery struct {
	Location string `validate:"required"`
	Date     string `validate:"required"`

	date time.Time
}

func parseReportQuery(c *fiber.Ctx) (reportQuery, error) {
	q := reportQuery{
		Location: c.Query("location"),
		Date:     c.Query("date"),
	}

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	date, err := time.Parse("2006-01-02", q.Date)
	if err != nil {
		return q, errors.New("invalid date format; use YYYY-MM-DD")
	}
	q.date = date

	return q, nil
}
