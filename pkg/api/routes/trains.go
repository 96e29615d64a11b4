package routes

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	"github.com/railtrace/railtrace/pkg/dataaggregator"
	"github.com/railtrace/railtrace/pkg/dataaggregator/query"
	"github.com/railtrace/railtrace/pkg/dataaggregator/source/railapi"
	"github.com/railtrace/railtrace/pkg/raildata"
	"github.com/railtrace/railtrace/pkg/tracker"
)

func TrainsRouter(router fiber.Router) {
	router.Get("/:number/schedule", getTrainSchedule)
	router.Get("/:number/position", getTrainPosition)
}

func lookupTrainDetails(c *fiber.Ctx) (*raildata.TrainDetails, error) {
	number := c.Params("number")

	details, err := dataaggregator.Lookup[*raildata.TrainDetails](query.TrainSchedule{
		TrainNumber: number,
	})

	if err != nil {
		var scheduleErr *tracker.InvalidScheduleError

		switch {
		case errors.Is(err, railapi.ErrNoData):
			c.SendStatus(fiber.StatusNotFound)
			return nil, c.JSON(fiber.Map{
				"error": "No schedule found for this train number",
			})
		case errors.As(err, &scheduleErr):
			c.SendStatus(fiber.StatusBadGateway)
			return nil, c.JSON(fiber.Map{
				"error": "Provider returned an unusable schedule",
			})
		default:
			c.SendStatus(fiber.StatusBadGateway)
			return nil, c.JSON(fiber.Map{
				"error": "Failed to fetch train schedule",
			})
		}
	}

	return details, nil
}

func getTrainSchedule(c *fiber.Ctx) error {
	details, err := lookupTrainDetails(c)
	if details == nil {
		return err
	}

	detailsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, details)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not reduce train details",
		})
	}

	return c.JSON(detailsReduced)
}

type stopWithStatus struct {
	raildata.StationStop
	Status tracker.StationStatus `json:"status"`
}

func getTrainPosition(c *fiber.Ctx) error {
	details, err := lookupTrainDetails(c)
	if details == nil {
		return err
	}

	now := time.Now()

	journeyDate := raildata.DateOf(now)
	if dateQuery := c.Query("date"); dateQuery != "" {
		journeyDate, err = raildata.ParseCalendarDate(dateQuery)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter date should be a YYYY-MM-DD date",
			})
		}
	}

	expanded := c.QueryBool("expanded", false)

	position, err := tracker.Estimate(details.Schedule, journeyDate, now)
	if err != nil {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": "Provider returned an unusable schedule",
		})
	}

	displayed := tracker.DisplayStops(details.Schedule, position, expanded)

	stops := make([]stopWithStatus, 0, len(displayed))
	for _, stop := range displayed {
		stops = append(stops, stopWithStatus{
			StationStop: stop,
			Status:      position.StationStatus(stop.Sequence - 1),
		})
	}

	return c.JSON(fiber.Map{
		"train_number": details.TrainNumber,
		"train_name":   details.TrainName,
		"journey_date": journeyDate.String(),
		"position":     float64(position),
		"total_stops":  len(details.Schedule),
		"stops":        stops,
	})
}
