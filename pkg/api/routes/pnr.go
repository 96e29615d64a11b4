package routes

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"

	"github.com/railtrace/railtrace/pkg/dataaggregator"
	"github.com/railtrace/railtrace/pkg/dataaggregator/query"
	"github.com/railtrace/railtrace/pkg/dataaggregator/source/railapi"
	"github.com/railtrace/railtrace/pkg/history"
	"github.com/railtrace/railtrace/pkg/raildata"
	"github.com/railtrace/railtrace/pkg/refresh"
	"github.com/railtrace/railtrace/pkg/share"
)

func PNRRouter(router fiber.Router) {
	router.Get("/:number", getPNRStatus)
	router.Get("/:number/share", getPNRShareText)
	router.Get("/:number/ticket", getPNRTicket)
}

func isPNRNumber(value string) bool {
	if len(value) != 10 {
		return false
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func lookupPNRStatus(c *fiber.Ctx) (*raildata.PNRStatus, error) {
	number := c.Params("number")

	if !isPNRNumber(number) {
		c.SendStatus(fiber.StatusBadRequest)
		return nil, c.JSON(fiber.Map{
			"error": "PNR number must be 10 digits",
		})
	}

	status, err := dataaggregator.Lookup[*raildata.PNRStatus](query.PNRStatus{
		PNRNumber: number,
	})

	if err != nil {
		if errors.Is(err, railapi.ErrNoData) {
			c.SendStatus(fiber.StatusNotFound)
			return nil, c.JSON(fiber.Map{
				"error": "No data found for this PNR number",
			})
		}

		c.SendStatus(fiber.StatusBadGateway)
		return nil, c.JSON(fiber.Map{
			"error": "Failed to fetch PNR status",
		})
	}

	if historyErr := history.Add(c.Context(), number); historyErr != nil {
		log.Warn().Err(historyErr).Msg("Failed to record recent search")
	}
	if enqueueErr := refresh.Enqueue(number); enqueueErr != nil {
		log.Warn().Err(enqueueErr).Msg("Failed to enqueue status refresh")
	}

	return status, nil
}

func getPNRStatus(c *fiber.Ctx) error {
	status, err := lookupPNRStatus(c)
	if status == nil {
		return err
	}

	statusReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, status)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not reduce PNR status",
		})
	}

	return c.JSON(statusReduced)
}

func getPNRShareText(c *fiber.Ctx) error {
	status, err := lookupPNRStatus(c)
	if status == nil {
		return err
	}

	return c.SendString(share.SummaryText(status))
}

func getPNRTicket(c *fiber.Ctx) error {
	status, err := lookupPNRStatus(c)
	if status == nil {
		return err
	}

	return c.SendString(share.TicketText(status, time.Now()))
}
