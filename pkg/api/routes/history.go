package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/railtrace/railtrace/pkg/history"
)

func HistoryRouter(router fiber.Router) {
	router.Get("/", listRecentSearches)
	router.Post("/:number", addRecentSearch)
	router.Delete("/:number", removeRecentSearch)
}

func listRecentSearches(c *fiber.Ctx) error {
	searches, err := history.List(c.Context())
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not load recent searches",
		})
	}

	if searches == nil {
		searches = []string{}
	}

	return c.JSON(fiber.Map{
		"recent_searches": searches,
	})
}

func addRecentSearch(c *fiber.Ctx) error {
	number := c.Params("number")

	if !isPNRNumber(number) {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "PNR number must be 10 digits",
		})
	}

	if err := history.Add(c.Context(), number); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not record recent search",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func removeRecentSearch(c *fiber.Ctx) error {
	if err := history.Remove(c.Context(), c.Params("number")); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not remove recent search",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
