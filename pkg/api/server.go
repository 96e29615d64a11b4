package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railtrace/railtrace/pkg/api/routes"
)

// CreateServer builds the fiber app with all routes mounted. Split from
// SetupServer so tests can drive it without a listener.
func CreateServer() *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.PNRRouter(group.Group("/pnr"))
	routes.TrainsRouter(group.Group("/trains"))
	routes.HistoryRouter(group.Group("/history"))

	return webApp
}

func SetupServer(listen string) error {
	return CreateServer().Listen(listen)
}
