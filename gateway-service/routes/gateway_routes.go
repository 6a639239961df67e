package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ZRiley36/dragin-take-home-assignment/gateway-service/controller"
	"github.com/ZRiley36/dragin-take-home-assignment/gateway-service/storage"
)

func RegisterGatewayRoutes(app *fiber.App, store *storage.Store) {
	gc := controller.NewGatewayController(store)

	app.Post("/submit", gc.Submit)
	app.Get("/status", gc.ListStatuses)
	app.Get("/health", gc.Health)
}
