package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/controller"
)

func RegisterPaymentRoutes(app *fiber.App, pc *controller.PaymentController) {
	app.Get("/health", pc.Health)

	p := app.Group("/payments")
	p.Post("/", pc.Create)
	p.Get("/", pc.List)
	p.Get("/:id", pc.Get)
}
