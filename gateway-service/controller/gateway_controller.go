package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ZRiley36/dragin-take-home-assignment/gateway-service/model"
	"github.com/ZRiley36/dragin-take-home-assignment/gateway-service/storage"
)

const maxMemoLength = 255

type GatewayController struct {
	Store *storage.Store
}

func NewGatewayController(store *storage.Store) *GatewayController {
	return &GatewayController{Store: store}
}

func (gc *GatewayController) Submit(c *fiber.Ctx) error {
	var body model.Submission
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if msg := validateSubmission(body); msg != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": msg,
		})
	}

	rec := gc.Store.Submit(body)

	return c.Status(fiber.StatusCreated).JSON(model.SubmitResponse{
		ConfirmationID: rec.ConfirmationID,
		Status:         rec.Status,
		CreatedAt:      rec.CreatedAt,
	})
}

func (gc *GatewayController) ListStatuses(c *fiber.Ctx) error {
	records := gc.Store.ListAll()

	out := make([]model.StatusEntry, 0, len(records))
	for _, rec := range records {
		out = append(out, model.StatusEntry{
			ConfirmationID: rec.ConfirmationID,
			Status:         rec.Status,
			CreatedAt:      rec.CreatedAt,
			UpdatedAt:      rec.UpdatedAt,
		})
	}

	return c.JSON(out)
}

func (gc *GatewayController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

func validateSubmission(sub model.Submission) string {
	if sub.SenderAccount == "" {
		return "sender_account is required"
	}
	if sub.ReceiverAccount == "" {
		return "receiver_account is required"
	}
	if sub.Amount <= 0 {
		return "amount must be greater than 0"
	}
	if len(sub.Memo) > maxMemoLength {
		return "memo must be at most 255 characters"
	}
	return ""
}
