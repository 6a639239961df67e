package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/cache"
	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/idempotency"
	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/model"
	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/recon"
	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/store"
)

type PaymentController struct {
	Engine *recon.Engine
	Store  *store.PaymentStore
	Cache  *cache.PaymentCache
	Keys   *idempotency.Store
}

// NewPaymentController wires the handlers. cache and keys may be nil when the
// process runs without redis or an idempotency database.
func NewPaymentController(engine *recon.Engine, st *store.PaymentStore, c *cache.PaymentCache, keys *idempotency.Store) *PaymentController {
	return &PaymentController{Engine: engine, Store: st, Cache: c, Keys: keys}
}

func (pc *PaymentController) Create(c *fiber.Ctx) error {
	var body model.SubmitRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if msg := validateSubmit(body); msg != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": msg,
		})
	}

	key := c.Get("Idempotency-Key")
	if key != "" && pc.Keys != nil {
		if id, ok, err := pc.Keys.Lookup(key); err == nil && ok {
			if p, err := pc.Store.Get(c.Context(), id); err == nil {
				// Replay of an already-processed submission.
				return c.JSON(p)
			}
		}
	}

	p, err := pc.Engine.Submit(c.Context(), body)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if key != "" && pc.Keys != nil {
		owner, err := pc.Keys.Remember(key, p.ID)
		if err != nil {
			log.Printf("failed to record idempotency key %q: %v", key, err)
		} else if owner != p.ID {
			// A concurrent retry won the key; hand back its record.
			if orig, err := pc.Store.Get(c.Context(), owner); err == nil {
				return c.JSON(orig)
			}
		}
	}

	return c.Status(fiber.StatusCreated).JSON(p)
}

func (pc *PaymentController) Get(c *fiber.Ctx) error {
	p, err := pc.Engine.Lookup(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "payment not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(p)
}

func (pc *PaymentController) List(c *fiber.Ctx) error {
	ctx := c.Context()

	if pc.Cache != nil {
		if items, ok := pc.Cache.GetList(ctx); ok {
			return c.JSON(items)
		}
	}

	items, err := pc.Store.List(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if pc.Cache != nil {
		pc.Cache.SetList(ctx, items)
	}

	return c.JSON(items)
}

func (pc *PaymentController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

func validateSubmit(req model.SubmitRequest) string {
	if req.SenderAccount == "" {
		return "sender_account is required"
	}
	if req.ReceiverAccount == "" {
		return "receiver_account is required"
	}
	if req.Amount <= 0 {
		return "amount must be greater than 0"
	}
	return ""
}
