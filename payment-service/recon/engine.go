// Package recon keeps the local payment ledger consistent with the remote
// gateway: it forwards new payments, tolerates the gateway being down, and
// merges polled gateway state into local records on lookup.
package recon

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/gateway"
	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/model"
)

// PaymentStore is the slice of the persistence layer the engine needs.
// Implementations: store.PaymentStore (GORM/Postgres).
type PaymentStore interface {
	Create(ctx context.Context, p *model.Payment) error
	Get(ctx context.Context, id string) (*model.Payment, error)
	Save(ctx context.Context, p *model.Payment) error
}

// Gateway is the remote gateway transport.
// Implementations: gateway.Client (HTTP).
type Gateway interface {
	SubmitPayment(ctx context.Context, req model.SubmitRequest) (*gateway.SubmitResponse, error)
	AllStatuses(ctx context.Context) ([]gateway.StatusEntry, error)
}

// Events receives domain events after a successful write. Publish failures
// must not fail the request, so the methods return nothing.
// Implementations: kafka.Producer.
type Events interface {
	PublishPaymentAccepted(event interface{})
	PublishStatusChanged(event interface{})
}

// Cache invalidates cached list reads after a write.
// Implementations: cache.PaymentCache.
type Cache interface {
	InvalidateList(ctx context.Context)
}

type Engine struct {
	store  PaymentStore
	gw     Gateway
	events Events
	cache  Cache
	now    func() time.Time
}

// NewEngine wires the engine. events and cache may be nil when the process
// runs without kafka or redis.
func NewEngine(store PaymentStore, gw Gateway, events Events, cache Cache) *Engine {
	return &Engine{
		store:  store,
		gw:     gw,
		events: events,
		cache:  cache,
		now:    time.Now,
	}
}

// Submit persists a pending payment, then forwards it to the gateway. A
// transport failure is absorbed: the payment stays pending and unlinked so a
// later lookup can reconcile it, and the submission itself still succeeds.
// Store failures are the only errors surfaced.
func (e *Engine) Submit(ctx context.Context, req model.SubmitRequest) (*model.Payment, error) {
	now := e.now().UTC()
	p := &model.Payment{
		ID:              uuid.NewString(),
		SenderAccount:   req.SenderAccount,
		ReceiverAccount: req.ReceiverAccount,
		Amount:          req.Amount,
		Memo:            req.Memo,
		Status:          model.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := e.store.Create(ctx, p); err != nil {
		return nil, err
	}
	e.invalidate(ctx)

	resp, err := e.gw.SubmitPayment(ctx, req)
	if err != nil {
		log.Printf("gateway submit failed for payment %s, keeping it pending: %v", p.ID, err)
		return p, nil
	}

	cid := resp.ConfirmationID
	p.ConfirmationID = &cid
	// Normally pending, but a gateway with a zero delay may resolve at accept
	// time, so take whatever it returned.
	if resp.Status != "" {
		p.Status = resp.Status
	}
	p.UpdatedAt = e.now().UTC()
	if err := e.store.Save(ctx, p); err != nil {
		return nil, err
	}
	e.invalidate(ctx)

	if e.events != nil {
		e.events.PublishPaymentAccepted(map[string]interface{}{
			"event_type": "payment.accepted",
			"data": map[string]interface{}{
				"payment_id":      p.ID,
				"confirmation_id": cid,
				"status":          p.Status,
				"accepted_at":     p.UpdatedAt.Format(time.RFC3339),
			},
		})
	}

	return p, nil
}

// Lookup loads a payment and, if it is linked to the gateway, polls for the
// gateway's current view and merges any status change. A poll failure is
// absorbed and the last known local state returned. The merge only writes
// when the status actually differs, so repeated lookups never churn
// updated_at.
func (e *Engine) Lookup(ctx context.Context, id string) (*model.Payment, error) {
	p, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.ConfirmationID == nil {
		// Forwarding never succeeded, there is no remote record to reconcile
		// against yet.
		return p, nil
	}

	entries, err := e.gw.AllStatuses(ctx)
	if err != nil {
		log.Printf("gateway poll failed for payment %s, returning local state: %v", p.ID, err)
		return p, nil
	}

	for _, entry := range entries {
		if entry.ConfirmationID != *p.ConfirmationID {
			continue
		}
		if entry.Status == p.Status {
			break
		}

		prev := p.Status
		p.Status = entry.Status
		p.UpdatedAt = e.now().UTC()
		if err := e.store.Save(ctx, p); err != nil {
			return nil, err
		}
		e.invalidate(ctx)

		if e.events != nil {
			e.events.PublishStatusChanged(map[string]interface{}{
				"event_type": "payment.status.changed",
				"data": map[string]interface{}{
					"payment_id":      p.ID,
					"confirmation_id": *p.ConfirmationID,
					"from":            prev,
					"to":              p.Status,
					"changed_at":      p.UpdatedAt.Format(time.RFC3339),
				},
			})
		}
		break
	}

	return p, nil
}

func (e *Engine) invalidate(ctx context.Context) {
	if e.cache != nil {
		e.cache.InvalidateList(ctx)
	}
}
