// Package storage holds every payment the gateway has ever accepted.
// Records live for the process lifetime and are never deleted; the only
// mutation is the one-way pending -> terminal transition applied by
// AdvanceDue.
package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ZRiley36/dragin-take-home-assignment/gateway-service/model"
	"github.com/ZRiley36/dragin-take-home-assignment/gateway-service/resolver"
)

type Store struct {
	mu       sync.Mutex
	payments map[string]*model.PaymentRecord
	delay    time.Duration
}

func New(delay time.Duration) *Store {
	return &Store{
		payments: make(map[string]*model.PaymentRecord),
		delay:    delay,
	}
}

// Submit accepts a payment, assigns a confirmation id and stores it pending.
func (s *Store) Submit(sub model.Submission) model.PaymentRecord {
	now := time.Now().UTC()
	rec := &model.PaymentRecord{
		ConfirmationID:  uuid.NewString(),
		SenderAccount:   sub.SenderAccount,
		ReceiverAccount: sub.ReceiverAccount,
		Amount:          sub.Amount,
		Memo:            sub.Memo,
		Status:          model.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	s.mu.Lock()
	s.payments[rec.ConfirmationID] = rec
	s.mu.Unlock()

	return *rec
}

// AdvanceDue resolves every pending record whose delay has elapsed as of now
// and returns how many records transitioned. Terminal records are left
// untouched, so calling it repeatedly is safe.
func (s *Store) AdvanceDue(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved := 0
	for _, rec := range s.payments {
		if rec.Status != model.StatusPending {
			continue
		}
		next := resolver.Resolve(rec.ReceiverAccount, now.Sub(rec.CreatedAt), s.delay)
		if next == model.StatusPending {
			continue
		}
		rec.Status = next
		rec.UpdatedAt = now
		resolved++
	}
	return resolved
}

// ListAll advances due records, then returns a snapshot of every record ever
// accepted. Resolution happens nowhere else: a payment leaves pending only
// because somebody polled.
func (s *Store) ListAll() []model.PaymentRecord {
	s.AdvanceDue(time.Now().UTC())

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.PaymentRecord, 0, len(s.payments))
	for _, rec := range s.payments {
		out = append(out, *rec)
	}
	return out
}

// Get returns the record for a confirmation id, if it exists.
func (s *Store) Get(confirmationID string) (model.PaymentRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.payments[confirmationID]
	if !ok {
		return model.PaymentRecord{}, false
	}
	return *rec, true
}
