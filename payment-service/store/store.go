// Package store persists local payment records.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/model"
)

// ErrNotFound is returned when no payment exists for the requested id.
var ErrNotFound = errors.New("payment not found")

type PaymentStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *PaymentStore {
	return &PaymentStore{db: db}
}

func (s *PaymentStore) Create(ctx context.Context, p *model.Payment) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *PaymentStore) Get(ctx context.Context, id string) (*model.Payment, error) {
	var p model.Payment
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByConfirmationID is the reverse lookup from a gateway confirmation id.
func (s *PaymentStore) GetByConfirmationID(ctx context.Context, confirmationID string) (*model.Payment, error) {
	var p model.Payment
	err := s.db.WithContext(ctx).First(&p, "confirmation_id = ?", confirmationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PaymentStore) Save(ctx context.Context, p *model.Payment) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *PaymentStore) List(ctx context.Context) ([]model.Payment, error) {
	var items []model.Payment
	if err := s.db.WithContext(ctx).Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Payment{}
	}
	return items, nil
}
