package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/model"
	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/store"
)

func newTestStore(t *testing.T) *store.PaymentStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "payments.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.Payment{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return store.New(db)
}

func testPayment(id string) *model.Payment {
	now := time.Now().UTC()
	return &model.Payment{
		ID:              id,
		SenderAccount:   "111111111",
		ReceiverAccount: "123456780",
		Amount:          42.50,
		Memo:            "invoice 7",
		Status:          model.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.Create(ctx, testPayment("pay-1")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := s.Get(ctx, "pay-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ReceiverAccount != "123456780" {
		t.Fatalf("receiver_account = %q", got.ReceiverAccount)
	}
	if got.ConfirmationID != nil {
		t.Fatal("new payment must be unlinked")
	}
	if got.Status != model.StatusPending {
		t.Fatalf("status = %q", got.Status)
	}
}

func TestGetUnknownID(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSavePersistsMerge(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p := testPayment("pay-2")
	if err := s.Create(ctx, p); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	cid := "conf-abc"
	p.ConfirmationID = &cid
	p.Status = model.StatusSettled
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Get(ctx, "pay-2")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ConfirmationID == nil || *got.ConfirmationID != "conf-abc" {
		t.Fatal("confirmation id not persisted")
	}
	if got.Status != model.StatusSettled {
		t.Fatalf("status = %q", got.Status)
	}
}

func TestGetByConfirmationID(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p := testPayment("pay-3")
	cid := "conf-xyz"
	p.ConfirmationID = &cid
	if err := s.Create(ctx, p); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := s.GetByConfirmationID(ctx, "conf-xyz")
	if err != nil {
		t.Fatalf("GetByConfirmationID failed: %v", err)
	}
	if got.ID != "pay-3" {
		t.Fatalf("id = %q", got.ID)
	}

	if _, err := s.GetByConfirmationID(ctx, "conf-unknown"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListReturnsEmptySliceNotNil(t *testing.T) {
	s := newTestStore(t)

	items, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if items == nil {
		t.Fatal("List must return an empty slice, not nil")
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestListOrdersByCreation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first := testPayment("pay-a")
	first.CreatedAt = time.Now().UTC().Add(-time.Hour)
	second := testPayment("pay-b")

	if err := s.Create(ctx, second); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := s.Create(ctx, first); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "pay-a" || items[1].ID != "pay-b" {
		t.Fatalf("wrong order: %s, %s", items[0].ID, items[1].ID)
	}
}
