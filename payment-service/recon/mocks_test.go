package recon

import (
	"context"
	"errors"
	"sync"

	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/gateway"
	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/model"
)

// Common test errors
var (
	errMockStore     = errors.New("mock store error")
	errMockTransport = &gateway.TransportError{Op: "submit", Err: errors.New("connection refused")}
)

// mockStore implements PaymentStore in memory. Get and Create copy records so
// engine-side mutation is only visible after Save, like a real database.
type mockStore struct {
	mu        sync.Mutex
	payments  map[string]model.Payment
	createErr error
	getErr    error
	saveErr   error

	createCalls int
	saveCalls   int
}

func newMockStore() *mockStore {
	return &mockStore{payments: make(map[string]model.Payment)}
}

func (m *mockStore) Create(ctx context.Context, p *model.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	m.payments[p.ID] = *p
	return nil
}

func (m *mockStore) Get(ctx context.Context, id string) (*model.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getErr != nil {
		return nil, m.getErr
	}
	p, ok := m.payments[id]
	if !ok {
		return nil, errNotFound
	}
	copied := p
	return &copied, nil
}

func (m *mockStore) Save(ctx context.Context, p *model.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.payments[p.ID] = *p
	return nil
}

func (m *mockStore) stored(id string) model.Payment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.payments[id]
}

var errNotFound = errors.New("payment not found")

// mockGateway implements Gateway with canned responses.
type mockGateway struct {
	submitResp *gateway.SubmitResponse
	submitErr  error
	statuses   []gateway.StatusEntry
	statusErr  error

	submitCalls int
	statusCalls int
}

func (m *mockGateway) SubmitPayment(ctx context.Context, req model.SubmitRequest) (*gateway.SubmitResponse, error) {
	m.submitCalls++
	if m.submitErr != nil {
		return nil, m.submitErr
	}
	return m.submitResp, nil
}

func (m *mockGateway) AllStatuses(ctx context.Context) ([]gateway.StatusEntry, error) {
	m.statusCalls++
	if m.statusErr != nil {
		return nil, m.statusErr
	}
	return m.statuses, nil
}

// mockEvents records published events.
type mockEvents struct {
	accepted []interface{}
	changed  []interface{}
}

func (m *mockEvents) PublishPaymentAccepted(event interface{}) {
	m.accepted = append(m.accepted, event)
}

func (m *mockEvents) PublishStatusChanged(event interface{}) {
	m.changed = append(m.changed, event)
}

// mockCache counts invalidations.
type mockCache struct {
	invalidations int
}

func (m *mockCache) InvalidateList(ctx context.Context) {
	m.invalidations++
}

func newTestEngine(store *mockStore, gw *mockGateway) (*Engine, *mockEvents, *mockCache) {
	events := &mockEvents{}
	cache := &mockCache{}
	return NewEngine(store, gw, events, cache), events, cache
}
