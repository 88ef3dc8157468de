package console_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"merchant-console/internal/auth"
	"merchant-console/internal/console"
	"merchant-console/internal/console/view"
	"merchant-console/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockProcessorClient
type MockProcessorClient struct {
	mu    sync.Mutex
	calls map[string]int

	ListPaymentsFn   func(ctx context.Context) ([]domain.Payment, error)
	NextSettlementFn func(ctx context.Context) (*domain.Settlement, error)
	CreateRefundFn   func(ctx context.Context, payment domain.Payment) error
}

func (m *MockProcessorClient) inc(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

func (m *MockProcessorClient) GetCalls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *MockProcessorClient) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	m.inc("ListPayments")
	if m.ListPaymentsFn != nil {
		return m.ListPaymentsFn(ctx)
	}
	return nil, nil
}

func (m *MockProcessorClient) NextSettlement(ctx context.Context) (*domain.Settlement, error) {
	m.inc("NextSettlement")
	if m.NextSettlementFn != nil {
		return m.NextSettlementFn(ctx)
	}
	return nil, nil
}

func (m *MockProcessorClient) CreateRefund(ctx context.Context, payment domain.Payment) error {
	m.inc("CreateRefund")
	if m.CreateRefundFn != nil {
		return m.CreateRefundFn(ctx, payment)
	}
	return nil
}

// MockPresenter records notifications and answers confirmations.
type MockPresenter struct {
	mu sync.Mutex

	ConfirmAnswer bool
	ConfirmFn     func(prompt string) bool

	Rendered      [][]view.PaymentRow
	Prompts       []string
	Notifications []Notification
}

type Notification struct {
	Kind    console.NoteKind
	Message string
}

func (m *MockPresenter) RenderList(rows []view.PaymentRow) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rendered = append(m.Rendered, rows)
}

func (m *MockPresenter) Notify(kind console.NoteKind, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notifications = append(m.Notifications, Notification{Kind: kind, Message: message})
}

func (m *MockPresenter) Confirm(prompt string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Prompts = append(m.Prompts, prompt)
	if m.ConfirmFn != nil {
		return m.ConfirmFn(prompt)
	}
	return m.ConfirmAnswer
}

func (m *MockPresenter) NotificationsOf(kind console.NoteKind) []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Notification
	for _, n := range m.Notifications {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// MockTokenSource
type MockTokenSource struct {
	mu       sync.Mutex
	acquires int

	AcquireFn func(ctx context.Context) (auth.Token, error)
}

func (m *MockTokenSource) Acquire(ctx context.Context) (auth.Token, error) {
	m.mu.Lock()
	m.acquires++
	m.mu.Unlock()
	if m.AcquireFn != nil {
		return m.AcquireFn(ctx)
	}
	return auth.Token{AccessToken: "test-token"}, nil
}

func (m *MockTokenSource) Acquires() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.acquires
}

// MockRefresher counts re-fetch requests emitted by the refund workflow.
type MockRefresher struct {
	mu       sync.Mutex
	requests int
}

func (m *MockRefresher) RequestRefresh() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests++
}

func (m *MockRefresher) Requests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}
