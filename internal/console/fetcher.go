package console

import (
	"context"
	"log/slog"
	"sync"

	"merchant-console/internal/domain"
)

// Fetcher owns the payment collection and the settlement forecast. Each
// refresh replaces them wholesale; previous data stays visible while a
// refresh is in flight, and the two fetches carry independent loading
// flags so the UI can tell them apart.
type Fetcher struct {
	client ProcessorClient
	logger *slog.Logger

	mu                sync.RWMutex
	payments          []domain.Payment
	paymentsLoaded    bool
	paymentsLoading   bool
	paymentsErr       error
	settlement        *domain.Settlement
	settlementLoaded  bool
	settlementLoading bool
	settlementErr     error

	refresh chan struct{}
}

func NewFetcher(client ProcessorClient, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client:  client,
		logger:  logger,
		refresh: make(chan struct{}, 1),
	}
}

// Refresh runs the payment and settlement fetches concurrently and joins
// them. A failed fetch records its error but keeps the previously loaded
// data in place.
func (f *Fetcher) Refresh(ctx context.Context) {
	f.mu.Lock()
	f.paymentsLoading = true
	f.settlementLoading = true
	f.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		payments, err := f.client.ListPayments(ctx)

		f.mu.Lock()
		defer f.mu.Unlock()
		f.paymentsLoading = false
		f.paymentsErr = err
		if err != nil {
			f.logger.Error("payment fetch failed", "error", err)
			return
		}
		f.payments = payments
		f.paymentsLoaded = true
	}()

	go func() {
		defer wg.Done()
		settlement, err := f.client.NextSettlement(ctx)

		f.mu.Lock()
		defer f.mu.Unlock()
		f.settlementLoading = false
		f.settlementErr = err
		if err != nil {
			f.logger.Error("settlement fetch failed", "error", err)
			return
		}
		f.settlement = settlement
		f.settlementLoaded = true
	}()

	wg.Wait()
}

// Payments returns the current collection and whether a fetch has ever
// completed. loaded=false distinguishes "still loading" from a genuinely
// empty account.
func (f *Fetcher) Payments() (payments []domain.Payment, loaded bool, err error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.payments, f.paymentsLoaded, f.paymentsErr
}

func (f *Fetcher) PaymentsLoading() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.paymentsLoading
}

// Forecast reports the settlement fetch as a three-way state: still
// loading, loaded with no payout scheduled, or loaded with a settlement.
func (f *Fetcher) Forecast() Forecast {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if !f.settlementLoaded {
		return Forecast{Kind: ForecastLoading}
	}
	if f.settlement == nil {
		return Forecast{Kind: ForecastNone}
	}
	return Forecast{Kind: ForecastReady, Settlement: f.settlement}
}

func (f *Fetcher) SettlementErr() error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.settlementErr
}

// RequestRefresh records a pending refresh trigger without blocking. The
// refund workflow emits this event on success; the owner of the fetch loop
// consumes it.
func (f *Fetcher) RequestRefresh() {
	select {
	case f.refresh <- struct{}{}:
	default:
	}
}

// RefreshRequests exposes the pending-refresh events.
func (f *Fetcher) RefreshRequests() <-chan struct{} {
	return f.refresh
}
