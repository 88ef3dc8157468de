// Package domain holds the payment records and value types the console
// presents. Everything here is immutable once fetched; a refund changes a
// payment only through a re-fetch of the whole collection.
package domain

import (
	"time"
)

// PaymentStatus is the processor-reported lifecycle state of a payment.
type PaymentStatus string

const (
	StatusPaid          PaymentStatus = "paid"
	StatusOpen          PaymentStatus = "open"
	StatusPending       PaymentStatus = "pending"
	StatusFailed        PaymentStatus = "failed"
	StatusExpired       PaymentStatus = "expired"
	StatusCanceled      PaymentStatus = "canceled"
	StatusRefunded      PaymentStatus = "refunded"
	StatusRefundPending PaymentStatus = "refund-pending"
)

// KnownStatuses lists every status in dropdown order.
func KnownStatuses() []PaymentStatus {
	return []PaymentStatus{
		StatusPaid,
		StatusOpen,
		StatusPending,
		StatusFailed,
		StatusExpired,
		StatusCanceled,
		StatusRefunded,
		StatusRefundPending,
	}
}

// Payment is a single transaction as returned by the processor. Identity is
// ID; Method may be empty when the payment has no method yet.
type Payment struct {
	ID           string
	Amount       Amount
	Description  string
	Status       PaymentStatus
	Method       string
	CreatedAt    time.Time
	DashboardURL string
}

// Refundable reports whether a refund may be offered for this payment.
// Status is the sole authority: only paid payments can be refunded.
func (p Payment) Refundable() bool {
	return p.Status == StatusPaid
}

// Settlement is the next scheduled payout of accumulated funds. A nil
// *Settlement means "no upcoming settlement", which is a valid terminal
// state, not an error.
type Settlement struct {
	Amount         Amount
	SettlementDate time.Time
}

// StatusFilter restricts the visible list to one status, or to all of them.
type StatusFilter string

// FilterAll is the sentinel selector that keeps every payment visible.
const FilterAll StatusFilter = "all"

func (f StatusFilter) Matches(s PaymentStatus) bool {
	return f == FilterAll || PaymentStatus(f) == s
}

func (f StatusFilter) IsAll() bool {
	return f == FilterAll
}
