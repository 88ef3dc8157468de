package domain

import "errors"

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrMissingCurrency = errors.New("currency is required")
	ErrNotRefundable   = errors.New("payment is not refundable")
)
