package console

import (
	"context"

	"merchant-console/internal/console/view"
	"merchant-console/internal/domain"
)

// ProcessorClient is the outbound boundary to the payment processor. The
// console never talks HTTP directly; implementations live in
// internal/processor.
type ProcessorClient interface {
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	NextSettlement(ctx context.Context) (*domain.Settlement, error)
	CreateRefund(ctx context.Context, payment domain.Payment) error
}

// NoteKind classifies a user-facing notification.
type NoteKind int

const (
	NoteInfo NoteKind = iota
	NoteSuccess
	NoteError
)

// PresentationPort is the host surface the console renders through. The
// core only supplies data and receives user intents; lists, toasts and
// confirmation dialogs are the host's problem.
type PresentationPort interface {
	RenderList(rows []view.PaymentRow)
	Notify(kind NoteKind, message string)
	Confirm(prompt string) bool
}
