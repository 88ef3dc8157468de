package console

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"merchant-console/internal/console/view"
	"merchant-console/internal/domain"
)

// RefundState is the per-invocation workflow state.
type RefundState int

const (
	RefundIdle RefundState = iota
	RefundConfirming
	RefundProcessing
	RefundSucceeded
	RefundFailed
)

// Refresher is the one signal the workflow emits: a request to re-fetch the
// collection after a successful refund. The workflow never patches payment
// state locally; the re-fetch is the single source of truth.
type Refresher interface {
	RequestRefresh()
}

// RefundWorkflow drives confirm → request → report for a single payment.
// Each Refund call is an independent state machine instance; concurrent
// refunds of distinct payments do not block one another.
type RefundWorkflow struct {
	client    ProcessorClient
	presenter PresentationPort
	refresher Refresher
	logger    *slog.Logger
}

func NewRefundWorkflow(client ProcessorClient, presenter PresentationPort, refresher Refresher, logger *slog.Logger) *RefundWorkflow {
	return &RefundWorkflow{
		client:    client,
		presenter: presenter,
		refresher: refresher,
		logger:    logger,
	}
}

// Refund runs the workflow for one payment. The refundability guard comes
// before any state entry; a non-paid payment never reaches confirmation.
// Declining the confirmation returns to idle with zero network effect.
func (w *RefundWorkflow) Refund(ctx context.Context, payment domain.Payment) (RefundState, error) {
	if !payment.Refundable() {
		return RefundIdle, fmt.Errorf("%w: payment %s is %s", domain.ErrNotRefundable, payment.ID, payment.Status)
	}

	run := refundRun{state: RefundIdle}

	if err := run.transition(RefundConfirming); err != nil {
		return run.state, err
	}

	formatted := view.FormatCurrency(payment.Amount.Value, payment.Amount.Currency)
	prompt := fmt.Sprintf("Refund %s to the customer?", formatted)
	if payment.Description != "" {
		prompt = fmt.Sprintf("Refund %s for %q to the customer?", formatted, payment.Description)
	}

	if !w.presenter.Confirm(prompt) {
		run.state = RefundIdle
		return run.state, nil
	}

	if err := run.transition(RefundProcessing); err != nil {
		return run.state, err
	}
	w.presenter.Notify(NoteInfo, "Refund in progress…")

	if err := w.client.CreateRefund(ctx, payment); err != nil {
		// APIError.Error() already prefers detail over title over the
		// bare status, so err.Error() is the most specific message.
		if terr := run.transition(RefundFailed); terr != nil {
			return run.state, terr
		}
		w.logger.Error("refund failed", "payment_id", payment.ID, "error", err)
		w.presenter.Notify(NoteError, "Refund failed: "+err.Error())
		run.state = RefundIdle
		return RefundFailed, err
	}

	if err := run.transition(RefundSucceeded); err != nil {
		return run.state, err
	}
	w.logger.Info("refund requested", "payment_id", payment.ID, "amount", payment.Amount.String())
	w.presenter.Notify(NoteSuccess, "Refunded "+formatted)
	w.refresher.RequestRefresh()

	run.state = RefundIdle
	return RefundSucceeded, nil
}

type refundRun struct {
	state RefundState
}

func (r *refundRun) transition(target RefundState) error {
	if err := r.canTransitionTo(target); err != nil {
		return err
	}
	r.state = target
	return nil
}

func (r *refundRun) canTransitionTo(target RefundState) error {
	switch r.state {
	case RefundIdle:
		return r.allow(target, RefundConfirming)
	case RefundConfirming:
		return r.allow(target, RefundProcessing, RefundIdle)
	case RefundProcessing:
		return r.allow(target, RefundSucceeded, RefundFailed)
	}
	return fmt.Errorf("invalid refund transition from %d to %d", r.state, target)
}

func (r *refundRun) allow(target RefundState, allowed ...RefundState) error {
	if slices.Contains(allowed, target) {
		return nil
	}
	return fmt.Errorf("invalid refund transition from %d to %d", r.state, target)
}
