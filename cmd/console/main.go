package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"merchant-console/internal/auth"
	"merchant-console/internal/config"
	"merchant-console/internal/console"
	"merchant-console/internal/console/term"
	"merchant-console/internal/console/view"
	"merchant-console/internal/domain"
	"merchant-console/internal/processor"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	presenter := term.NewPresenter(os.Stdout, os.Stdin)

	tokens := auth.NewTokenSource(cfg.Auth, cfg.Processor.ConnTimeout)
	session := console.NewSession(tokens, presenter, logger)

	ctx := context.Background()
	if err := session.Start(ctx); err != nil {
		// The session already surfaced the failure; re-invoking the
		// command is the retry.
		os.Exit(1)
	}

	token, _ := session.Token()

	client := processor.NewClient(cfg.Processor, token)
	if cfg.Retry.MaxRetries > 0 {
		client = processor.NewRetryClient(client, cfg.Retry)
	}

	fetcher := console.NewFetcher(client, logger)
	workflow := console.NewRefundWorkflow(client, presenter, fetcher, logger)

	command := "list"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "list":
		filter := domain.FilterAll
		if len(os.Args) > 2 {
			filter = domain.StatusFilter(os.Args[2])
		}
		runList(ctx, fetcher, presenter, filter)

	case "summary":
		runSummary(ctx, fetcher, presenter, cfg.Processor.DashboardURL)

	case "refund":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: console refund <payment-id>")
			os.Exit(2)
		}
		if err := runRefund(ctx, fetcher, workflow, os.Args[2]); err != nil {
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (expected list, summary or refund)\n", command)
		os.Exit(2)
	}
}

func runList(ctx context.Context, fetcher *console.Fetcher, presenter *term.Presenter, filter domain.StatusFilter) {
	fetcher.Refresh(ctx)

	payments, loaded, err := fetcher.Payments()
	if err != nil {
		presenter.Notify(console.NoteError, "Could not load payments: "+err.Error())
		return
	}

	visible := console.FilterPayments(payments, filter)
	if len(visible) == 0 {
		presenter.Notify(console.NoteInfo, view.EmptyMessage(filter, loaded))
		return
	}

	presenter.RenderList(view.BuildRows(visible, time.Now()))
}

func runSummary(ctx context.Context, fetcher *console.Fetcher, presenter *term.Presenter, dashboardURL string) {
	fetcher.Refresh(ctx)

	payments, _, err := fetcher.Payments()
	if err != nil {
		presenter.Notify(console.NoteError, "Could not load payments: "+err.Error())
		return
	}
	if err := fetcher.SettlementErr(); err != nil {
		presenter.Notify(console.NoteError, "Could not load settlement forecast: "+err.Error())
	}

	revenue := console.AggregateToday(payments, time.Now())
	forecast := fetcher.Forecast()

	summary := view.BuildSummary(
		revenue.Total,
		revenue.Count,
		forecast.Settlement,
		forecast.Kind == console.ForecastLoading,
		view.DashboardTodayURL(dashboardURL, time.Now()),
	)

	fmt.Println(summary.Headline)
	fmt.Println(summary.CountLine)
	fmt.Println(summary.ForecastLine)
	if summary.DashboardURL != "" {
		fmt.Println("Dashboard:", summary.DashboardURL)
	}
}

func runRefund(ctx context.Context, fetcher *console.Fetcher, workflow *console.RefundWorkflow, paymentID string) error {
	fetcher.Refresh(ctx)

	payments, _, err := fetcher.Payments()
	if err != nil {
		return fmt.Errorf("could not load payments: %w", err)
	}

	var payment *domain.Payment
	for i := range payments {
		if payments[i].ID == paymentID {
			payment = &payments[i]
			break
		}
	}
	if payment == nil {
		fmt.Fprintf(os.Stderr, "payment %s not found\n", paymentID)
		return fmt.Errorf("payment %s not found", paymentID)
	}

	if _, err := workflow.Refund(ctx, *payment); err != nil {
		return err
	}

	// A successful refund asks for a re-fetch so the list and aggregates
	// reflect the new status.
	select {
	case <-fetcher.RefreshRequests():
		fetcher.Refresh(ctx)
	default:
	}

	return nil
}
