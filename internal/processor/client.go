// Package processor implements the HTTP boundary to the payment processor
// API: the bounded payment-collection fetch, the next-settlement fetch, and
// the refund POST.
package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"merchant-console/internal/auth"
	"merchant-console/internal/config"
	"merchant-console/internal/console"
	"merchant-console/internal/domain"
)

type Client struct {
	baseURL    string
	pageLimit  int
	token      auth.Token
	httpClient *http.Client
}

// NewClient builds a client around the token the session bootstrap acquired.
func NewClient(cfg config.ProcessorConfig, token auth.Token) console.ProcessorClient {
	return &Client{
		baseURL:   cfg.BaseURL,
		pageLimit: cfg.PageLimit,
		token:     token,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

// ListPayments fetches a single bounded page of payments, newest first as
// the processor orders them.
func (c *Client) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	url := fmt.Sprintf("%s/v2/payments?limit=%d", c.baseURL, c.pageLimit)

	envelope, err := send[struct{}, paymentsEnvelope](c, ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	payments := make([]domain.Payment, 0, len(envelope.Embedded.Payments))
	for _, res := range envelope.Embedded.Payments {
		payments = append(payments, res.toDomain())
	}
	return payments, nil
}

// NextSettlement fetches the upcoming payout. A 404 or an amount-less body
// means no settlement is scheduled; that is reported as (nil, nil).
func (c *Client) NextSettlement(ctx context.Context) (*domain.Settlement, error) {
	url := fmt.Sprintf("%s/v2/settlements/next", c.baseURL)

	res, err := send[struct{}, settlementResource](c, ctx, http.MethodGet, url, nil)
	if err != nil {
		if apiErr, ok := IsAPIError(err); ok && apiErr.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	settlement, err := res.toDomain()
	if err != nil {
		return nil, fmt.Errorf("error parsing settlement date: %w", err)
	}
	return settlement, nil
}

// CreateRefund requests a refund of the payment's full outstanding amount in
// its original currency. Each call carries a fresh idempotency key so a
// transport-level replay cannot refund twice.
func (c *Client) CreateRefund(ctx context.Context, payment domain.Payment) error {
	url := fmt.Sprintf("%s/v2/payments/%s/refunds", c.baseURL, payment.ID)

	body := refundRequest{
		Amount: amountDTO{
			Value:    payment.Amount.Value,
			Currency: payment.Amount.Currency,
		},
	}

	_, err := send[refundRequest, json.RawMessage](c, ctx, http.MethodPost, url, &body)
	return err
}

func send[Req any, Resp any](c *Client, ctx context.Context, method, url string, reqBody *Req) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.token.AccessToken)

	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Idempotency-Key", uuid.New().String())
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		var errResp apiErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			return nil, &APIError{Status: resp.StatusCode}
		}
		return nil, &APIError{
			Status: resp.StatusCode,
			Title:  errResp.Title,
			Detail: errResp.Detail,
		}
	}

	var apiResp Resp
	if resp.StatusCode == http.StatusNoContent {
		return &apiResp, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &apiResp, nil
}
