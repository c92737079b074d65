// Package sink is the boundary in front of the order ledger: an outbound
// client that posts accepted orders to the ledger writer, and the relay
// service that guards that path (config checks, contact checks, honeypot).
package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/chucksbakes/chucks-bakes-backend/internal/order"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/config"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/types"
)

// ForwardPayload is what the relay sends the ledger writer: the order itself
// plus the shared secret injected server-side. The honeypot field never
// travels past the relay.
type ForwardPayload struct {
	order.RequestItem
	Token string `json:"token"`
}

// LedgerCaller posts one order to the ledger writer endpoint.
type LedgerCaller interface {
	Append(ctx context.Context, payload ForwardPayload) (types.LedgerResponse, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the HTTP ledger caller. Calls carry a bounded timeout and a
// single retry on transport errors only; timeouts and application-level
// failures are never retried because the ledger append is not idempotent
// and either may have already landed a row.
type Client struct {
	url        string
	timeout    time.Duration
	maxRetries int
	doer       httpDoer
}

func NewClient(cfg config.SinkConfig) *Client {
	return &Client{
		url:        cfg.LedgerURL,
		timeout:    cfg.CallTimeout,
		maxRetries: cfg.MaxRetries,
		doer:       &http.Client{Timeout: cfg.CallTimeout},
	}
}

func (c *Client) Append(ctx context.Context, payload ForwardPayload) (types.LedgerResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return types.LedgerResponse{}, fmt.Errorf("encoding ledger payload: %w", err)
	}

	var lastErr error
	attempts := c.maxRetries + 1
	if attempts < 1 {
		attempts = 1
	}
	for attempt := 0; attempt < attempts; attempt++ {
		resp, err := c.post(ctx, body)
		if err != nil {
			lastErr = err
			// A timed-out or canceled request may have reached the ledger;
			// re-posting it could append the order twice.
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				break
			}
			continue
		}
		return resp, nil
	}
	return types.LedgerResponse{}, lastErr
}

func (c *Client) post(ctx context.Context, body []byte) (types.LedgerResponse, error) {
	callCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return types.LedgerResponse{}, fmt.Errorf("building ledger request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil {
		return types.LedgerResponse{}, fmt.Errorf("calling ledger: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Application outcome, not a transport fault: surface it without retrying.
		return types.LedgerResponse{StatusCode: resp.StatusCode, Message: resp.Status}, nil
	}

	var ledgerResp types.LedgerResponse
	if err := json.NewDecoder(resp.Body).Decode(&ledgerResp); err != nil {
		return types.LedgerResponse{}, fmt.Errorf("decoding ledger response: %w", err)
	}
	return ledgerResp, nil
}
