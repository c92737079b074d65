package sink

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/chucksbakes/chucks-bakes-backend/internal/order"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/types"
)

type scriptedDoer struct {
	calls     int
	responses []func() (*http.Response, error)
}

func (s *scriptedDoer) Do(req *http.Request) (*http.Response, error) {
	idx := s.calls
	s.calls++
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return s.responses[idx]()
}

func okResponse(resp types.LedgerResponse) func() (*http.Response, error) {
	body, _ := json.Marshal(resp)
	return func() (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Status:     "200 OK",
			Body:       io.NopCloser(strings.NewReader(string(body))),
		}, nil
	}
}

func transportError() func() (*http.Response, error) {
	return func() (*http.Response, error) {
		return nil, errors.New("connection reset")
	}
}

func httpError(status int, text string) func() (*http.Response, error) {
	return func() (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Status:     text,
			Body:       io.NopCloser(strings.NewReader("")),
		}, nil
	}
}

func testPayload() ForwardPayload {
	return ForwardPayload{
		RequestItem: order.RequestItem{
			ItemType: order.ItemBrownies,
			Treat:    &order.TreatOrder{Type: order.ItemBrownies, Quantity: 16},
			Contact:  order.ContactInfo{Name: "Sam Lee", Email: "sam@example.com"},
		},
		Token: "secret",
	}
}

func newTestClient(doer httpDoer, maxRetries int) *Client {
	return &Client{
		url:        "https://ledger.internal/orders",
		timeout:    time.Second,
		maxRetries: maxRetries,
		doer:       doer,
	}
}

func TestAppendSuccess(t *testing.T) {
	doer := &scriptedDoer{responses: []func() (*http.Response, error){
		okResponse(types.LedgerResponse{StatusCode: 200, Message: "Order received successfully"}),
	}}
	client := newTestClient(doer, 1)

	resp, err := client.Append(context.Background(), testPayload())
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if resp.StatusCode != 200 || resp.Message != "Order received successfully" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if doer.calls != 1 {
		t.Fatalf("expected 1 call, got %d", doer.calls)
	}
}

func TestAppendRetriesTransportErrorOnce(t *testing.T) {
	doer := &scriptedDoer{responses: []func() (*http.Response, error){
		transportError(),
		okResponse(types.LedgerResponse{StatusCode: 200, Message: "Order received successfully"}),
	}}
	client := newTestClient(doer, 1)

	resp, err := client.Append(context.Background(), testPayload())
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if doer.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", doer.calls)
	}
}

func TestAppendGivesUpAfterRetries(t *testing.T) {
	doer := &scriptedDoer{responses: []func() (*http.Response, error){transportError()}}
	client := newTestClient(doer, 1)

	_, err := client.Append(context.Background(), testPayload())
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if doer.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", doer.calls)
	}
}

func TestAppendDoesNotRetryTimeouts(t *testing.T) {
	doer := &scriptedDoer{responses: []func() (*http.Response, error){
		func() (*http.Response, error) { return nil, context.DeadlineExceeded },
		okResponse(types.LedgerResponse{StatusCode: 200, Message: "Order received successfully"}),
	}}
	client := newTestClient(doer, 3)

	_, err := client.Append(context.Background(), testPayload())
	if err == nil {
		t.Fatal("expected a timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v", err)
	}
	if doer.calls != 1 {
		t.Fatalf("a timed-out call may already have appended and must not be re-posted, got %d calls", doer.calls)
	}
}

func TestAppendDoesNotRetryHTTPErrors(t *testing.T) {
	doer := &scriptedDoer{responses: []func() (*http.Response, error){
		httpError(http.StatusUnauthorized, "401 Unauthorized"),
	}}
	client := newTestClient(doer, 3)

	resp, err := client.Append(context.Background(), testPayload())
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if doer.calls != 1 {
		t.Fatalf("an application-level rejection must not be retried, got %d calls", doer.calls)
	}
}
