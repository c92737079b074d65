package sink

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/chucksbakes/chucks-bakes-backend/internal/order"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/config"
	pkgerrors "github.com/chucksbakes/chucks-bakes-backend/pkg/errors"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/logger"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/metrics"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/types"
)

// GenericFailureMessage is the only thing callers ever learn about an
// upstream ledger problem.
const GenericFailureMessage = "An error occurred while submitting your order. Please try again or contact us directly."

// Submission is the inbound relay payload: one order plus the honeypot
// field, which legitimate clients always leave empty.
type Submission struct {
	order.RequestItem
	Website string `json:"website,omitempty"`
}

// Service is the relay between order submissions and the ledger writer.
type Service interface {
	Submit(ctx context.Context, sub Submission) (types.SubmitResult, error)
}

type service struct {
	cfg    config.SinkConfig
	ledger LedgerCaller
	logg   *logger.Logger
	met    *metrics.OrderMetrics
}

func NewService(cfg config.SinkConfig, ledger LedgerCaller, logg *logger.Logger, met *metrics.OrderMetrics) Service {
	return &service{cfg: cfg, ledger: ledger, logg: logg, met: met}
}

// Submit applies the relay's first-line defenses, then forwards to the
// ledger with the shared secret injected server-side. A tripped honeypot is
// a disguised success: the caller sees an accepted order, nothing is written.
func (s *service) Submit(ctx context.Context, sub Submission) (types.SubmitResult, error) {
	if s.cfg.LedgerURL == "" || s.cfg.Token == "" {
		// Never name which variable is missing.
		if s.logg != nil {
			s.logg.Error(ctx, "order relay misconfigured", nil)
		}
		return types.SubmitResult{}, pkgerrors.New(pkgerrors.CodeConfiguration, "Server configuration error")
	}

	if strings.TrimSpace(sub.Contact.Name) == "" || strings.TrimSpace(sub.Contact.Email) == "" {
		return types.SubmitResult{}, pkgerrors.New(pkgerrors.CodeValidation, "Missing required contact information")
	}

	if strings.TrimSpace(sub.Website) != "" {
		if s.logg != nil {
			s.logg.Warn(ctx, "honeypot triggered, dropping submission")
		}
		s.met.IncHoneypot()
		return types.SubmitResult{Success: true, Message: "Order received"}, nil
	}

	payload := ForwardPayload{RequestItem: sub.RequestItem, Token: s.cfg.Token}

	start := time.Now()
	resp, err := s.ledger.Append(ctx, payload)
	s.met.ObserveSinkCall(time.Since(start))
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "ledger call failed", err)
		}
		s.met.IncSubmitted(string(sub.ItemType), "error")
		return types.SubmitResult{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, GenericFailureMessage)
	}
	if resp.StatusCode != http.StatusOK {
		if s.logg != nil {
			logCtx := s.logg.WithFields(ctx, map[string]any{
				"ledger_status":  resp.StatusCode,
				"ledger_message": resp.Message,
			})
			s.logg.Error(logCtx, "ledger rejected order", nil)
		}
		s.met.IncSubmitted(string(sub.ItemType), "rejected")
		return types.SubmitResult{}, pkgerrors.New(pkgerrors.CodeInternal, GenericFailureMessage)
	}

	s.met.IncSubmitted(string(sub.ItemType), "success")
	return types.SubmitResult{Success: true, Message: "Order submitted successfully"}, nil
}
