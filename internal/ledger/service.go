package ledger

import (
	"context"
	"net/http"

	"github.com/chucksbakes/chucks-bakes-backend/internal/order"
	"github.com/chucksbakes/chucks-bakes-backend/internal/summary"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/config"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/logger"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/types"
)

// WritePayload is the inbound shape from the relay: the order plus the
// shared secret.
type WritePayload struct {
	order.RequestItem
	Token string `json:"token"`
}

// Service verifies the shared secret and appends one row per accepted order.
// Responses always use the {statusCode, message} application contract; the
// HTTP layer mirrors statusCode onto the wire.
type Service interface {
	Write(ctx context.Context, payload WritePayload) types.LedgerResponse
}

type service struct {
	cfg  config.LedgerConfig
	repo Repository
	logg *logger.Logger
}

func NewService(cfg config.LedgerConfig, repo Repository, logg *logger.Logger) Service {
	return &service{cfg: cfg, repo: repo, logg: logg}
}

func (s *service) Write(ctx context.Context, payload WritePayload) types.LedgerResponse {
	if s.cfg.Token == "" {
		if s.logg != nil {
			s.logg.Error(ctx, "ledger token not configured", nil)
		}
		return types.LedgerResponse{
			StatusCode: http.StatusInternalServerError,
			Message:    "Server configuration error: Token not set",
		}
	}
	if payload.Token != s.cfg.Token {
		if s.logg != nil {
			s.logg.Warn(ctx, "ledger authentication failed")
		}
		return types.LedgerResponse{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"}
	}

	flat := summary.ToSinkRow(payload.RequestItem)
	row := &OrderRow{
		Status:         flat.Status,
		ItemType:       flat.ItemType,
		Name:           flat.Name,
		Email:          flat.Email,
		Phone:          flat.Phone,
		DeliveryMethod: flat.DeliveryMethod,
		TargetDate:     flat.TargetDate,
		Budget:         flat.Budget,
		Notes:          flat.Notes,
		ReferralSource: flat.ReferralSource,
		Size:           flat.Size,
		Quantity:       flat.Quantity,
		Flavors:        flat.Flavors,
		Fillings:       flat.Fillings,
		FrostingType:   flat.FrostingType,
		SMBCFlavor:     flat.SMBCFlavor,
		Theme:          flat.Theme,
		Colors:         flat.Colors,
	}
	if err := s.repo.Append(ctx, row); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "failed to append ledger row", err)
		}
		return types.LedgerResponse{
			StatusCode: http.StatusInternalServerError,
			Message:    "Error processing order",
		}
	}

	return types.LedgerResponse{StatusCode: http.StatusOK, Message: "Order received successfully"}
}
