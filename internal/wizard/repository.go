// Package wizard owns the four-step order flow: the in-progress draft, the
// current step, and the list of finalized request items, all keyed by a
// session id and mirrored to durable storage after every mutation.
package wizard

import (
	"context"

	"github.com/chucksbakes/chucks-bakes-backend/internal/order"
)

// Slot names. The three slots are independently keyed so a partial write of
// one cannot corrupt the others.
const (
	SlotDraft = "draft"
	SlotStep  = "step"
	SlotList  = "list"
)

// Repository is the three-slot durable mirror behind the wizard. Getters
// report found=false for absent slots and an error for unreadable ones;
// callers substitute defaults in both cases. The storage medium is swappable:
// redis in production, memory in tests.
type Repository interface {
	GetDraft(ctx context.Context, sessionID string) (*order.Draft, bool, error)
	SetDraft(ctx context.Context, sessionID string, draft *order.Draft) error
	ClearDraft(ctx context.Context, sessionID string) error

	GetStep(ctx context.Context, sessionID string) (int, bool, error)
	SetStep(ctx context.Context, sessionID string, step int) error
	ClearStep(ctx context.Context, sessionID string) error

	GetList(ctx context.Context, sessionID string) ([]order.RequestItem, bool, error)
	SetList(ctx context.Context, sessionID string, items []order.RequestItem) error
	ClearList(ctx context.Context, sessionID string) error
}
