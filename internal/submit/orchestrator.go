// Package submit drains a finalized request list into the order sink,
// serially and in insertion order. The inter-item delay is a deliberate
// throttle for the rate-sensitive ledger, not an incidental sleep.
package submit

import (
	"context"
	"fmt"
	"time"

	"github.com/chucksbakes/chucks-bakes-backend/internal/order"
	"github.com/chucksbakes/chucks-bakes-backend/internal/sink"
	pkgerrors "github.com/chucksbakes/chucks-bakes-backend/pkg/errors"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/logger"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/types"
)

// Orchestrator submits batches through the sink relay.
type Orchestrator struct {
	relay sink.Service
	delay time.Duration
	logg  *logger.Logger
}

func NewOrchestrator(relay sink.Service, delay time.Duration, logg *logger.Logger) *Orchestrator {
	return &Orchestrator{relay: relay, delay: delay, logg: logg}
}

// SubmitBatch sends each item in order and stops at the first failure,
// returning that failure's message. Items after a failure are never sent;
// the caller decides whether to clear the list (only on full success).
func (o *Orchestrator) SubmitBatch(ctx context.Context, items []order.RequestItem) types.SubmitResult {
	if len(items) == 0 {
		return types.SubmitResult{Success: false, Message: "No items to submit"}
	}

	for i, item := range items {
		// The honeypot field stays empty for every legitimate submission.
		result, err := o.relay.Submit(ctx, sink.Submission{RequestItem: item, Website: ""})
		if err != nil {
			if o.logg != nil {
				logCtx := o.logg.WithItemType(ctx, string(item.ItemType))
				logCtx = o.logg.WithField(logCtx, "item_index", i)
				o.logg.Error(logCtx, "batch submission halted", err)
			}
			return types.SubmitResult{Success: false, Message: failureMessage(err)}
		}
		if !result.Success {
			return types.SubmitResult{Success: false, Message: result.Message}
		}

		if len(items) > 1 && i < len(items)-1 && o.delay > 0 {
			select {
			case <-time.After(o.delay):
			case <-ctx.Done():
				return types.SubmitResult{Success: false, Message: sink.GenericFailureMessage}
			}
		}
	}

	return types.SubmitResult{Success: true, Message: successMessage(len(items))}
}

func successMessage(count int) string {
	if count == 1 {
		return "Successfully submitted 1 order"
	}
	return fmt.Sprintf("Successfully submitted %d orders", count)
}

// failureMessage keeps upstream internals away from end users: typed errors
// already carry a user-safe message, anything else becomes the generic one.
func failureMessage(err error) string {
	if typed := pkgerrors.As(err); typed != nil && typed.Message() != "" {
		return typed.Message()
	}
	return sink.GenericFailureMessage
}
