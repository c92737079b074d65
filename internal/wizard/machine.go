package wizard

import (
	"context"
	"encoding/json"

	"github.com/chucksbakes/chucks-bakes-backend/internal/order"
	pkgerrors "github.com/chucksbakes/chucks-bakes-backend/pkg/errors"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/logger"
	"go.uber.org/multierr"
)

// Wizard steps.
const (
	StepChooseItem = 1
	StepConfigure  = 2
	StepContact    = 3
	StepReview     = 4
)

// State is the observable wizard triple for one session.
type State struct {
	Draft *order.Draft        `json:"draft"`
	Step  int                 `json:"step"`
	Items []order.RequestItem `json:"items"`
}

// Service drives the four-step wizard. Every mutation is mirrored to the
// repository before it returns; in-memory state within one call is the single
// writer, storage is a passive mirror.
type Service interface {
	State(ctx context.Context, sessionID string) (State, error)
	SelectItemType(ctx context.Context, sessionID string, itemType order.ItemType) (State, error)
	SubmitConfig(ctx context.Context, sessionID string, payload json.RawMessage) (State, error)
	SubmitContact(ctx context.Context, sessionID string, contact order.ContactInfo) (State, error)
	Back(ctx context.Context, sessionID string) (State, error)
	Promote(ctx context.Context, sessionID string) (State, error)
	AbandonDraft(ctx context.Context, sessionID string) (State, error)
	RemoveItem(ctx context.Context, sessionID string, index int) (State, error)
	ClearItems(ctx context.Context, sessionID string) (State, error)
}

type service struct {
	repo Repository
	logg *logger.Logger
}

func NewService(repo Repository, logg *logger.Logger) Service {
	return &service{repo: repo, logg: logg}
}

// load seeds state from the three slots. An absent or unreadable slot yields
// its default and is logged; one bad slot never taints the other two, and a
// corrupt mirror never fails a request.
func (s *service) load(ctx context.Context, sessionID string) State {
	state := State{Draft: nil, Step: StepChooseItem, Items: []order.RequestItem{}}
	var seedErr error

	draft, found, err := s.repo.GetDraft(ctx, sessionID)
	if err != nil {
		seedErr = multierr.Append(seedErr, err)
	} else if found {
		state.Draft = draft
	}

	step, found, err := s.repo.GetStep(ctx, sessionID)
	if err != nil {
		seedErr = multierr.Append(seedErr, err)
	} else if found && step >= StepChooseItem && step <= StepReview {
		state.Step = step
	}

	items, found, err := s.repo.GetList(ctx, sessionID)
	if err != nil {
		seedErr = multierr.Append(seedErr, err)
	} else if found && items != nil {
		state.Items = items
	}

	if seedErr != nil && s.logg != nil {
		logCtx := s.logg.WithSessionID(ctx, sessionID)
		logCtx = s.logg.WithStep(logCtx, state.Step)
		logCtx = s.logg.WithField(logCtx, "error", seedErr.Error())
		s.logg.Warn(logCtx, "wizard.slot_recovery_defaulted")
	}
	return state
}

func (s *service) mirrorDraft(ctx context.Context, sessionID string, state State) error {
	var err error
	if state.Draft == nil {
		err = multierr.Append(err, s.repo.ClearDraft(ctx, sessionID))
	} else {
		err = multierr.Append(err, s.repo.SetDraft(ctx, sessionID, state.Draft))
	}
	err = multierr.Append(err, s.repo.SetStep(ctx, sessionID, state.Step))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to persist wizard state")
	}
	return nil
}

func (s *service) mirrorList(ctx context.Context, sessionID string, state State) error {
	if err := s.repo.SetList(ctx, sessionID, state.Items); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to persist request list")
	}
	return nil
}

func (s *service) State(ctx context.Context, sessionID string) (State, error) {
	return s.load(ctx, sessionID), nil
}

// SelectItemType starts a fresh draft for the chosen item. Re-selecting
// replaces any draft in progress; changing item type always means a new draft.
func (s *service) SelectItemType(ctx context.Context, sessionID string, itemType order.ItemType) (State, error) {
	if !itemType.Known() {
		errs := order.FieldErrors{}
		errs.Add("item_type", "Please choose one of our offerings")
		return State{}, validationError(errs)
	}

	state := s.load(ctx, sessionID)
	state.Draft = order.NewDraft(itemType)
	state.Step = StepConfigure
	if err := s.mirrorDraft(ctx, sessionID, state); err != nil {
		return State{}, err
	}
	return state, nil
}

// SubmitConfig decodes the payload against the branch the stored draft
// already carries. The branch is never chosen by the caller, so a mismatched
// submission cannot be represented.
func (s *service) SubmitConfig(ctx context.Context, sessionID string, payload json.RawMessage) (State, error) {
	state := s.load(ctx, sessionID)
	if state.Draft == nil {
		return State{}, pkgerrors.New(pkgerrors.CodeStateConflict, "choose an item before configuring it")
	}

	switch {
	case state.Draft.ItemType == order.ItemCake:
		var cfg order.CakeConfig
		if err := json.Unmarshal(payload, &cfg); err != nil {
			return State{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cake configuration")
		}
		if errs := order.ValidateCake(&cfg); errs.Any() {
			return State{}, validationError(errs)
		}
		state.Draft.Cake = &cfg
	case state.Draft.ItemType == order.ItemCupcakes:
		var cfg order.CupcakeConfig
		if err := json.Unmarshal(payload, &cfg); err != nil {
			return State{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cupcake configuration")
		}
		if errs := order.ValidateCupcakes(&cfg); errs.Any() {
			return State{}, validationError(errs)
		}
		state.Draft.Cupcakes = &cfg
	default:
		var treat order.TreatOrder
		if err := json.Unmarshal(payload, &treat); err != nil {
			return State{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order details")
		}
		if treat.Type == "" {
			treat.Type = state.Draft.ItemType
		}
		if errs := order.ValidateTreat(&treat, state.Draft.ItemType); errs.Any() {
			return State{}, validationError(errs)
		}
		state.Draft.Treat = &treat
	}

	state.Step = StepContact
	if err := s.mirrorDraft(ctx, sessionID, state); err != nil {
		return State{}, err
	}
	return state, nil
}

func (s *service) SubmitContact(ctx context.Context, sessionID string, contact order.ContactInfo) (State, error) {
	state := s.load(ctx, sessionID)
	if state.Draft == nil {
		return State{}, pkgerrors.New(pkgerrors.CodeStateConflict, "choose an item before adding contact details")
	}
	if errs := order.ValidateContact(&contact); errs.Any() {
		return State{}, validationError(errs)
	}
	state.Draft.Contact = &contact
	state.Step = StepReview
	if err := s.mirrorDraft(ctx, sessionID, state); err != nil {
		return State{}, err
	}
	return state, nil
}

// Back moves one step towards the start without re-validating; the stored
// draft already satisfies the schemas for steps it has completed.
func (s *service) Back(ctx context.Context, sessionID string) (State, error) {
	state := s.load(ctx, sessionID)
	if state.Step > StepChooseItem {
		state.Step--
	}
	if err := s.mirrorDraft(ctx, sessionID, state); err != nil {
		return State{}, err
	}
	return state, nil
}

// Promote finalizes the draft into the request list. A draft without a
// complete contact block never reaches the list.
func (s *service) Promote(ctx context.Context, sessionID string) (State, error) {
	state := s.load(ctx, sessionID)
	if state.Draft == nil {
		return State{}, pkgerrors.New(pkgerrors.CodeStateConflict, "there is no order in progress to add")
	}
	if state.Draft.Contact == nil {
		return State{}, pkgerrors.New(pkgerrors.CodeStateConflict, "please add your contact details before adding this order")
	}
	item, ok := state.Draft.Finalize()
	if !ok {
		return State{}, pkgerrors.New(pkgerrors.CodeStateConflict, "please add your contact details before adding this order")
	}
	if errs := order.ValidateRequestItem(&item); errs.Any() {
		return State{}, validationError(errs)
	}

	state.Items = append(state.Items, item)
	state.Draft = nil
	state.Step = StepChooseItem
	if err := s.mirrorList(ctx, sessionID, state); err != nil {
		return State{}, err
	}
	if err := s.mirrorDraft(ctx, sessionID, state); err != nil {
		return State{}, err
	}
	return state, nil
}

func (s *service) AbandonDraft(ctx context.Context, sessionID string) (State, error) {
	state := s.load(ctx, sessionID)
	state.Draft = nil
	state.Step = StepChooseItem
	if err := s.mirrorDraft(ctx, sessionID, state); err != nil {
		return State{}, err
	}
	return state, nil
}

// RemoveItem drops one finalized item. An out-of-range index is a no-op; the
// list is never corrupted by a stale client.
func (s *service) RemoveItem(ctx context.Context, sessionID string, index int) (State, error) {
	state := s.load(ctx, sessionID)
	if index >= 0 && index < len(state.Items) {
		state.Items = append(state.Items[:index], state.Items[index+1:]...)
		if err := s.mirrorList(ctx, sessionID, state); err != nil {
			return State{}, err
		}
	}
	return state, nil
}

func (s *service) ClearItems(ctx context.Context, sessionID string) (State, error) {
	state := s.load(ctx, sessionID)
	state.Items = []order.RequestItem{}
	if err := s.mirrorList(ctx, sessionID, state); err != nil {
		return State{}, err
	}
	return state, nil
}

func validationError(errs order.FieldErrors) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(map[string]string(errs))
}
