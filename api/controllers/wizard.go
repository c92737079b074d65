package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/chucksbakes/chucks-bakes-backend/api/middleware"
	"github.com/chucksbakes/chucks-bakes-backend/api/responses"
	"github.com/chucksbakes/chucks-bakes-backend/api/validators"
	"github.com/chucksbakes/chucks-bakes-backend/internal/order"
	"github.com/chucksbakes/chucks-bakes-backend/internal/submit"
	"github.com/chucksbakes/chucks-bakes-backend/internal/summary"
	"github.com/chucksbakes/chucks-bakes-backend/internal/wizard"
	pkgerrors "github.com/chucksbakes/chucks-bakes-backend/pkg/errors"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/logger"
)

type selectItemRequest struct {
	ItemType string `json:"item_type" validate:"required"`
}

type wizardStateResponse struct {
	Draft        *order.Draft        `json:"draft"`
	Step         int                 `json:"step"`
	Items        []order.RequestItem `json:"items"`
	DraftSummary string              `json:"draft_summary,omitempty"`
	BatchText    string              `json:"batch_text"`
}

type mailtoResponse struct {
	Link    string `json:"link"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func stateResponse(state wizard.State) wizardStateResponse {
	return wizardStateResponse{
		Draft:        state.Draft,
		Step:         state.Step,
		Items:        state.Items,
		DraftSummary: summary.Item(state.Draft),
		BatchText:    summary.Batch(state.Items),
	}
}

func sessionID(r *http.Request) string {
	return middleware.SessionIDFromContext(r.Context())
}

// WizardState returns the current wizard triple for the caller's session.
func WizardState(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.State(r.Context(), sessionID(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stateResponse(state))
	}
}

func WizardSelectItem(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req selectItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		state, err := svc.SelectItemType(r.Context(), sessionID(r), order.ItemType(req.ItemType))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stateResponse(state))
	}
}

// WizardSubmitConfig forwards the raw body untouched; the wizard decodes it
// against the branch the stored draft already carries.
func WizardSubmitConfig(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body"))
			return
		}
		state, err := svc.SubmitConfig(r.Context(), sessionID(r), json.RawMessage(body))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stateResponse(state))
	}
}

func WizardSubmitContact(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var contact order.ContactInfo
		if err := validators.DecodeJSONBody(r, &contact); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		state, err := svc.SubmitContact(r.Context(), sessionID(r), contact)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stateResponse(state))
	}
}

func WizardBack(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.Back(r.Context(), sessionID(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stateResponse(state))
	}
}

func WizardPromote(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.Promote(r.Context(), sessionID(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stateResponse(state))
	}
}

func WizardAbandonDraft(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.AbandonDraft(r.Context(), sessionID(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stateResponse(state))
	}
}

func WizardRemoveItem(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "item index must be a number"))
			return
		}
		state, err := svc.RemoveItem(r.Context(), sessionID(r), index)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stateResponse(state))
	}
}

func WizardClearItems(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.ClearItems(r.Context(), sessionID(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stateResponse(state))
	}
}

// WizardMailto renders the email fallback for the current request list.
func WizardMailto(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.State(r.Context(), sessionID(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, mailtoResponse{
			Link:    summary.MailtoLink(state.Items),
			Subject: summary.Subject(len(state.Items)),
			Body:    summary.Batch(state.Items),
		})
	}
}

// WizardSubmitBatch drains the finalized list through the order sink. The
// list is cleared only after every item was accepted.
func WizardSubmitBatch(svc wizard.Service, orch *submit.Orchestrator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid := sessionID(r)
		state, err := svc.State(r.Context(), sid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result := orch.SubmitBatch(r.Context(), state.Items)
		if result.Success {
			if _, err := svc.ClearItems(r.Context(), sid); err != nil && logg != nil {
				logg.Error(r.Context(), "failed to clear submitted items", err)
			}
		}
		responses.WriteSuccess(w, result)
	}
}
