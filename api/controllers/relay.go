package controllers

import (
	"net/http"

	"github.com/chucksbakes/chucks-bakes-backend/api/responses"
	"github.com/chucksbakes/chucks-bakes-backend/api/validators"
	"github.com/chucksbakes/chucks-bakes-backend/internal/sink"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/logger"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/types"
)

// OrderRelay accepts one order submission and forwards it to the ledger.
// The endpoint speaks the {success, message} contract on both paths.
func OrderRelay(svc sink.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub sink.Submission
		if err := validators.DecodeJSONBodyLoose(r, &sub); err != nil {
			responses.WriteSubmitResult(r.Context(), logg, w, types.SubmitResult{}, err)
			return
		}

		result, err := svc.Submit(r.Context(), sub)
		responses.WriteSubmitResult(r.Context(), logg, w, result, err)
	}
}

// OrderRelayNotAllowed answers non-POST requests in the same {success,
// message} shape the relay clients parse, instead of the router's plain-text
// default.
func OrderRelayNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSubmitResultStatus(w, http.StatusMethodNotAllowed, types.SubmitResult{
			Success: false,
			Message: "Method not allowed",
		})
	}
}
