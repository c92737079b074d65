package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/chucksbakes/chucks-bakes-backend/api/responses"
	"github.com/chucksbakes/chucks-bakes-backend/api/validators"
	"github.com/chucksbakes/chucks-bakes-backend/internal/ledger"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/config"
	pkgerrors "github.com/chucksbakes/chucks-bakes-backend/pkg/errors"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/logger"
)

// LedgerWrite is the token-guarded append endpoint the relay calls. The
// application-level statusCode is mirrored onto the HTTP status so plain
// HTTP clients and body-readers agree.
func LedgerWrite(svc ledger.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload ledger.WritePayload
		if err := validators.DecodeJSONBodyLoose(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp := svc.Write(r.Context(), payload)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.StatusCode)
		if err := json.NewEncoder(w).Encode(resp); err != nil && logg != nil {
			logg.Error(r.Context(), "failed to encode ledger response", err)
		}
	}
}

// LedgerRecent lists the newest rows for operator checks. It reuses the
// ledger token as a query-string guard; there is no user-facing auth system.
func LedgerRecent(cfg config.LedgerConfig, repo ledger.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cfg.Token == "" || r.URL.Query().Get("token") != cfg.Token {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Unauthorized"))
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		rows, err := repo.Recent(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list orders"))
			return
		}
		responses.WriteSuccess(w, rows)
	}
}
