package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/chucksbakes/chucks-bakes-backend/pkg/errors"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/logger"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/types"
)

func WriteSuccess(w http.ResponseWriter, data any) {
	WriteSuccessStatus(w, http.StatusOK, data)
}

func WriteSuccessStatus(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, types.SuccessEnvelope{Data: data})
}

func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeValidation,
		pkgerrors.CodeUnauthorized,
		pkgerrors.CodeNotFound,
		pkgerrors.CodeStateConflict:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	payload := types.ErrorEnvelope{
		Error: types.APIError{
			Code:    string(typed.Code()),
			Message: msg,
		},
	}

	if meta.DetailsAllowed {
		if details := typed.Details(); details != nil {
			payload.Error.Details = details
		}
	}

	if logg != nil {
		dump := pkgerrors.Dump(err)
		ctx = logg.WithFields(ctx, map[string]any{
			"error":       dump.TopMessage,
			"error_code":  dump.Code,
			"error_chain": dump.Chain,
		})
		logg.Error(ctx, "request.error", err)
	}

	writeJSON(w, meta.HTTPStatus, payload)
}

// WriteSubmitResult renders the order-sink {success, message} contract. The
// relay endpoint speaks this shape, not the standard envelope, to stay
// compatible with existing order form clients.
func WriteSubmitResult(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, result types.SubmitResult, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, result)
		return
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}
	meta := pkgerrors.MetadataFor(typed.Code())

	msg := typed.Message()
	if msg == "" || !allowSinkMessage(typed.Code()) {
		msg = meta.PublicMessage
	}

	if logg != nil {
		logg.Error(ctx, "order.relay_error", err)
	}
	writeJSON(w, meta.HTTPStatus, types.SubmitResult{Success: false, Message: msg})
}

// WriteSubmitResultStatus renders the {success, message} contract with an
// explicit status, for relay outcomes that carry no error value.
func WriteSubmitResultStatus(w http.ResponseWriter, status int, result types.SubmitResult) {
	writeJSON(w, status, result)
}

// allowSinkMessage gates which error messages cross the relay boundary.
// Configuration and internal errors already carry user-safe copy.
func allowSinkMessage(code pkgerrors.Code) bool {
	switch code {
	case pkgerrors.CodeValidation, pkgerrors.CodeConfiguration, pkgerrors.CodeInternal:
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
