package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/chucksbakes/chucks-bakes-backend/pkg/errors"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/logger"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/types"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test"})
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"hello": "world"})

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	var envelope struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data["hello"] != "world" {
		t.Fatalf("got %+v", envelope)
	}
}

func TestWriteErrorTypedMessagePassthrough(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeStateConflict, "please add your contact details before adding this order")
	WriteError(context.Background(), testLogger(), rec, err)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("got %d", rec.Code)
	}
	var envelope types.ErrorEnvelope
	if decodeErr := json.Unmarshal(rec.Body.Bytes(), &envelope); decodeErr != nil {
		t.Fatalf("decode: %v", decodeErr)
	}
	if envelope.Error.Message != "please add your contact details before adding this order" {
		t.Fatalf("got %q", envelope.Error.Message)
	}
}

func TestWriteErrorHidesInternalMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeInternal, "pq: connection refused at 10.0.0.3")
	WriteError(context.Background(), testLogger(), rec, err)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got %d", rec.Code)
	}
	var envelope types.ErrorEnvelope
	if decodeErr := json.Unmarshal(rec.Body.Bytes(), &envelope); decodeErr != nil {
		t.Fatalf("decode: %v", decodeErr)
	}
	if envelope.Error.Message != "internal server error" {
		t.Fatalf("internal details leaked: %q", envelope.Error.Message)
	}
}

func TestWriteErrorUntypedBecomesInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), testLogger(), rec, errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got %d", rec.Code)
	}
}

func TestWriteErrorDetailsGating(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
		WithDetails(map[string]string{"quantity": "Please select a quantity"})
	WriteError(context.Background(), testLogger(), rec, err)

	var envelope struct {
		Error struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if decodeErr := json.Unmarshal(rec.Body.Bytes(), &envelope); decodeErr != nil {
		t.Fatalf("decode: %v", decodeErr)
	}
	if envelope.Error.Details["quantity"] == "" {
		t.Fatalf("validation details must pass through, got %+v", envelope.Error)
	}

	rec = httptest.NewRecorder()
	err = pkgerrors.New(pkgerrors.CodeInternal, "boom").WithDetails(map[string]string{"secret": "yes"})
	WriteError(context.Background(), testLogger(), rec, err)
	envelope.Error.Details = nil
	if decodeErr := json.Unmarshal(rec.Body.Bytes(), &envelope); decodeErr != nil {
		t.Fatalf("decode: %v", decodeErr)
	}
	if len(envelope.Error.Details) != 0 {
		t.Fatalf("internal details must be dropped, got %+v", envelope.Error.Details)
	}
}

func TestWriteSubmitResultSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSubmitResult(context.Background(), testLogger(), rec,
		types.SubmitResult{Success: true, Message: "Order received"}, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	var result types.SubmitResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result.Success || result.Message != "Order received" {
		t.Fatalf("got %+v", result)
	}
}

func TestWriteSubmitResultErrorMessageGating(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			err:        pkgerrors.New(pkgerrors.CodeConfiguration, "Server configuration error"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Server configuration error",
		},
		{
			err:        pkgerrors.New(pkgerrors.CodeValidation, "Missing required contact information"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Missing required contact information",
		},
		{
			err:        pkgerrors.New(pkgerrors.CodeDependency, "redis timed out at cache-1"),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "dependency unavailable",
		},
		{
			err:        errors.New("raw"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "unexpected error",
		},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		WriteSubmitResult(context.Background(), testLogger(), rec, types.SubmitResult{}, tc.err)
		if rec.Code != tc.wantStatus {
			t.Fatalf("%v: got status %d, want %d", tc.err, rec.Code, tc.wantStatus)
		}
		var result types.SubmitResult
		if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if result.Success || result.Message != tc.wantMsg {
			t.Fatalf("%v: got %+v", tc.err, result)
		}
	}
}
