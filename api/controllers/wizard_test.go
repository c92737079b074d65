package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/chucksbakes/chucks-bakes-backend/api/middleware"
	"github.com/chucksbakes/chucks-bakes-backend/internal/order"
	"github.com/chucksbakes/chucks-bakes-backend/internal/submit"
	"github.com/chucksbakes/chucks-bakes-backend/internal/wizard"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/types"
)

const wizardTestSession = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"

func newWizardService() wizard.Service {
	return wizard.NewService(wizard.NewMemoryRepository(), testLogger())
}

func wizardRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(middleware.WithSessionID(req.Context(), wizardTestSession))
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) wizardStateResponse {
	t.Helper()
	var envelope struct {
		Data wizardStateResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode state: %v (%s)", err, rec.Body.String())
	}
	return envelope.Data
}

func TestWizardStateFreshSession(t *testing.T) {
	handler := WizardState(newWizardService(), testLogger())

	rec := httptest.NewRecorder()
	handler(rec, wizardRequest(http.MethodGet, "/api/v1/wizard", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}
	state := decodeState(t, rec)
	if state.Draft != nil || state.Step != wizard.StepChooseItem || len(state.Items) != 0 {
		t.Fatalf("unexpected fresh state: %+v", state)
	}
	if state.BatchText != "No items in request." {
		t.Fatalf("got batch text %q", state.BatchText)
	}
}

func TestWizardSelectItem(t *testing.T) {
	handler := WizardSelectItem(newWizardService(), testLogger())

	rec := httptest.NewRecorder()
	handler(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/item", `{"item_type":"cupcakes"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}
	state := decodeState(t, rec)
	if state.Draft == nil || state.Draft.ItemType != order.ItemCupcakes || state.Step != wizard.StepConfigure {
		t.Fatalf("unexpected state: %+v", state)
	}
}

func TestWizardSelectItemRejectsUnknown(t *testing.T) {
	handler := WizardSelectItem(newWizardService(), testLogger())

	rec := httptest.NewRecorder()
	handler(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/item", `{"item_type":"pies"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}
}

func TestWizardFullFlowOverHTTP(t *testing.T) {
	svc := newWizardService()
	logg := testLogger()

	rec := httptest.NewRecorder()
	WizardSelectItem(svc, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/item", `{"item_type":"cookies"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("select: %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	WizardSubmitConfig(svc, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/config", `{"type":"cookies","quantity":24}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("config: %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	WizardSubmitContact(svc, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/contact", `{"name":"Sam Lee","email":"sam@example.com"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("contact: %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	WizardPromote(svc, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/promote", ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("promote: %d %s", rec.Code, rec.Body.String())
	}
	state := decodeState(t, rec)
	if len(state.Items) != 1 || state.Draft != nil {
		t.Fatalf("unexpected state after promote: %+v", state)
	}
	if !strings.Contains(state.BatchText, "ITEM 1") {
		t.Fatalf("batch text missing banner: %q", state.BatchText)
	}
}

func TestWizardSubmitConfigValidationErrorShape(t *testing.T) {
	svc := newWizardService()
	logg := testLogger()

	rec := httptest.NewRecorder()
	WizardSelectItem(svc, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/item", `{"item_type":"cupcakes"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("select: %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	WizardSubmitConfig(svc, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/config",
		`{"quantity":13,"flavors":["vanilla"],"smbc_flavor":"vanilla"}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Error.Details["quantity"] == "" {
		t.Fatalf("expected quantity detail, got %+v", envelope.Error)
	}
}

func TestWizardPromoteWithoutContactConflict(t *testing.T) {
	svc := newWizardService()
	logg := testLogger()

	rec := httptest.NewRecorder()
	WizardSelectItem(svc, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/item", `{"item_type":"brownies"}`))
	rec = httptest.NewRecorder()
	WizardSubmitConfig(svc, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/config", `{"type":"brownies","quantity":16}`))

	rec = httptest.NewRecorder()
	WizardPromote(svc, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/promote", ""))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}
}

func TestWizardRemoveItemBadIndex(t *testing.T) {
	handler := WizardRemoveItem(newWizardService(), testLogger())

	req := wizardRequest(http.MethodDelete, "/api/v1/wizard/items/abc", "")
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("index", "abc")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d", rec.Code)
	}
}

func TestWizardMailto(t *testing.T) {
	handler := WizardMailto(newWizardService(), testLogger())

	rec := httptest.NewRecorder()
	handler(rec, wizardRequest(http.MethodGet, "/api/v1/wizard/mailto", ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d", rec.Code)
	}
	var envelope struct {
		Data mailtoResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(envelope.Data.Link, "mailto:orders@chucksbakes.com") {
		t.Fatalf("got link %q", envelope.Data.Link)
	}
	if envelope.Data.Body != "No items in request." {
		t.Fatalf("got body %q", envelope.Data.Body)
	}
}

func TestWizardSubmitBatchClearsOnSuccess(t *testing.T) {
	svc := newWizardService()
	logg := testLogger()

	rec := httptest.NewRecorder()
	WizardSelectItem(svc, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/item", `{"item_type":"cookies"}`))
	rec = httptest.NewRecorder()
	WizardSubmitConfig(svc, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/config", `{"type":"cookies","quantity":12}`))
	rec = httptest.NewRecorder()
	WizardSubmitContact(svc, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/contact", `{"name":"Sam Lee","email":"sam@example.com"}`))
	rec = httptest.NewRecorder()
	WizardPromote(svc, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/promote", ""))

	relay := &stubSinkService{result: types.SubmitResult{Success: true, Message: "Order submitted successfully"}}
	orch := submit.NewOrchestrator(relay, 0, logg)

	rec = httptest.NewRecorder()
	WizardSubmitBatch(svc, orch, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/submit", ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("submit: %d %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data types.SubmitResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !envelope.Data.Success || envelope.Data.Message != "Successfully submitted 1 order" {
		t.Fatalf("unexpected result: %+v", envelope.Data)
	}

	rec = httptest.NewRecorder()
	WizardState(svc, logg)(rec, wizardRequest(http.MethodGet, "/api/v1/wizard", ""))
	state := decodeState(t, rec)
	if len(state.Items) != 0 {
		t.Fatalf("list not cleared after full success: %+v", state.Items)
	}
}

func TestWizardSubmitBatchKeepsListOnFailure(t *testing.T) {
	svc := newWizardService()
	logg := testLogger()

	rec := httptest.NewRecorder()
	WizardSelectItem(svc, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/item", `{"item_type":"cookies"}`))
	rec = httptest.NewRecorder()
	WizardSubmitConfig(svc, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/config", `{"type":"cookies","quantity":12}`))
	rec = httptest.NewRecorder()
	WizardSubmitContact(svc, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/contact", `{"name":"Sam Lee","email":"sam@example.com"}`))
	rec = httptest.NewRecorder()
	WizardPromote(svc, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/promote", ""))

	relay := &stubSinkService{result: types.SubmitResult{Success: false, Message: "An error occurred while submitting your order. Please try again or contact us directly."}}
	orch := submit.NewOrchestrator(relay, 0, logg)

	rec = httptest.NewRecorder()
	WizardSubmitBatch(svc, orch, logg)(rec, wizardRequest(http.MethodPost, "/api/v1/wizard/submit", ""))
	var envelope struct {
		Data types.SubmitResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Success {
		t.Fatalf("unexpected success: %+v", envelope.Data)
	}

	rec = httptest.NewRecorder()
	WizardState(svc, logg)(rec, wizardRequest(http.MethodGet, "/api/v1/wizard", ""))
	state := decodeState(t, rec)
	if len(state.Items) != 1 {
		t.Fatalf("failed batch must keep the list, got %+v", state.Items)
	}
}
