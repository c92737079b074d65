package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// SubmitResult is the order-sink contract shared by the relay endpoint and
// the batch orchestrator: {success, message}, nothing else.
type SubmitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LedgerResponse mirrors the sheet-writer contract. StatusCode is an
// application-level status (200/401/500) independent of the HTTP status.
type LedgerResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}
