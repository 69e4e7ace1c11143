package api

import (
	"fincalc/core/finance"
)

// CalculateResponse is the result envelope for POST /calculate/{tool}.
type CalculateResponse struct {
	RequestID string              `json:"request_id"`
	Tool      string              `json:"tool"`
	Result    float64             `json:"result"`
	Budget    *finance.BudgetPlan `json:"budget,omitempty"`
	Metadata  ResponseMetadata    `json:"metadata"`
}

// ResponseMetadata ties a response to its inputs and engine version.
type ResponseMetadata struct {
	InputHash     string `json:"input_hash"`
	EngineVersion string `json:"engine_version"`
	DurationMs    int64  `json:"duration_ms"`
	Cached        bool   `json:"cached"`
}

// EstimateResponse is the result envelope for POST /estimate/loan-amount.
type EstimateResponse struct {
	RequestID       string  `json:"request_id"`
	EstimatedAmount float64 `json:"estimated_amount"`
	Model           string  `json:"model"`
}

// OpenAccountRequest creates an account.
type OpenAccountRequest struct {
	Owner string `json:"owner"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable code and human message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
