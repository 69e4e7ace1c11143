package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fincalc/core/finance"
	"fincalc/internal/cache"
)

func newTestServer(c cache.Cache) *Server {
	return NewServer(Options{
		Version:  "test",
		Cache:    c,
		Defaults: finance.StandardDefaults(),
	})
}

func postJSON(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func TestCalculateEMI(t *testing.T) {
	s := newTestServer(nil)
	w := postJSON(t, s, "/calculate/emi",
		`{"principal": 100000, "annual_rate_percent": 10, "tenure_years": 1}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp CalculateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Result != 8791.59 {
		t.Errorf("result = %.2f, want 8791.59", resp.Result)
	}
	if resp.Tool != "emi" {
		t.Errorf("tool = %q, want emi", resp.Tool)
	}
	if resp.Metadata.InputHash == "" {
		t.Error("expected input hash in metadata")
	}
}

func TestCalculateStringInputsCoerced(t *testing.T) {
	s := newTestServer(nil)
	w := postJSON(t, s, "/calculate/tax", `{"gross_income_yearly": "100000"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp CalculateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Result != 50000.00 {
		t.Errorf("result = %.2f, want 50000.00", resp.Result)
	}
}

func TestCalculateValidationError(t *testing.T) {
	s := newTestServer(nil)
	w := postJSON(t, s, "/calculate/emi",
		`{"principal": 0, "annual_rate_percent": 10, "tenure_years": 1}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Code != "VALUE_ERROR" {
		t.Errorf("code = %q, want VALUE_ERROR", resp.Error.Code)
	}
	if !strings.Contains(resp.Error.Message, "principal") {
		t.Errorf("message should name the parameter: %q", resp.Error.Message)
	}
}

func TestCalculateUnknownTool(t *testing.T) {
	s := newTestServer(nil)
	w := postJSON(t, s, "/calculate/mortgage", `{}`)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestCalculateBudgetEnvelope(t *testing.T) {
	s := newTestServer(nil)
	w := postJSON(t, s, "/calculate/budget",
		`{"monthly_income": 50000, "monthly_expenses": 30000}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp CalculateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Budget == nil {
		t.Fatal("budget response should carry a structured plan")
	}
	if resp.Budget.RecommendedSavingsPercent != 20.0 {
		t.Errorf("percent = %.1f, want 20.0", resp.Budget.RecommendedSavingsPercent)
	}
}

func TestCalculateCacheHit(t *testing.T) {
	s := newTestServer(cache.NewMemory(time.Minute))
	body := `{"principal": 100000, "annual_rate_percent": 10, "tenure_years": 1}`

	first := postJSON(t, s, "/calculate/emi", body)
	if first.Code != http.StatusOK {
		t.Fatalf("first call status = %d", first.Code)
	}
	var resp1 CalculateResponse
	if err := json.Unmarshal(first.Body.Bytes(), &resp1); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if resp1.Metadata.Cached {
		t.Error("first call should not be cached")
	}

	second := postJSON(t, s, "/calculate/emi", body)
	var resp2 CalculateResponse
	if err := json.Unmarshal(second.Body.Bytes(), &resp2); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if !resp2.Metadata.Cached {
		t.Error("second identical call should be served from cache")
	}
	if resp2.Result != resp1.Result {
		t.Errorf("cached result %.2f differs from original %.2f", resp2.Result, resp1.Result)
	}
	if resp2.Metadata.InputHash != resp1.Metadata.InputHash {
		t.Error("identical inputs should hash identically")
	}
}

func TestAccountLifecycle(t *testing.T) {
	s := newTestServer(nil)

	w := postJSON(t, s, "/accounts", `{"owner": "alice"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("open status = %d, body = %s", w.Code, w.Body.String())
	}
	var acct struct {
		ID      string  `json:"id"`
		Balance float64 `json:"balance"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &acct); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	w = postJSON(t, s, "/accounts/"+acct.ID+"/deposit", `{"amount": 1000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("deposit status = %d, body = %s", w.Code, w.Body.String())
	}

	w = postJSON(t, s, "/accounts/"+acct.ID+"/withdraw", `{"amount": 400.5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("withdraw status = %d, body = %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &acct); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if acct.Balance != 599.5 {
		t.Errorf("balance = %.2f, want 599.50", acct.Balance)
	}

	w = postJSON(t, s, "/accounts/"+acct.ID+"/withdraw", `{"amount": 10000}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("over-withdrawal status = %d, want 422", w.Code)
	}
}

func TestAccountNotFound(t *testing.T) {
	s := newTestServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/accounts/acct-404", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestEstimateFallsBackWithoutModel(t *testing.T) {
	s := newTestServer(nil)
	w := postJSON(t, s, "/estimate/loan-amount", `{
		"age": 35,
		"monthly_income": 50000,
		"credit_score": 720,
		"loan_tenure_years": 15,
		"existing_loan_amount": 0,
		"num_of_dependents": 2
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp EstimateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if resp.Model != "rule-of-thumb" {
		t.Errorf("model = %q, want rule-of-thumb", resp.Model)
	}
	if resp.EstimatedAmount != 360000.00 {
		t.Errorf("estimate = %.2f, want 360000.00", resp.EstimatedAmount)
	}
}

func TestRateLimiterBlocksAfterCapacity(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	s := NewServer(Options{
		Version:  "test",
		Defaults: finance.StandardDefaults(),
		Limiter:  limiter,
	})

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		s.ServeHTTP(w, req)
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", last)
	}

	// a different client is unaffected
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("other client status = %d, want 200", w.Code)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
