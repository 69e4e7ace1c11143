// Package api - thin HTTP layer over the calculator engine.
// The API is only responsible for input ingestion, engine orchestration,
// and output serialization. It never performs calculator logic itself.
package api

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"fincalc/core/account"
	"fincalc/core/estimator"
	"fincalc/core/finance"
	"fincalc/internal/cache"
	"fincalc/internal/errors"
	"fincalc/internal/logging"
)

// Options configures a Server. Cache and Model are optional; Accounts
// defaults to an in-memory service.
type Options struct {
	Version  string
	Cache    cache.Cache
	Accounts *account.Service
	Model    estimator.Predictor
	Defaults finance.Defaults
	Limiter  *RateLimiter
}

// Server is the API server
type Server struct {
	mux      *http.ServeMux
	version  string
	cache    cache.Cache
	accounts *account.Service
	model    estimator.Predictor
	fallback estimator.Predictor
	defaults finance.Defaults
	limiter  *RateLimiter
	logger   *zap.Logger

	requestSeq atomic.Uint64
}

// NewServer creates a new API server
func NewServer(opts Options) *Server {
	accounts := opts.Accounts
	if accounts == nil {
		accounts = account.NewService(account.NewMemoryRepository())
	}

	s := &Server{
		mux:      http.NewServeMux(),
		version:  opts.Version,
		cache:    opts.Cache,
		accounts: accounts,
		model:    opts.Model,
		fallback: estimator.RuleOfThumb{},
		defaults: opts.Defaults,
		limiter:  opts.Limiter,
		logger:   logging.Named("api"),
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /calculate/{tool}", s.handleCalculate)
	s.mux.HandleFunc("POST /estimate/loan-amount", s.handleEstimate)

	s.mux.HandleFunc("POST /accounts", s.handleOpenAccount)
	s.mux.HandleFunc("GET /accounts/{id}", s.handleGetAccount)
	s.mux.HandleFunc("POST /accounts/{id}/deposit", s.handleDeposit)
	s.mux.HandleFunc("POST /accounts/{id}/withdraw", s.handleWithdraw)

	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleCalculate handles POST /calculate/{tool}
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	tool := r.PathValue("tool")

	args, err := decodeArgs(r)
	if err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	inputHash := computeInputHash(tool, args)

	// Calculators are pure, so an identical input hash can be replayed
	if s.cache != nil {
		if cached, ok := s.cache.Get(r.Context(), "calc:"+inputHash); ok {
			var out finance.Outcome
			if err := json.Unmarshal([]byte(cached), &out); err == nil {
				s.writeJSON(w, s.calcResponse(tool, &out, inputHash, start, true), http.StatusOK)
				return
			}
		}
	}

	out, err := finance.RunTool(tool, args, s.defaults)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	if s.cache != nil {
		if data, err := json.Marshal(out); err == nil {
			if err := s.cache.Set(r.Context(), "calc:"+inputHash, string(data)); err != nil {
				s.logger.Warn("failed to cache result", zap.Error(err))
			}
		}
	}

	s.writeJSON(w, s.calcResponse(tool, out, inputHash, start, false), http.StatusOK)
}

func (s *Server) calcResponse(tool string, out *finance.Outcome, inputHash string, start time.Time, cached bool) *CalculateResponse {
	return &CalculateResponse{
		RequestID: s.nextRequestID(),
		Tool:      tool,
		Result:    out.Value,
		Budget:    out.Budget,
		Metadata: ResponseMetadata{
			InputHash:     inputHash,
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
			Cached:        cached,
		},
	}
}

// handleEstimate handles POST /estimate/loan-amount
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var features estimator.Features
	if err := json.NewDecoder(r.Body).Decode(&features); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	// the trained model when present, the rule of thumb otherwise
	predictor := s.model
	if predictor == nil {
		predictor = s.fallback
	}

	amount, err := predictor.Predict(features)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, &EstimateResponse{
		RequestID:       s.nextRequestID(),
		EstimatedAmount: amount,
		Model:           predictor.Name(),
	}, http.StatusOK)
}

// handleOpenAccount handles POST /accounts
func (s *Server) handleOpenAccount(w http.ResponseWriter, r *http.Request) {
	var req OpenAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	acct, err := s.accounts.Open(r.Context(), req.Owner)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, acct, http.StatusCreated)
}

// handleGetAccount handles GET /accounts/{id}
func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	acct, err := s.accounts.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, acct, http.StatusOK)
}

// handleDeposit handles POST /accounts/{id}/deposit
func (s *Server) handleDeposit(w http.ResponseWriter, r *http.Request) {
	s.handleBalanceChange(w, r, s.accounts.Deposit)
}

// handleWithdraw handles POST /accounts/{id}/withdraw
func (s *Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	s.handleBalanceChange(w, r, s.accounts.Withdraw)
}

func (s *Server) handleBalanceChange(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id string, amount float64) (*account.Account, error),
) {
	args, err := decodeArgs(r)
	if err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	amount, err := finance.Coerce("amount", args["amount"])
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	acct, err := apply(r.Context(), r.PathValue("id"), amount)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, acct, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "fincalc",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, &ErrorResponse{Error: ErrorBody{Code: code, Message: message}}, status)
}

// writeDomainError maps engine error categories onto HTTP statuses.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	var domainErr *errors.Error
	if e, ok := err.(*errors.Error); ok {
		domainErr = e
	} else {
		domainErr = errors.Internal("unexpected error", err)
	}

	status := http.StatusInternalServerError
	switch domainErr.Type {
	case errors.TypeInvalidType, errors.TypeInvalidValue, errors.TypeParsing:
		status = http.StatusBadRequest
	case errors.TypeNotFound:
		status = http.StatusNotFound
	case errors.TypeInsufficientFunds:
		status = http.StatusUnprocessableEntity
	}

	s.writeError(w, string(domainErr.Type), domainErr.Message, status)
}

func (s *Server) nextRequestID() string {
	return fmt.Sprintf("req-%d-%d", time.Now().Unix(), s.requestSeq.Add(1))
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.limiter != nil && !s.limiter.Allow(clientIP(r)) {
		s.writeError(w, "RATE_LIMITED", "too many requests", http.StatusTooManyRequests)
		return
	}
	s.mux.ServeHTTP(w, r)
}

// decodeArgs reads a flat JSON object of raw calculator inputs. Numbers
// stay json.Number so coercion sees exactly what the client sent.
func decodeArgs(r *http.Request) (finance.Args, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var args finance.Args
	if err := dec.Decode(&args); err != nil {
		return nil, err
	}
	return args, nil
}

// computeInputHash produces a deterministic hash for a tool invocation.
func computeInputHash(tool string, args finance.Args) string {
	var buf bytes.Buffer
	buf.WriteString(tool)
	buf.WriteByte(0)
	if data, err := json.Marshal(args); err == nil {
		buf.Write(data)
	}
	hash := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(hash[:])
}
