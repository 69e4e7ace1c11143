package account

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"fincalc/core/finance"
	"fincalc/internal/errors"
	"fincalc/internal/logging"
)

// Service applies balance changes. Per-service locking serializes the
// read-modify-write cycle so concurrent deposits never lose updates.
type Service struct {
	repo   Repository
	logger *zap.Logger

	mu     sync.Mutex
	nextID atomic.Uint64
}

// NewService creates a Service backed by repo.
func NewService(repo Repository) *Service {
	return &Service{
		repo:   repo,
		logger: logging.Named("account"),
	}
}

// Open creates a new account with a zero balance.
func (s *Service) Open(ctx context.Context, owner string) (*Account, error) {
	if owner == "" {
		return nil, errors.InvalidValue("owner must not be empty")
	}

	acct := &Account{
		ID:    fmt.Sprintf("acct-%d", s.nextID.Add(1)),
		Owner: owner,
	}
	if err := s.repo.Save(ctx, acct); err != nil {
		return nil, err
	}

	s.logger.Info("account opened", zap.String("id", acct.ID))
	return acct, nil
}

// Get returns the account.
func (s *Service) Get(ctx context.Context, id string) (*Account, error) {
	return s.repo.Get(ctx, id)
}

// Deposit adds amount to the balance. amount must be > 0.
func (s *Service) Deposit(ctx context.Context, id string, amount float64) (*Account, error) {
	if amount <= 0 {
		return nil, errors.InvalidValue("amount must be > 0")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	acct.Balance = finance.Round2(acct.Balance + amount)
	if err := s.repo.Save(ctx, acct); err != nil {
		return nil, err
	}

	s.logger.Info("deposit",
		zap.String("id", id),
		zap.Float64("amount", amount),
		zap.Float64("balance", acct.Balance))
	return acct, nil
}

// Withdraw removes amount from the balance. The balance never goes below
// zero; an over-withdrawal fails with INSUFFICIENT_FUNDS.
func (s *Service) Withdraw(ctx context.Context, id string, amount float64) (*Account, error) {
	if amount <= 0 {
		return nil, errors.InvalidValue("amount must be > 0")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if amount > acct.Balance {
		return nil, errors.InsufficientFunds(acct.Balance, amount)
	}

	acct.Balance = finance.Round2(acct.Balance - amount)
	if err := s.repo.Save(ctx, acct); err != nil {
		return nil, err
	}

	s.logger.Info("withdrawal",
		zap.String("id", id),
		zap.Float64("amount", amount),
		zap.Float64("balance", acct.Balance))
	return acct, nil
}
