package account

import (
	"context"
	"sync"

	"fincalc/internal/errors"
)

// MemoryRepository keeps accounts in process memory. Copies go in and out
// so callers never share the stored structs.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]Account
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		accounts: make(map[string]Account),
	}
}

// Get implements Repository.
func (r *MemoryRepository) Get(ctx context.Context, id string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acct, ok := r.accounts[id]
	if !ok {
		return nil, errors.NotFound("account", id)
	}
	return &acct, nil
}

// Save implements Repository.
func (r *MemoryRepository) Save(ctx context.Context, acct *Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[acct.ID] = *acct
	return nil
}
