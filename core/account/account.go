// Package account holds personal account balances behind a repository
// interface. Balance updates go through the service so the floor check and
// rounding are applied in exactly one place.
package account

import "context"

// Account is a single owner's balance.
type Account struct {
	ID      string  `json:"id"`
	Owner   string  `json:"owner"`
	Balance float64 `json:"balance"`
}

// Repository persists accounts. Implementations must be safe for
// concurrent use.
type Repository interface {
	Get(ctx context.Context, id string) (*Account, error)
	Save(ctx context.Context, acct *Account) error
}
