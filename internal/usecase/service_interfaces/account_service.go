package service_interfaces

import (
	"context"

	"github.com/api-sage/core-banking/internal/domain"
)

type AccountService interface {
	GetAccount(ctx context.Context, id string) (domain.Account, error)
	GetAccountTransactions(ctx context.Context, id string) ([]domain.Transaction, error)
	// BlockClientAccounts moves every account of the client to BLOCKED.
	BlockClientAccounts(ctx context.Context, clientID string) error
}
