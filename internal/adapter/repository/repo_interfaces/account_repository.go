package repo_interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	GetByID(ctx context.Context, id string) (domain.Account, error)
	// GetByIDForUpdate loads the account inside tx holding its row lock until
	// the unit of work commits or rolls back.
	GetByIDForUpdate(ctx context.Context, tx Tx, id string) (domain.Account, error)
	UpdateBalance(ctx context.Context, tx Tx, id string, balance decimal.Decimal) error
	FindActiveDepositAccounts(ctx context.Context) ([]domain.Account, error)
	FindByClientAndType(ctx context.Context, clientID string, accountType domain.AccountType) (domain.Account, error)
	FindBankAccount(ctx context.Context) (domain.Account, error)
	BlockByClient(ctx context.Context, clientID string) error
}
