package repo_interfaces

import (
	"context"

	"github.com/api-sage/core-banking/internal/domain"
)

type TransactionRepository interface {
	// Create inserts the transaction inside the same unit of work as the
	// balance updates it records.
	Create(ctx context.Context, tx Tx, transaction domain.Transaction) (domain.Transaction, error)
	FindByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)
}
