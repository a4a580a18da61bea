package memory

import (
	"context"
	"time"

	"github.com/api-sage/core-banking/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/core-banking/internal/domain"
)

type TransactionRepository struct {
	store *Store
}

func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

func (r *TransactionRepository) Create(_ context.Context, _ repo_interfaces.Tx, transaction domain.Transaction) (domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	transaction.CreatedAt = time.Now().UTC()
	r.store.transactions = append(r.store.transactions, transaction)
	return transaction, nil
}

func (r *TransactionRepository) FindByAccount(_ context.Context, accountID string) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var transactions []domain.Transaction
	for i := len(r.store.transactions) - 1; i >= 0; i-- {
		transaction := r.store.transactions[i]
		if transaction.DebitAccountID == accountID || transaction.CreditAccountID == accountID {
			transactions = append(transactions, transaction)
		}
	}
	return transactions, nil
}
