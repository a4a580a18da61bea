package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/api-sage/core-banking/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/core-banking/internal/domain"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, tx repo_interfaces.Tx, transaction domain.Transaction) (domain.Transaction, error) {
	sqlTxn, err := sqlTx(tx)
	if err != nil {
		return domain.Transaction{}, err
	}

	const query = `
INSERT INTO transactions (
	id,
	debit_account_id,
	credit_account_id,
	type,
	currency,
	amount,
	description
) VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at`

	err = sqlTxn.QueryRowContext(
		ctx,
		query,
		transaction.ID,
		transaction.DebitAccountID,
		transaction.CreditAccountID,
		transaction.Type,
		transaction.Currency,
		transaction.Amount,
		transaction.Description,
	).Scan(&transaction.CreatedAt)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	return transaction, nil
}

func (r *TransactionRepository) FindByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	const query = `
SELECT id, debit_account_id, credit_account_id, type, currency, amount, description, created_at
FROM transactions
WHERE debit_account_id = $1 OR credit_account_id = $1
ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("find transactions by account: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		err := rows.Scan(
			&transaction.ID,
			&transaction.DebitAccountID,
			&transaction.CreditAccountID,
			&transaction.Type,
			&transaction.Currency,
			&transaction.Amount,
			&transaction.Description,
			&transaction.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find transactions by account: %w", err)
	}

	return transactions, nil
}
