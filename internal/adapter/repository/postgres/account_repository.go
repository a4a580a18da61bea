package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/core-banking/internal/domain"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `id, client_id, name, type, status, balance, currency, is_deleted, created_at, updated_at`

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	const query = `
INSERT INTO accounts (
	client_id,
	name,
	type,
	status,
	balance,
	currency
) VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at`

	balance := decimal.NullDecimal{}
	if account.Balance != nil {
		balance = decimal.NewNullDecimal(*account.Balance)
	}

	err := r.db.QueryRowContext(
		ctx,
		query,
		account.ClientID,
		account.Name,
		account.Type,
		account.Status,
		balance,
		account.Currency,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 AND is_deleted = FALSE`
	return scanAccount(r.db.QueryRowContext(ctx, query, id), "get account by id")
}

func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, tx repo_interfaces.Tx, id string) (domain.Account, error) {
	sqlTxn, err := sqlTx(tx)
	if err != nil {
		return domain.Account{}, err
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 AND is_deleted = FALSE FOR UPDATE`
	return scanAccount(sqlTxn.QueryRowContext(ctx, query, id), "get account for update")
}

func (r *AccountRepository) UpdateBalance(ctx context.Context, tx repo_interfaces.Tx, id string, balance decimal.Decimal) error {
	sqlTxn, err := sqlTx(tx)
	if err != nil {
		return err
	}

	const query = `
UPDATE accounts
SET balance = $2,
    updated_at = NOW()
WHERE id = $1
  AND is_deleted = FALSE`

	result, err := sqlTxn.ExecContext(ctx, query, id, balance)
	if err != nil {
		return fmt.Errorf("update account balance: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update account balance rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update account balance %q: %w", id, domain.ErrRecordNotFound)
	}

	return nil
}

func (r *AccountRepository) FindActiveDepositAccounts(ctx context.Context) ([]domain.Account, error) {
	// DISTINCT plus the agreement status filter: an account carrying a stale
	// non-deleted agreement next to its ACTIVE one must appear once, or the
	// accrual batch would pay it twice.
	const query = `
SELECT DISTINCT a.id, a.client_id, a.name, a.type, a.status, a.balance, a.currency, a.is_deleted, a.created_at, a.updated_at
FROM accounts a
JOIN agreements ag ON ag.account_id = a.id AND ag.is_deleted = FALSE AND ag.status = $5
JOIN products p ON p.id = ag.product_id AND p.is_deleted = FALSE
WHERE a.type = $1
  AND a.status = $2
  AND a.is_deleted = FALSE
  AND p.type = $3
  AND p.status = $4
ORDER BY a.id`

	rows, err := r.db.QueryContext(
		ctx,
		query,
		domain.AccountTypeDeposit,
		domain.AccountStatusActive,
		domain.ProductTypeDeposit,
		domain.ProductStatusActive,
		domain.AgreementStatusActive,
	)
	if err != nil {
		return nil, fmt.Errorf("find active deposit accounts: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows, "find active deposit accounts")
}

func (r *AccountRepository) FindByClientAndType(ctx context.Context, clientID string, accountType domain.AccountType) (domain.Account, error) {
	query := `SELECT ` + accountColumns + `
FROM accounts
WHERE client_id = $1
  AND type = $2
  AND is_deleted = FALSE
ORDER BY created_at
LIMIT 1`
	return scanAccount(r.db.QueryRowContext(ctx, query, clientID, accountType), "find account by client and type")
}

func (r *AccountRepository) FindBankAccount(ctx context.Context) (domain.Account, error) {
	const query = `
SELECT a.id, a.client_id, a.name, a.type, a.status, a.balance, a.currency, a.is_deleted, a.created_at, a.updated_at
FROM accounts a
JOIN clients c ON c.id = a.client_id AND c.is_deleted = FALSE
WHERE c.status = $1
  AND a.is_deleted = FALSE
ORDER BY a.created_at
LIMIT 1`

	return scanAccount(r.db.QueryRowContext(ctx, query, domain.ClientStatusBank), "find bank account")
}

func (r *AccountRepository) BlockByClient(ctx context.Context, clientID string) error {
	const query = `
UPDATE accounts
SET status = $2,
    updated_at = NOW()
WHERE client_id = $1
  AND is_deleted = FALSE`

	if _, err := r.db.ExecContext(ctx, query, clientID, domain.AccountStatusBlocked); err != nil {
		return fmt.Errorf("block accounts by client: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner, op string) (domain.Account, error) {
	var (
		account domain.Account
		balance decimal.NullDecimal
	)

	err := row.Scan(
		&account.ID,
		&account.ClientID,
		&account.Name,
		&account.Type,
		&account.Status,
		&balance,
		&account.Currency,
		&account.IsDeleted,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Account{}, domain.ErrRecordNotFound
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("%s: %w", op, err)
	}

	if balance.Valid {
		value := balance.Decimal
		account.Balance = &value
	}

	return account, nil
}

func collectAccounts(rows *sql.Rows, op string) ([]domain.Account, error) {
	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows, op)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return accounts, nil
}
