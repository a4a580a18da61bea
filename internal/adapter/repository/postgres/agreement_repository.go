package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking/internal/domain"
)

type AgreementRepository struct {
	db *sql.DB
}

func NewAgreementRepository(db *sql.DB) *AgreementRepository {
	return &AgreementRepository{db: db}
}

const agreementColumns = `id, account_id, product_id, interest_rate, status, amount, is_deleted, created_at, updated_at`

func (r *AgreementRepository) Create(ctx context.Context, agreement domain.Agreement) (domain.Agreement, error) {
	const query = `
INSERT INTO agreements (
	account_id,
	product_id,
	interest_rate,
	status,
	amount
) VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at, updated_at`

	rate := decimal.NullDecimal{}
	if agreement.InterestRate != nil {
		rate = decimal.NewNullDecimal(*agreement.InterestRate)
	}

	err := r.db.QueryRowContext(
		ctx,
		query,
		agreement.AccountID,
		agreement.ProductID,
		rate,
		agreement.Status,
		agreement.Amount,
	).Scan(&agreement.ID, &agreement.CreatedAt, &agreement.UpdatedAt)
	if err != nil {
		return domain.Agreement{}, fmt.Errorf("create agreement: %w", err)
	}

	return agreement, nil
}

func (r *AgreementRepository) FindActiveByAccount(ctx context.Context, accountID string) (domain.Agreement, error) {
	query := `SELECT ` + agreementColumns + `
FROM agreements
WHERE account_id = $1
  AND status = $2
  AND is_deleted = FALSE
ORDER BY created_at DESC
LIMIT 1`

	return scanAgreement(
		r.db.QueryRowContext(ctx, query, accountID, domain.AgreementStatusActive),
		"find active agreement by account",
	)
}

func (r *AgreementRepository) FindActiveByClientAndProductType(ctx context.Context, clientID string, productType domain.ProductType) (domain.Agreement, error) {
	const query = `
SELECT ag.id, ag.account_id, ag.product_id, ag.interest_rate, ag.status, ag.amount, ag.is_deleted, ag.created_at, ag.updated_at
FROM agreements ag
JOIN accounts a ON a.id = ag.account_id AND a.is_deleted = FALSE
JOIN products p ON p.id = ag.product_id AND p.is_deleted = FALSE
WHERE a.client_id = $1
  AND p.type = $2
  AND ag.status = $3
  AND ag.is_deleted = FALSE
ORDER BY ag.created_at DESC
LIMIT 1`

	return scanAgreement(
		r.db.QueryRowContext(ctx, query, clientID, productType, domain.AgreementStatusActive),
		"find active agreement by client and product type",
	)
}

func (r *AgreementRepository) UpdateStatus(ctx context.Context, id string, status domain.AgreementStatus) error {
	const query = `
UPDATE agreements
SET status = $2,
    updated_at = NOW()
WHERE id = $1
  AND is_deleted = FALSE`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update agreement status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update agreement status rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update agreement status %q: %w", id, domain.ErrRecordNotFound)
	}

	return nil
}

func scanAgreement(row rowScanner, op string) (domain.Agreement, error) {
	var (
		agreement domain.Agreement
		rate      decimal.NullDecimal
	)

	err := row.Scan(
		&agreement.ID,
		&agreement.AccountID,
		&agreement.ProductID,
		&rate,
		&agreement.Status,
		&agreement.Amount,
		&agreement.IsDeleted,
		&agreement.CreatedAt,
		&agreement.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Agreement{}, domain.ErrRecordNotFound
	}
	if err != nil {
		return domain.Agreement{}, fmt.Errorf("%s: %w", op, err)
	}

	if rate.Valid {
		value := rate.Decimal
		agreement.InterestRate = &value
	}

	return agreement, nil
}
