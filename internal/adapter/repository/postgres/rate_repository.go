package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking/internal/domain"
)

type RateRepository struct {
	db *sql.DB
}

func NewRateRepository(db *sql.DB) *RateRepository {
	return &RateRepository{db: db}
}

func (r *RateRepository) GetAll(ctx context.Context) ([]domain.CurrencyExchangeRate, error) {
	const query = `
SELECT id, currency, rate, is_deleted, created_at, updated_at
FROM currency_exchange_rates
WHERE is_deleted = FALSE
ORDER BY currency`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get rates: %w", err)
	}
	defer rows.Close()

	var rates []domain.CurrencyExchangeRate
	for rows.Next() {
		var rate domain.CurrencyExchangeRate
		err := rows.Scan(&rate.ID, &rate.Currency, &rate.Rate, &rate.IsDeleted, &rate.CreatedAt, &rate.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan rate: %w", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get rates: %w", err)
	}

	return rates, nil
}

func (r *RateRepository) GetByCurrency(ctx context.Context, currency domain.CurrencyCode) (domain.CurrencyExchangeRate, error) {
	const query = `
SELECT id, currency, rate, is_deleted, created_at, updated_at
FROM currency_exchange_rates
WHERE currency = $1
  AND is_deleted = FALSE`

	var rate domain.CurrencyExchangeRate
	err := r.db.QueryRowContext(ctx, query, currency).Scan(
		&rate.ID,
		&rate.Currency,
		&rate.Rate,
		&rate.IsDeleted,
		&rate.CreatedAt,
		&rate.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CurrencyExchangeRate{}, domain.ErrRecordNotFound
	}
	if err != nil {
		return domain.CurrencyExchangeRate{}, fmt.Errorf("get rate by currency: %w", err)
	}

	return rate, nil
}

func (r *RateRepository) Upsert(ctx context.Context, currency domain.CurrencyCode, rate decimal.Decimal) error {
	// The partial unique index on (currency) WHERE is_deleted = FALSE keeps
	// one live row per code; the update path fires when that row exists.
	const query = `
INSERT INTO currency_exchange_rates (currency, rate)
VALUES ($1, $2)
ON CONFLICT (currency) WHERE is_deleted = FALSE
DO UPDATE SET rate = EXCLUDED.rate, updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, currency, rate); err != nil {
		return fmt.Errorf("upsert rate %s: %w", currency, err)
	}
	return nil
}

func (r *RateRepository) SoftDelete(ctx context.Context, currency domain.CurrencyCode) error {
	const query = `
UPDATE currency_exchange_rates
SET is_deleted = TRUE,
    updated_at = NOW()
WHERE currency = $1
  AND is_deleted = FALSE`

	result, err := r.db.ExecContext(ctx, query, currency)
	if err != nil {
		return fmt.Errorf("soft delete rate %s: %w", currency, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("soft delete rate rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("soft delete rate %s: %w", currency, domain.ErrRecordNotFound)
	}

	return nil
}
