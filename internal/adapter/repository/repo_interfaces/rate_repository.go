package repo_interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking/internal/domain"
)

type RateRepository interface {
	GetAll(ctx context.Context) ([]domain.CurrencyExchangeRate, error)
	GetByCurrency(ctx context.Context, currency domain.CurrencyCode) (domain.CurrencyExchangeRate, error)
	// Upsert updates the rate in place when a non-deleted row exists for the
	// code and inserts otherwise, keeping one live row per currency.
	Upsert(ctx context.Context, currency domain.CurrencyCode, rate decimal.Decimal) error
	SoftDelete(ctx context.Context, currency domain.CurrencyCode) error
}
