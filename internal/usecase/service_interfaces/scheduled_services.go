package service_interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking/internal/domain"
)

type AccrualService interface {
	RunDepositAccrual(ctx context.Context) error
}

type RecurringPaymentService interface {
	RunRecurringPayments(ctx context.Context) error
}

type RateRefreshService interface {
	RefreshRates(ctx context.Context) error
}

// RateSource is the external provider collaborating with the rate refresh
// job: one call returns every known currency's rate to the base currency.
type RateSource interface {
	FetchRates(ctx context.Context) (map[domain.CurrencyCode]decimal.Decimal, error)
}
