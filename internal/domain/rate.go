package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyExchangeRate holds the latest known rate to the base currency for
// one currency code. Rows are logically replaced on refresh, never versioned;
// at most one non-deleted row exists per code.
type CurrencyExchangeRate struct {
	ID        int64
	Currency  CurrencyCode
	Rate      decimal.Decimal
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
