package service_interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking/internal/domain"
)

type RateService interface {
	// Convert adds the converted equivalent of amount (denominated in the
	// sender account's currency) to the recipient account's balance and
	// returns the updated account. It performs no persistence.
	Convert(ctx context.Context, amount decimal.Decimal, recipient domain.Account, sender domain.Account) (domain.Account, error)
	GetRates(ctx context.Context) ([]domain.CurrencyExchangeRate, error)
}
