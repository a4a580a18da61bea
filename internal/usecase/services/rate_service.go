package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/core-banking/internal/domain"
	"github.com/api-sage/core-banking/internal/logger"
	"github.com/api-sage/core-banking/internal/usecase/service_interfaces"
)

// Verify that RateService implements the service_interfaces.RateService interface
var _ service_interfaces.RateService = (*RateService)(nil)

type RateService struct {
	rateRepo repo_interfaces.RateRepository
}

func NewRateService(rateRepo repo_interfaces.RateRepository) *RateService {
	return &RateService{rateRepo: rateRepo}
}

// Convert pivots through the base currency: the amount is divided by the
// sender currency's rate-to-base (rounded half-up to 2 decimals) and the
// result multiplied by the recipient currency's rate-to-base, rounded to the
// recipient's minor unit at the point of balance addition.
func (s *RateService) Convert(ctx context.Context, amount decimal.Decimal, recipient domain.Account, sender domain.Account) (domain.Account, error) {
	senderRate, err := s.rateRepo.GetByCurrency(ctx, sender.Currency)
	if err != nil {
		return domain.Account{}, fmt.Errorf("rate for %s: %w", sender.Currency, err)
	}
	recipientRate, err := s.rateRepo.GetByCurrency(ctx, recipient.Currency)
	if err != nil {
		return domain.Account{}, fmt.Errorf("rate for %s: %w", recipient.Currency, err)
	}

	if senderRate.Rate.LessThanOrEqual(decimal.Zero) {
		return domain.Account{}, fmt.Errorf("rate for %s must be positive: %w", sender.Currency, domain.ErrInvalidArgument)
	}
	if recipientRate.Rate.LessThanOrEqual(decimal.Zero) {
		return domain.Account{}, fmt.Errorf("rate for %s must be positive: %w", recipient.Currency, domain.ErrInvalidArgument)
	}

	baseAmount := amount.DivRound(senderRate.Rate, 2)
	credited := baseAmount.Mul(recipientRate.Rate).Round(2)

	if recipient.Balance == nil {
		return domain.Account{}, fmt.Errorf("recipient balance is not initialized: %w", domain.ErrInvalidArgument)
	}
	newBalance := recipient.Balance.Add(credited)
	recipient.Balance = &newBalance

	logger.Info("rate service converted amount", logger.Fields{
		"amount":         amount,
		"senderCcy":      sender.Currency,
		"recipientCcy":   recipient.Currency,
		"baseAmount":     baseAmount,
		"creditedAmount": credited,
	})

	return recipient, nil
}

func (s *RateService) GetRates(ctx context.Context) ([]domain.CurrencyExchangeRate, error) {
	rates, err := s.rateRepo.GetAll(ctx)
	if err != nil {
		logger.Error("rate service get rates failed", err, nil)
		return nil, err
	}
	return rates, nil
}
