package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/core-banking/internal/logger"
	"github.com/api-sage/core-banking/internal/usecase/service_interfaces"
)

// Verify that RateRefreshService implements the service_interfaces.RateRefreshService interface
var _ service_interfaces.RateRefreshService = (*RateRefreshService)(nil)

type RateRefreshService struct {
	source   service_interfaces.RateSource
	rateRepo repo_interfaces.RateRepository
}

func NewRateRefreshService(source service_interfaces.RateSource, rateRepo repo_interfaces.RateRepository) *RateRefreshService {
	return &RateRefreshService{source: source, rateRepo: rateRepo}
}

// RefreshRates pulls the latest quotes from the external source and upserts
// them into the exchange rate store, one row per currency code.
func (s *RateRefreshService) RefreshRates(ctx context.Context) error {
	rates, err := s.source.FetchRates(ctx)
	if err != nil {
		return fmt.Errorf("fetch external rates: %w", err)
	}

	updated := 0
	for currency, rate := range rates {
		if rate.LessThanOrEqual(decimal.Zero) {
			logger.Warn("rate refresh skipped non-positive rate", logger.Fields{
				"currency": currency,
				"rate":     rate,
			})
			continue
		}
		if err := s.rateRepo.Upsert(ctx, currency, rate); err != nil {
			logger.Error("rate refresh upsert failed", err, logger.Fields{
				"currency": currency,
			})
			continue
		}
		updated++
	}

	logger.Info("rate refresh finished", logger.Fields{
		"fetched": len(rates),
		"updated": updated,
	})
	return nil
}
