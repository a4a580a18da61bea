package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking/internal/domain"
)

type RateRepository struct {
	store *Store
}

func NewRateRepository(store *Store) *RateRepository {
	return &RateRepository{store: store}
}

func (r *RateRepository) GetAll(_ context.Context) ([]domain.CurrencyExchangeRate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rates := make([]domain.CurrencyExchangeRate, 0, len(r.store.rates))
	for _, rate := range r.store.rates {
		if !rate.IsDeleted {
			rates = append(rates, rate)
		}
	}

	sort.Slice(rates, func(i, j int) bool { return rates[i].Currency < rates[j].Currency })
	return rates, nil
}

func (r *RateRepository) GetByCurrency(_ context.Context, currency domain.CurrencyCode) (domain.CurrencyExchangeRate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rate, ok := r.store.rates[currency]
	if !ok || rate.IsDeleted {
		return domain.CurrencyExchangeRate{}, domain.ErrRecordNotFound
	}
	return rate, nil
}

func (r *RateRepository) Upsert(_ context.Context, currency domain.CurrencyCode, value decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := r.store.rates[currency]; ok && !existing.IsDeleted {
		existing.Rate = value
		existing.UpdatedAt = now
		r.store.rates[currency] = existing
		return nil
	}

	r.store.nextRateID++
	r.store.rates[currency] = domain.CurrencyExchangeRate{
		ID:        r.store.nextRateID,
		Currency:  currency,
		Rate:      value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return nil
}

func (r *RateRepository) SoftDelete(_ context.Context, currency domain.CurrencyCode) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rate, ok := r.store.rates[currency]
	if !ok || rate.IsDeleted {
		return domain.ErrRecordNotFound
	}

	rate.IsDeleted = true
	rate.UpdatedAt = time.Now().UTC()
	r.store.rates[currency] = rate
	return nil
}
