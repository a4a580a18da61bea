package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/api-sage/core-banking/internal/domain"
)

type AgreementRepository struct {
	store *Store
}

func NewAgreementRepository(store *Store) *AgreementRepository {
	return &AgreementRepository{store: store}
}

func (r *AgreementRepository) Create(_ context.Context, agreement domain.Agreement) (domain.Agreement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if agreement.ID == "" {
		agreement.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	agreement.CreatedAt = now
	agreement.UpdatedAt = now

	r.store.agreements[agreement.ID] = agreement
	return agreement, nil
}

func (r *AgreementRepository) FindActiveByAccount(_ context.Context, accountID string) (domain.Agreement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var (
		found domain.Agreement
		ok    bool
	)
	for _, agreement := range r.store.agreements {
		if agreement.IsDeleted || agreement.AccountID != accountID || agreement.Status != domain.AgreementStatusActive {
			continue
		}
		if !ok || agreement.CreatedAt.After(found.CreatedAt) {
			found = agreement
			ok = true
		}
	}
	if !ok {
		return domain.Agreement{}, domain.ErrRecordNotFound
	}
	return found, nil
}

func (r *AgreementRepository) FindActiveByClientAndProductType(_ context.Context, clientID string, productType domain.ProductType) (domain.Agreement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var (
		found domain.Agreement
		ok    bool
	)
	for _, agreement := range r.store.agreements {
		if agreement.IsDeleted || agreement.Status != domain.AgreementStatusActive {
			continue
		}
		account, accountOK := r.store.accounts[agreement.AccountID]
		if !accountOK || account.IsDeleted || account.ClientID != clientID {
			continue
		}
		product, productOK := r.store.products[agreement.ProductID]
		if !productOK || product.IsDeleted || product.Type != productType {
			continue
		}
		if !ok || agreement.CreatedAt.After(found.CreatedAt) {
			found = agreement
			ok = true
		}
	}
	if !ok {
		return domain.Agreement{}, domain.ErrRecordNotFound
	}
	return found, nil
}

func (r *AgreementRepository) UpdateStatus(_ context.Context, id string, status domain.AgreementStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	agreement, ok := r.store.agreements[id]
	if !ok || agreement.IsDeleted {
		return domain.ErrRecordNotFound
	}

	agreement.Status = status
	agreement.UpdatedAt = time.Now().UTC()
	r.store.agreements[id] = agreement
	return nil
}
