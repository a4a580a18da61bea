package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/core-banking/internal/domain"
)

type AccountRepository struct {
	store *Store
}

func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	r.store.accounts[account.ID] = account
	return account, nil
}

func (r *AccountRepository) GetByID(_ context.Context, id string) (domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.get(id)
}

func (r *AccountRepository) GetByIDForUpdate(_ context.Context, _ repo_interfaces.Tx, id string) (domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.get(id)
}

func (r *AccountRepository) UpdateBalance(_ context.Context, _ repo_interfaces.Tx, id string, balance decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	account, ok := r.store.accounts[id]
	if !ok || account.IsDeleted {
		return domain.ErrRecordNotFound
	}

	account.Balance = &balance
	account.UpdatedAt = time.Now().UTC()
	r.store.accounts[id] = account
	return nil
}

func (r *AccountRepository) FindActiveDepositAccounts(_ context.Context) ([]domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var accounts []domain.Account
	for _, account := range r.store.accounts {
		if account.IsDeleted || account.Type != domain.AccountTypeDeposit || account.Status != domain.AccountStatusActive {
			continue
		}
		if r.hasActiveDepositProduct(account.ID) {
			accounts = append(accounts, account)
		}
	}

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (r *AccountRepository) FindByClientAndType(_ context.Context, clientID string, accountType domain.AccountType) (domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var (
		found domain.Account
		ok    bool
	)
	for _, account := range r.store.accounts {
		if account.IsDeleted || account.ClientID != clientID || account.Type != accountType {
			continue
		}
		if !ok || account.CreatedAt.Before(found.CreatedAt) {
			found = account
			ok = true
		}
	}
	if !ok {
		return domain.Account{}, domain.ErrRecordNotFound
	}
	return found, nil
}

func (r *AccountRepository) FindBankAccount(_ context.Context) (domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, account := range r.store.accounts {
		if account.IsDeleted {
			continue
		}
		client, ok := r.store.clients[account.ClientID]
		if ok && !client.IsDeleted && client.Status == domain.ClientStatusBank {
			return account, nil
		}
	}
	return domain.Account{}, domain.ErrRecordNotFound
}

func (r *AccountRepository) BlockByClient(_ context.Context, clientID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, account := range r.store.accounts {
		if account.IsDeleted || account.ClientID != clientID {
			continue
		}
		account.Status = domain.AccountStatusBlocked
		account.UpdatedAt = time.Now().UTC()
		r.store.accounts[id] = account
	}
	return nil
}

func (r *AccountRepository) get(id string) (domain.Account, error) {
	account, ok := r.store.accounts[id]
	if !ok || account.IsDeleted {
		return domain.Account{}, domain.ErrRecordNotFound
	}
	return account, nil
}

func (r *AccountRepository) hasActiveDepositProduct(accountID string) bool {
	for _, agreement := range r.store.agreements {
		if agreement.IsDeleted || agreement.AccountID != accountID || agreement.Status != domain.AgreementStatusActive {
			continue
		}
		product, ok := r.store.products[agreement.ProductID]
		if ok && !product.IsDeleted && product.Type == domain.ProductTypeDeposit && product.Status == domain.ProductStatusActive {
			return true
		}
	}
	return false
}
