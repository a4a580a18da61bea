package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/api-sage/core-banking/internal/domain"
)

type ClientRepository struct {
	store *Store
}

func NewClientRepository(store *Store) *ClientRepository {
	return &ClientRepository{store: store}
}

func (r *ClientRepository) Create(_ context.Context, client domain.Client) (domain.Client, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now

	r.store.clients[client.ID] = client
	return client, nil
}

func (r *ClientRepository) GetByID(_ context.Context, id string) (domain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	client, ok := r.store.clients[id]
	if !ok || client.IsDeleted {
		return domain.Client{}, domain.ErrRecordNotFound
	}
	return client, nil
}

func (r *ClientRepository) IsBlocked(ctx context.Context, id string) (bool, error) {
	client, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return client.Blocked(), nil
}

func (r *ClientRepository) FindIDsWithCurrentAndSavingsAccounts(_ context.Context) ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	types := make(map[string]map[domain.AccountType]bool)
	for _, account := range r.store.accounts {
		if account.IsDeleted {
			continue
		}
		if types[account.ClientID] == nil {
			types[account.ClientID] = make(map[domain.AccountType]bool)
		}
		types[account.ClientID][account.Type] = true
	}

	var ids []string
	for clientID, held := range types {
		client, ok := r.store.clients[clientID]
		if !ok || client.IsDeleted {
			continue
		}
		if held[domain.AccountTypeCurrent] && held[domain.AccountTypeSavings] {
			ids = append(ids, clientID)
		}
	}

	sort.Strings(ids)
	return ids, nil
}
