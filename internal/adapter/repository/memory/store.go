package memory

import (
	"context"
	"sync"

	"github.com/api-sage/core-banking/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/core-banking/internal/domain"
)

// Store backs the in-memory repositories. txMu serializes transfer units of
// work the way row locks do in postgres; mu guards plain map access so reads
// outside the unit of work never block on it.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	accounts     map[string]domain.Account
	transactions []domain.Transaction
	agreements   map[string]domain.Agreement
	clients      map[string]domain.Client
	products     map[string]domain.Product
	rates        map[domain.CurrencyCode]domain.CurrencyExchangeRate
	nextRateID   int64
}

func NewStore() *Store {
	return &Store{
		accounts:   make(map[string]domain.Account),
		agreements: make(map[string]domain.Agreement),
		clients:    make(map[string]domain.Client),
		products:   make(map[string]domain.Product),
		rates:      make(map[domain.CurrencyCode]domain.CurrencyExchangeRate),
	}
}

func (s *Store) BeginTx(_ context.Context) (repo_interfaces.Tx, error) {
	s.txMu.Lock()

	s.mu.RLock()
	snapshot := make(map[string]domain.Account, len(s.accounts))
	for id, account := range s.accounts {
		snapshot[id] = account
	}
	transactionCount := len(s.transactions)
	s.mu.RUnlock()

	return &memTx{store: s, accounts: snapshot, transactionCount: transactionCount}, nil
}

// SeedProduct installs a product row; products have no repository of their
// own in this core, they only gate deposit-account discovery.
func (s *Store) SeedProduct(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ID] = product
}

type memTx struct {
	store            *Store
	accounts         map[string]domain.Account
	transactionCount int
	done             bool
}

func (t *memTx) Commit() error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.txMu.Unlock()
	return nil
}

func (t *memTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true

	t.store.mu.Lock()
	t.store.accounts = t.accounts
	t.store.transactions = t.store.transactions[:t.transactionCount]
	t.store.mu.Unlock()

	t.store.txMu.Unlock()
	return nil
}
