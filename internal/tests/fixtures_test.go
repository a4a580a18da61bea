package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking/internal/adapter/repository/memory"
	"github.com/api-sage/core-banking/internal/domain"
	"github.com/api-sage/core-banking/internal/usecase/services"
)

// fixture wires the services against the in-memory repositories the same way
// cmd/server wires them against postgres.
type fixture struct {
	store        *memory.Store
	accounts     *memory.AccountRepository
	transactions *memory.TransactionRepository
	agreements   *memory.AgreementRepository
	clients      *memory.ClientRepository
	rates        *memory.RateRepository

	rateService     *services.RateService
	transferService *services.TransferService
}

func newFixture() *fixture {
	store := memory.NewStore()

	f := &fixture{
		store:        store,
		accounts:     memory.NewAccountRepository(store),
		transactions: memory.NewTransactionRepository(store),
		agreements:   memory.NewAgreementRepository(store),
		clients:      memory.NewClientRepository(store),
		rates:        memory.NewRateRepository(store),
	}
	f.rateService = services.NewRateService(f.rates)
	f.transferService = services.NewTransferService(store, f.accounts, f.transactions, f.clients, f.rateService)
	return f
}

func (f *fixture) seedClient(t *testing.T, status domain.ClientStatus) domain.Client {
	t.Helper()
	client, err := f.clients.Create(context.Background(), domain.Client{
		Status:    status,
		FirstName: "Test",
		LastName:  "Client",
	})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return client
}

func (f *fixture) seedAccount(
	t *testing.T,
	clientID string,
	accountType domain.AccountType,
	status domain.AccountStatus,
	balance string,
	currency domain.CurrencyCode,
) domain.Account {
	t.Helper()
	b := mustDecimal(t, balance)
	account, err := f.accounts.Create(context.Background(), domain.Account{
		ClientID: clientID,
		Name:     string(accountType) + " account",
		Type:     accountType,
		Status:   status,
		Balance:  &b,
		Currency: currency,
	})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return account
}

func (f *fixture) seedRate(t *testing.T, currency domain.CurrencyCode, rate string) {
	t.Helper()
	if err := f.rates.Upsert(context.Background(), currency, mustDecimal(t, rate)); err != nil {
		t.Fatalf("seed rate %s: %v", currency, err)
	}
}

func (f *fixture) balance(t *testing.T, accountID string) decimal.Decimal {
	t.Helper()
	account, err := f.accounts.GetByID(context.Background(), accountID)
	if err != nil {
		t.Fatalf("load account %s: %v", accountID, err)
	}
	if account.Balance == nil {
		t.Fatalf("account %s has no balance", accountID)
	}
	return *account.Balance
}

func (f *fixture) accountTransactions(t *testing.T, accountID string) []domain.Transaction {
	t.Helper()
	transactions, err := f.transactions.FindByAccount(context.Background(), accountID)
	if err != nil {
		t.Fatalf("load transactions for %s: %v", accountID, err)
	}
	return transactions
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func assertBalance(t *testing.T, f *fixture, accountID, want string) {
	t.Helper()
	got := f.balance(t, accountID)
	if !got.Equal(mustDecimal(t, want)) {
		t.Fatalf("balance of %s = %s, want %s", accountID, got, want)
	}
}
