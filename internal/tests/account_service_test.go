package services_test

import (
	"context"
	"testing"

	"github.com/api-sage/core-banking/internal/domain"
	"github.com/api-sage/core-banking/internal/usecase/service_interfaces"
	"github.com/api-sage/core-banking/internal/usecase/services"
)

func TestAccountServiceGetAccount(t *testing.T) {
	f := newFixture()
	svc := services.NewAccountService(f.accounts, f.transactions)

	client := f.seedClient(t, domain.ClientStatusActive)
	account := f.seedAccount(t, client.ID, domain.AccountTypeCurrent, domain.AccountStatusActive, "250.00", domain.CurrencyEUR)

	got, err := svc.GetAccount(context.Background(), account.ID)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if got.ID != account.ID {
		t.Fatalf("account id = %s, want %s", got.ID, account.ID)
	}

	if _, err := svc.GetAccount(context.Background(), "missing"); !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want record not found", err)
	}
}

func TestAccountServiceGetAccountTransactions(t *testing.T) {
	f := newFixture()
	svc := services.NewAccountService(f.accounts, f.transactions)

	client := f.seedClient(t, domain.ClientStatusActive)
	debit := f.seedAccount(t, client.ID, domain.AccountTypeCurrent, domain.AccountStatusActive, "250.00", domain.CurrencyEUR)
	credit := f.seedAccount(t, client.ID, domain.AccountTypeSavings, domain.AccountStatusActive, "0.00", domain.CurrencyEUR)

	amount := mustDecimal(t, "25.00")
	if _, err := f.transferService.Transfer(context.Background(), service_interfaces.TransferRequest{
		DebitAccountID:  debit.ID,
		CreditAccountID: credit.ID,
		Type:            domain.TransactionTypeTransfer,
		Amount:          &amount,
	}); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	transactions, err := svc.GetAccountTransactions(context.Background(), debit.ID)
	if err != nil {
		t.Fatalf("get account transactions: %v", err)
	}
	if len(transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(transactions))
	}

	// An unknown account is an error, not an empty history.
	if _, err := svc.GetAccountTransactions(context.Background(), "missing"); !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want record not found", err)
	}
}

func TestAccountServiceBlockClientAccounts(t *testing.T) {
	f := newFixture()
	svc := services.NewAccountService(f.accounts, f.transactions)

	client := f.seedClient(t, domain.ClientStatusActive)
	current := f.seedAccount(t, client.ID, domain.AccountTypeCurrent, domain.AccountStatusActive, "250.00", domain.CurrencyEUR)
	savings := f.seedAccount(t, client.ID, domain.AccountTypeSavings, domain.AccountStatusActive, "0.00", domain.CurrencyEUR)

	if err := svc.BlockClientAccounts(context.Background(), client.ID); err != nil {
		t.Fatalf("block client accounts: %v", err)
	}

	for _, id := range []string{current.ID, savings.ID} {
		account, err := svc.GetAccount(context.Background(), id)
		if err != nil {
			t.Fatalf("get account %s: %v", id, err)
		}
		if account.Status != domain.AccountStatusBlocked {
			t.Fatalf("account %s status = %s, want BLOCKED", id, account.Status)
		}
	}
}
