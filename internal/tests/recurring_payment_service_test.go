package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/api-sage/core-banking/internal/domain"
	"github.com/api-sage/core-banking/internal/usecase/services"
)

func seedSavingsProduct(t *testing.T, f *fixture) domain.Product {
	t.Helper()
	product := domain.Product{
		ID:     uuid.NewString(),
		Name:   "Savings Plan",
		Type:   domain.ProductTypeSavings,
		Status: domain.ProductStatusActive,
	}
	f.store.SeedProduct(product)
	return product
}

func TestRecurringPaymentMovesAgreementAmount(t *testing.T) {
	f := newFixture()
	svc := services.NewRecurringPaymentService(f.clients, f.accounts, f.agreements, f.transferService)

	product := seedSavingsProduct(t, f)
	client := f.seedClient(t, domain.ClientStatusActive)
	current := f.seedAccount(t, client.ID, domain.AccountTypeCurrent, domain.AccountStatusActive, "500.00", domain.CurrencyEUR)
	savings := f.seedAccount(t, client.ID, domain.AccountTypeSavings, domain.AccountStatusActive, "100.00", domain.CurrencyEUR)

	if _, err := f.agreements.Create(context.Background(), domain.Agreement{
		AccountID: savings.ID,
		ProductID: product.ID,
		Status:    domain.AgreementStatusActive,
		Amount:    mustDecimal(t, "200.00"),
	}); err != nil {
		t.Fatalf("seed agreement: %v", err)
	}

	if err := svc.RunRecurringPayments(context.Background()); err != nil {
		t.Fatalf("run recurring payments: %v", err)
	}

	assertBalance(t, f, current.ID, "300.00")
	assertBalance(t, f, savings.ID, "300.00")

	transactions := f.accountTransactions(t, savings.ID)
	if len(transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(transactions))
	}
	transaction := transactions[0]
	if transaction.Type != domain.TransactionTypeRecurringPayment {
		t.Fatalf("transaction type = %s, want RECURRING_PAYMENT", transaction.Type)
	}
	if transaction.DebitAccountID != current.ID || transaction.CreditAccountID != savings.ID {
		t.Fatal("payment must move from the current account to the savings account")
	}
}

func TestRecurringPaymentSkipsClientsWithoutActiveAgreement(t *testing.T) {
	f := newFixture()
	svc := services.NewRecurringPaymentService(f.clients, f.accounts, f.agreements, f.transferService)

	product := seedSavingsProduct(t, f)
	client := f.seedClient(t, domain.ClientStatusActive)
	current := f.seedAccount(t, client.ID, domain.AccountTypeCurrent, domain.AccountStatusActive, "500.00", domain.CurrencyEUR)
	savings := f.seedAccount(t, client.ID, domain.AccountTypeSavings, domain.AccountStatusActive, "100.00", domain.CurrencyEUR)

	if _, err := f.agreements.Create(context.Background(), domain.Agreement{
		AccountID: savings.ID,
		ProductID: product.ID,
		Status:    domain.AgreementStatusSuspended,
		Amount:    mustDecimal(t, "200.00"),
	}); err != nil {
		t.Fatalf("seed agreement: %v", err)
	}

	// A suspended agreement does not authorize the payment; the run still
	// succeeds.
	if err := svc.RunRecurringPayments(context.Background()); err != nil {
		t.Fatalf("run recurring payments: %v", err)
	}

	assertBalance(t, f, current.ID, "500.00")
	assertBalance(t, f, savings.ID, "100.00")
	if transactions := f.accountTransactions(t, savings.ID); len(transactions) != 0 {
		t.Fatalf("got %d transactions, want 0", len(transactions))
	}
}

func TestRecurringPaymentFailureIsolatedPerClient(t *testing.T) {
	f := newFixture()
	svc := services.NewRecurringPaymentService(f.clients, f.accounts, f.agreements, f.transferService)

	product := seedSavingsProduct(t, f)

	broke := f.seedClient(t, domain.ClientStatusActive)
	brokeCurrent := f.seedAccount(t, broke.ID, domain.AccountTypeCurrent, domain.AccountStatusActive, "50.00", domain.CurrencyEUR)
	brokeSavings := f.seedAccount(t, broke.ID, domain.AccountTypeSavings, domain.AccountStatusActive, "0.00", domain.CurrencyEUR)

	funded := f.seedClient(t, domain.ClientStatusActive)
	fundedCurrent := f.seedAccount(t, funded.ID, domain.AccountTypeCurrent, domain.AccountStatusActive, "500.00", domain.CurrencyEUR)
	fundedSavings := f.seedAccount(t, funded.ID, domain.AccountTypeSavings, domain.AccountStatusActive, "0.00", domain.CurrencyEUR)

	for _, savingsID := range []string{brokeSavings.ID, fundedSavings.ID} {
		if _, err := f.agreements.Create(context.Background(), domain.Agreement{
			AccountID: savingsID,
			ProductID: product.ID,
			Status:    domain.AgreementStatusActive,
			Amount:    mustDecimal(t, "200.00"),
		}); err != nil {
			t.Fatalf("seed agreement: %v", err)
		}
	}

	// The broke client's insufficient funds never blocks the funded one.
	if err := svc.RunRecurringPayments(context.Background()); err != nil {
		t.Fatalf("run recurring payments: %v", err)
	}

	assertBalance(t, f, brokeCurrent.ID, "50.00")
	assertBalance(t, f, brokeSavings.ID, "0.00")
	assertBalance(t, f, fundedCurrent.ID, "300.00")
	assertBalance(t, f, fundedSavings.ID, "200.00")
}
