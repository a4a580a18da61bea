package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/api-sage/core-banking/internal/domain"
	"github.com/api-sage/core-banking/internal/usecase/services"
)

func seedDepositProduct(t *testing.T, f *fixture) domain.Product {
	t.Helper()
	product := domain.Product{
		ID:     uuid.NewString(),
		Name:   "Fixed Deposit",
		Type:   domain.ProductTypeDeposit,
		Status: domain.ProductStatusActive,
	}
	f.store.SeedProduct(product)
	return product
}

func seedBankAccount(t *testing.T, f *fixture, balance string) domain.Account {
	t.Helper()
	bank := f.seedClient(t, domain.ClientStatusBank)
	return f.seedAccount(t, bank.ID, domain.AccountTypeCurrent, domain.AccountStatusActive, balance, domain.CurrencyEUR)
}

func TestDepositAccrualPaysInterestDelta(t *testing.T) {
	f := newFixture()
	svc := services.NewAccrualService(f.accounts, f.agreements, f.transferService)

	bankAccount := seedBankAccount(t, f, "1000000.00")
	product := seedDepositProduct(t, f)

	holder := f.seedClient(t, domain.ClientStatusActive)
	deposit := f.seedAccount(t, holder.ID, domain.AccountTypeDeposit, domain.AccountStatusActive, "1000.00", domain.CurrencyEUR)

	rate := mustDecimal(t, "5")
	if _, err := f.agreements.Create(context.Background(), domain.Agreement{
		AccountID:    deposit.ID,
		ProductID:    product.ID,
		InterestRate: &rate,
		Status:       domain.AgreementStatusActive,
	}); err != nil {
		t.Fatalf("seed agreement: %v", err)
	}

	if err := svc.RunDepositAccrual(context.Background()); err != nil {
		t.Fatalf("run deposit accrual: %v", err)
	}

	// 5% of 1000.00 is credited on top of the principal; the bank account
	// funds exactly the interest, never the full balance.
	assertBalance(t, f, deposit.ID, "1050.00")
	assertBalance(t, f, bankAccount.ID, "999950.00")

	transactions := f.accountTransactions(t, deposit.ID)
	if len(transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(transactions))
	}
	transaction := transactions[0]
	if transaction.Type != domain.TransactionTypeDeposit {
		t.Fatalf("transaction type = %s, want DEPOSIT", transaction.Type)
	}
	if !transaction.Amount.Equal(mustDecimal(t, "50.00")) {
		t.Fatalf("transaction amount = %s, want 50.00", transaction.Amount)
	}
	if transaction.DebitAccountID != bankAccount.ID || transaction.CreditAccountID != deposit.ID {
		t.Fatal("interest must move from the bank account to the deposit account")
	}
}

func TestDepositAccrualRoundsInterestToCents(t *testing.T) {
	f := newFixture()
	svc := services.NewAccrualService(f.accounts, f.agreements, f.transferService)

	seedBankAccount(t, f, "1000.00")
	product := seedDepositProduct(t, f)

	holder := f.seedClient(t, domain.ClientStatusActive)
	deposit := f.seedAccount(t, holder.ID, domain.AccountTypeDeposit, domain.AccountStatusActive, "333.33", domain.CurrencyEUR)

	rate := mustDecimal(t, "2.5")
	if _, err := f.agreements.Create(context.Background(), domain.Agreement{
		AccountID:    deposit.ID,
		ProductID:    product.ID,
		InterestRate: &rate,
		Status:       domain.AgreementStatusActive,
	}); err != nil {
		t.Fatalf("seed agreement: %v", err)
	}

	if err := svc.RunDepositAccrual(context.Background()); err != nil {
		t.Fatalf("run deposit accrual: %v", err)
	}

	// 333.33 * 2.5% = 8.333..., rounded to 8.33.
	assertBalance(t, f, deposit.ID, "341.66")
}

func TestDepositAccrualSkipsAccountsWithoutUsableAgreements(t *testing.T) {
	f := newFixture()
	svc := services.NewAccrualService(f.accounts, f.agreements, f.transferService)

	bankAccount := seedBankAccount(t, f, "1000.00")
	product := seedDepositProduct(t, f)

	holder := f.seedClient(t, domain.ClientStatusActive)
	healthy := f.seedAccount(t, holder.ID, domain.AccountTypeDeposit, domain.AccountStatusActive, "100.00", domain.CurrencyEUR)
	rateless := f.seedAccount(t, holder.ID, domain.AccountTypeDeposit, domain.AccountStatusActive, "100.00", domain.CurrencyEUR)

	rate := mustDecimal(t, "10")
	if _, err := f.agreements.Create(context.Background(), domain.Agreement{
		AccountID:    healthy.ID,
		ProductID:    product.ID,
		InterestRate: &rate,
		Status:       domain.AgreementStatusActive,
	}); err != nil {
		t.Fatalf("seed agreement: %v", err)
	}
	if _, err := f.agreements.Create(context.Background(), domain.Agreement{
		AccountID: rateless.ID,
		ProductID: product.ID,
		Status:    domain.AgreementStatusActive,
	}); err != nil {
		t.Fatalf("seed agreement: %v", err)
	}

	// One bad account never aborts the batch.
	if err := svc.RunDepositAccrual(context.Background()); err != nil {
		t.Fatalf("run deposit accrual: %v", err)
	}

	assertBalance(t, f, healthy.ID, "110.00")
	assertBalance(t, f, rateless.ID, "100.00")
	assertBalance(t, f, bankAccount.ID, "990.00")
}

func TestDepositAccrualPaysOncePerAccountDespiteStaleAgreements(t *testing.T) {
	f := newFixture()
	svc := services.NewAccrualService(f.accounts, f.agreements, f.transferService)

	bankAccount := seedBankAccount(t, f, "1000.00")
	product := seedDepositProduct(t, f)

	holder := f.seedClient(t, domain.ClientStatusActive)
	deposit := f.seedAccount(t, holder.ID, domain.AccountTypeDeposit, domain.AccountStatusActive, "1000.00", domain.CurrencyEUR)

	// A renewal leaves the old agreement TERMINATED but not deleted. The
	// account must still accrue exactly once.
	oldRate := mustDecimal(t, "3")
	if _, err := f.agreements.Create(context.Background(), domain.Agreement{
		AccountID:    deposit.ID,
		ProductID:    product.ID,
		InterestRate: &oldRate,
		Status:       domain.AgreementStatusTerminated,
	}); err != nil {
		t.Fatalf("seed terminated agreement: %v", err)
	}
	rate := mustDecimal(t, "5")
	if _, err := f.agreements.Create(context.Background(), domain.Agreement{
		AccountID:    deposit.ID,
		ProductID:    product.ID,
		InterestRate: &rate,
		Status:       domain.AgreementStatusActive,
	}); err != nil {
		t.Fatalf("seed active agreement: %v", err)
	}

	if err := svc.RunDepositAccrual(context.Background()); err != nil {
		t.Fatalf("run deposit accrual: %v", err)
	}

	assertBalance(t, f, deposit.ID, "1050.00")
	assertBalance(t, f, bankAccount.ID, "950.00")
	if transactions := f.accountTransactions(t, deposit.ID); len(transactions) != 1 {
		t.Fatalf("got %d transactions, want exactly 1", len(transactions))
	}
}

func TestDepositAccrualIgnoresAccountsWithOnlyStaleAgreements(t *testing.T) {
	f := newFixture()
	svc := services.NewAccrualService(f.accounts, f.agreements, f.transferService)

	bankAccount := seedBankAccount(t, f, "1000.00")
	product := seedDepositProduct(t, f)

	holder := f.seedClient(t, domain.ClientStatusActive)
	deposit := f.seedAccount(t, holder.ID, domain.AccountTypeDeposit, domain.AccountStatusActive, "1000.00", domain.CurrencyEUR)

	rate := mustDecimal(t, "5")
	if _, err := f.agreements.Create(context.Background(), domain.Agreement{
		AccountID:    deposit.ID,
		ProductID:    product.ID,
		InterestRate: &rate,
		Status:       domain.AgreementStatusTerminated,
	}); err != nil {
		t.Fatalf("seed terminated agreement: %v", err)
	}

	if err := svc.RunDepositAccrual(context.Background()); err != nil {
		t.Fatalf("run deposit accrual: %v", err)
	}

	assertBalance(t, f, deposit.ID, "1000.00")
	assertBalance(t, f, bankAccount.ID, "1000.00")
}

func TestDepositAccrualNoCandidatesIsANoOp(t *testing.T) {
	f := newFixture()
	svc := services.NewAccrualService(f.accounts, f.agreements, f.transferService)

	bankAccount := seedBankAccount(t, f, "1000.00")

	if err := svc.RunDepositAccrual(context.Background()); err != nil {
		t.Fatalf("run deposit accrual: %v", err)
	}
	assertBalance(t, f, bankAccount.ID, "1000.00")
}
