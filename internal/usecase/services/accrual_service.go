package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/core-banking/internal/domain"
	"github.com/api-sage/core-banking/internal/logger"
	"github.com/api-sage/core-banking/internal/usecase/service_interfaces"
)

const depositAccrualDescription = "Deposit interest accrual"

// Verify that AccrualService implements the service_interfaces.AccrualService interface
var _ service_interfaces.AccrualService = (*AccrualService)(nil)

type AccrualService struct {
	accountRepo     repo_interfaces.AccountRepository
	agreementRepo   repo_interfaces.AgreementRepository
	transferService service_interfaces.TransferService
}

func NewAccrualService(
	accountRepo repo_interfaces.AccountRepository,
	agreementRepo repo_interfaces.AgreementRepository,
	transferService service_interfaces.TransferService,
) *AccrualService {
	return &AccrualService{
		accountRepo:     accountRepo,
		agreementRepo:   agreementRepo,
		transferService: transferService,
	}
}

// RunDepositAccrual pays interest on every active deposit account with an
// active agreement, one transfer per account from the bank system account.
// A failed account is logged and skipped; it never aborts the batch.
func (s *AccrualService) RunDepositAccrual(ctx context.Context) error {
	accounts, err := s.accountRepo.FindActiveDepositAccounts(ctx)
	if err != nil {
		return fmt.Errorf("find deposit accounts: %w", err)
	}
	if len(accounts) == 0 {
		logger.Info("deposit accrual found no candidate accounts", nil)
		return nil
	}

	bankAccount, err := s.accountRepo.FindBankAccount(ctx)
	if err != nil {
		return fmt.Errorf("resolve bank account: %w", err)
	}

	accrued := 0
	for _, account := range accounts {
		if err := s.accrueInterest(ctx, bankAccount, account); err != nil {
			logger.Warn("deposit accrual skipped account", logger.Fields{
				"accountId": account.ID,
				"reason":    err.Error(),
			})
			continue
		}
		accrued++
	}

	logger.Info("deposit accrual run finished", logger.Fields{
		"candidates": len(accounts),
		"accrued":    accrued,
	})
	return nil
}

func (s *AccrualService) accrueInterest(ctx context.Context, bankAccount, account domain.Account) error {
	agreement, err := s.agreementRepo.FindActiveByAccount(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("active agreement: %w", err)
	}
	if agreement.InterestRate == nil {
		return fmt.Errorf("agreement %q has no interest rate: %w", agreement.ID, domain.ErrInvalidArgument)
	}
	if account.Balance == nil {
		return fmt.Errorf("account balance is not initialized: %w", domain.ErrInvalidArgument)
	}

	// Only the interest delta moves; the principal stays on the deposit
	// account. See DESIGN.md on the accrual amount decision.
	interest := account.Balance.Mul(*agreement.InterestRate).Div(decimal.NewFromInt(100)).Round(2)
	if interest.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("computed interest %s is not positive: %w", interest.StringFixed(2), domain.ErrInvalidArgument)
	}

	_, err = s.transferService.Transfer(ctx, service_interfaces.TransferRequest{
		DebitAccountID:  bankAccount.ID,
		CreditAccountID: account.ID,
		Type:            domain.TransactionTypeDeposit,
		Currency:        account.Currency,
		Amount:          &interest,
		Description:     depositAccrualDescription,
	})
	return err
}
