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

const recurringPaymentDescription = "Recurring payment to savings account"

// Verify that RecurringPaymentService implements the service_interfaces.RecurringPaymentService interface
var _ service_interfaces.RecurringPaymentService = (*RecurringPaymentService)(nil)

type RecurringPaymentService struct {
	clientRepo      repo_interfaces.ClientRepository
	accountRepo     repo_interfaces.AccountRepository
	agreementRepo   repo_interfaces.AgreementRepository
	transferService service_interfaces.TransferService
}

func NewRecurringPaymentService(
	clientRepo repo_interfaces.ClientRepository,
	accountRepo repo_interfaces.AccountRepository,
	agreementRepo repo_interfaces.AgreementRepository,
	transferService service_interfaces.TransferService,
) *RecurringPaymentService {
	return &RecurringPaymentService{
		clientRepo:      clientRepo,
		accountRepo:     accountRepo,
		agreementRepo:   agreementRepo,
		transferService: transferService,
	}
}

// RunRecurringPayments moves each eligible client's fixed agreement amount
// from their current account to their savings account. Clients whose savings
// agreement is not ACTIVE are skipped; per-client failures never abort the
// batch.
func (s *RecurringPaymentService) RunRecurringPayments(ctx context.Context) error {
	clientIDs, err := s.clientRepo.FindIDsWithCurrentAndSavingsAccounts(ctx)
	if err != nil {
		return fmt.Errorf("find clients with current and savings accounts: %w", err)
	}

	paid := 0
	for _, clientID := range clientIDs {
		transferred, err := s.processClient(ctx, clientID)
		if err != nil {
			logger.Warn("recurring payment skipped client", logger.Fields{
				"clientId": clientID,
				"reason":   err.Error(),
			})
			continue
		}
		if transferred {
			paid++
		}
	}

	logger.Info("recurring payment run finished", logger.Fields{
		"candidates": len(clientIDs),
		"paid":       paid,
	})
	return nil
}

func (s *RecurringPaymentService) processClient(ctx context.Context, clientID string) (bool, error) {
	productType, ok := domain.ProductTypeForAccountType(domain.AccountTypeSavings)
	if !ok {
		return false, fmt.Errorf("no product type mapped for savings accounts: %w", domain.ErrInvalidArgument)
	}

	agreement, err := s.agreementRepo.FindActiveByClientAndProductType(ctx, clientID, productType)
	if domain.IsNotFound(err) {
		// No active savings agreement authorizes this client's payment.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("savings agreement: %w", err)
	}
	if agreement.Amount.LessThanOrEqual(decimal.Zero) {
		return false, fmt.Errorf("agreement %q amount %s is not positive: %w", agreement.ID, agreement.Amount.StringFixed(2), domain.ErrInvalidArgument)
	}

	currentAccount, err := s.accountRepo.FindByClientAndType(ctx, clientID, domain.AccountTypeCurrent)
	if err != nil {
		return false, fmt.Errorf("current account: %w", err)
	}
	savingsAccount, err := s.accountRepo.FindByClientAndType(ctx, clientID, domain.AccountTypeSavings)
	if err != nil {
		return false, fmt.Errorf("savings account: %w", err)
	}

	amount := agreement.Amount
	_, err = s.transferService.Transfer(ctx, service_interfaces.TransferRequest{
		DebitAccountID:  currentAccount.ID,
		CreditAccountID: savingsAccount.ID,
		Type:            domain.TransactionTypeRecurringPayment,
		Currency:        currentAccount.Currency,
		Amount:          &amount,
		Description:     recurringPaymentDescription,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
