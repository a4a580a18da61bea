package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/core-banking/internal/domain"
	"github.com/api-sage/core-banking/internal/logger"
	"github.com/api-sage/core-banking/internal/usecase/service_interfaces"
)

// Verify that TransferService implements the service_interfaces.TransferService interface
var _ service_interfaces.TransferService = (*TransferService)(nil)

type TransferService struct {
	txBeginner      repo_interfaces.TxBeginner
	accountRepo     repo_interfaces.AccountRepository
	transactionRepo repo_interfaces.TransactionRepository
	clientRepo      repo_interfaces.ClientRepository
	rateService     service_interfaces.RateService
}

func NewTransferService(
	txBeginner repo_interfaces.TxBeginner,
	accountRepo repo_interfaces.AccountRepository,
	transactionRepo repo_interfaces.TransactionRepository,
	clientRepo repo_interfaces.ClientRepository,
	rateService service_interfaces.RateService,
) *TransferService {
	return &TransferService{
		txBeginner:      txBeginner,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		clientRepo:      clientRepo,
		rateService:     rateService,
	}
}

// Transfer validates and executes one funds movement between two accounts.
// The whole posting runs inside a single unit of work: both balance updates
// and the transaction insert land together or not at all.
func (s *TransferService) Transfer(ctx context.Context, req service_interfaces.TransferRequest) (domain.Transaction, error) {
	logger.Info("transfer service request", logger.Fields{
		"debitAccountId":  req.DebitAccountID,
		"creditAccountId": req.CreditAccountID,
		"type":            req.Type,
		"currency":        req.Currency,
		"amount":          req.Amount,
	})

	if req.Amount == nil || req.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.Transaction{}, fmt.Errorf("amount must be present and greater than zero: %w", domain.ErrInvalidArgument)
	}
	if req.DebitAccountID == "" || req.CreditAccountID == "" {
		return domain.Transaction{}, fmt.Errorf("debit and credit account ids are required: %w", domain.ErrInvalidArgument)
	}
	if req.DebitAccountID == req.CreditAccountID {
		return domain.Transaction{}, fmt.Errorf("debit and credit accounts cannot be the same: %w", domain.ErrInvalidArgument)
	}
	amount := *req.Amount

	tx, err := s.txBeginner.BeginTx(ctx)
	if err != nil {
		return domain.Transaction{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	debitAccount, creditAccount, err := s.lockAccounts(ctx, tx, req.DebitAccountID, req.CreditAccountID)
	if err != nil {
		return domain.Transaction{}, err
	}

	if !debitAccount.Initialized() || !creditAccount.Initialized() {
		err = fmt.Errorf("account balance or status is not initialized: %w", domain.ErrInvalidArgument)
		return domain.Transaction{}, err
	}
	if debitAccount.Status != domain.AccountStatusActive || creditAccount.Status != domain.AccountStatusActive {
		err = fmt.Errorf("both accounts must be active: %w", domain.ErrTransactionNotAllowed)
		return domain.Transaction{}, err
	}
	if debitAccount.Balance.LessThan(amount) {
		err = fmt.Errorf("debit account balance is below %s: %w", amount.StringFixed(2), domain.ErrInsufficientFunds)
		return domain.Transaction{}, err
	}

	if err = s.checkClientsNotBlocked(ctx, debitAccount.ClientID, creditAccount.ClientID); err != nil {
		return domain.Transaction{}, err
	}

	if debitAccount.Currency == creditAccount.Currency {
		credited := creditAccount.Balance.Add(amount)
		creditAccount.Balance = &credited
	} else {
		creditAccount, err = s.rateService.Convert(ctx, amount, creditAccount, debitAccount)
		if err != nil {
			return domain.Transaction{}, err
		}
	}

	// Conversion never changes the debited amount: the debit side always
	// loses exactly the requested amount in its own currency.
	debited := debitAccount.Balance.Sub(amount)
	debitAccount.Balance = &debited

	if err = s.accountRepo.UpdateBalance(ctx, tx, debitAccount.ID, *debitAccount.Balance); err != nil {
		return domain.Transaction{}, err
	}
	if err = s.accountRepo.UpdateBalance(ctx, tx, creditAccount.ID, *creditAccount.Balance); err != nil {
		return domain.Transaction{}, err
	}

	currency := req.Currency
	if currency == "" {
		currency = debitAccount.Currency
	}

	transaction := domain.Transaction{
		ID:              uuid.NewString(),
		DebitAccountID:  debitAccount.ID,
		CreditAccountID: creditAccount.ID,
		Type:            req.Type,
		Currency:        currency,
		Amount:          amount,
		Description:     req.Description,
	}

	transaction, err = s.transactionRepo.Create(ctx, tx, transaction)
	if err != nil {
		return domain.Transaction{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.Transaction{}, fmt.Errorf("commit transfer: %w", err)
	}

	logger.Info("transfer service success", logger.Fields{
		"transactionId":   transaction.ID,
		"debitAccountId":  transaction.DebitAccountID,
		"creditAccountId": transaction.CreditAccountID,
		"amount":          transaction.Amount,
	})

	return transaction, nil
}

// lockAccounts acquires both row locks in ascending account id order so two
// transfers touching the same pair can never deadlock.
func (s *TransferService) lockAccounts(ctx context.Context, tx repo_interfaces.Tx, debitID, creditID string) (domain.Account, domain.Account, error) {
	firstID, secondID := debitID, creditID
	if secondID < firstID {
		firstID, secondID = secondID, firstID
	}

	first, err := s.accountRepo.GetByIDForUpdate(ctx, tx, firstID)
	if err != nil {
		return domain.Account{}, domain.Account{}, fmt.Errorf("load account %q: %w", firstID, err)
	}
	second, err := s.accountRepo.GetByIDForUpdate(ctx, tx, secondID)
	if err != nil {
		return domain.Account{}, domain.Account{}, fmt.Errorf("load account %q: %w", secondID, err)
	}

	if first.ID == debitID {
		return first, second, nil
	}
	return second, first, nil
}

func (s *TransferService) checkClientsNotBlocked(ctx context.Context, clientIDs ...string) error {
	for _, clientID := range clientIDs {
		blocked, err := s.clientRepo.IsBlocked(ctx, clientID)
		if err != nil {
			return fmt.Errorf("check client %q: %w", clientID, err)
		}
		if blocked {
			return fmt.Errorf("client %q is blocked: %w", clientID, domain.ErrTransactionNotAllowed)
		}
	}
	return nil
}
