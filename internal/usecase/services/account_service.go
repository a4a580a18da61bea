package services

import (
	"context"
	"fmt"

	"github.com/api-sage/core-banking/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/core-banking/internal/domain"
	"github.com/api-sage/core-banking/internal/logger"
	"github.com/api-sage/core-banking/internal/usecase/service_interfaces"
)

// Verify that AccountService implements the service_interfaces.AccountService interface
var _ service_interfaces.AccountService = (*AccountService)(nil)

type AccountService struct {
	accountRepo     repo_interfaces.AccountRepository
	transactionRepo repo_interfaces.TransactionRepository
}

func NewAccountService(
	accountRepo repo_interfaces.AccountRepository,
	transactionRepo repo_interfaces.TransactionRepository,
) *AccountService {
	return &AccountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *AccountService) GetAccount(ctx context.Context, id string) (domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Account{}, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

func (s *AccountService) GetAccountTransactions(ctx context.Context, id string) ([]domain.Transaction, error) {
	if _, err := s.accountRepo.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	transactions, err := s.transactionRepo.FindByAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account transactions: %w", err)
	}
	return transactions, nil
}

func (s *AccountService) BlockClientAccounts(ctx context.Context, clientID string) error {
	if err := s.accountRepo.BlockByClient(ctx, clientID); err != nil {
		logger.Error("account service block by client failed", err, logger.Fields{
			"clientId": clientID,
		})
		return err
	}

	logger.Info("account service blocked client accounts", logger.Fields{
		"clientId": clientID,
	})
	return nil
}
