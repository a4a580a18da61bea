package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/api-sage/core-banking/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/core-banking/internal/domain"
	"github.com/api-sage/core-banking/internal/logger"
	"github.com/api-sage/core-banking/internal/usecase/service_interfaces"
)

// Verify that ClientService implements the service_interfaces.ClientService interface
var _ service_interfaces.ClientService = (*ClientService)(nil)

type ClientService struct {
	clientRepo repo_interfaces.ClientRepository
}

func NewClientService(clientRepo repo_interfaces.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

func (s *ClientService) RegisterClient(ctx context.Context, req service_interfaces.RegisterClientRequest) (domain.Client, error) {
	pin := strings.TrimSpace(req.TransactionPin)
	if len(pin) < 4 {
		return domain.Client{}, fmt.Errorf("transaction pin must be at least 4 characters: %w", domain.ErrInvalidArgument)
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return domain.Client{}, fmt.Errorf("first and last name are required: %w", domain.ErrInvalidArgument)
	}

	pinHash, err := hashTransactionPin(pin)
	if err != nil {
		return domain.Client{}, err
	}

	client, err := s.clientRepo.Create(ctx, domain.Client{
		ManagerID:          strings.TrimSpace(req.ManagerID),
		Status:             domain.ClientStatusActive,
		TaxCode:            strings.TrimSpace(req.TaxCode),
		FirstName:          strings.TrimSpace(req.FirstName),
		LastName:           strings.TrimSpace(req.LastName),
		Email:              strings.TrimSpace(req.Email),
		TransactionPinHash: pinHash,
	})
	if err != nil {
		logger.Error("client service register failed", err, nil)
		return domain.Client{}, err
	}

	logger.Info("client service registered client", logger.Fields{
		"clientId": client.ID,
	})
	return client, nil
}

func (s *ClientService) VerifyTransactionPin(ctx context.Context, clientID string, pin string) error {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return fmt.Errorf("load client: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.TransactionPinHash), []byte(pin)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.Info("client service pin mismatch", logger.Fields{
				"clientId": clientID,
			})
			return fmt.Errorf("transaction pin does not match: %w", domain.ErrTransactionNotAllowed)
		}
		return fmt.Errorf("verify transaction pin: %w", err)
	}

	return nil
}

func hashTransactionPin(pin string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash transaction pin: %w", err)
	}
	return string(hashed), nil
}
