package service_interfaces

import (
	"context"

	"github.com/api-sage/core-banking/internal/domain"
)

type RegisterClientRequest struct {
	ManagerID      string
	TaxCode        string
	FirstName      string
	LastName       string
	Email          string
	TransactionPin string
}

type ClientService interface {
	RegisterClient(ctx context.Context, req RegisterClientRequest) (domain.Client, error)
	VerifyTransactionPin(ctx context.Context, clientID string, pin string) error
}
