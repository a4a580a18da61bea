package repo_interfaces

import (
	"context"

	"github.com/api-sage/core-banking/internal/domain"
)

type AgreementRepository interface {
	Create(ctx context.Context, agreement domain.Agreement) (domain.Agreement, error)
	FindActiveByAccount(ctx context.Context, accountID string) (domain.Agreement, error)
	FindActiveByClientAndProductType(ctx context.Context, clientID string, productType domain.ProductType) (domain.Agreement, error)
	UpdateStatus(ctx context.Context, id string, status domain.AgreementStatus) error
}
