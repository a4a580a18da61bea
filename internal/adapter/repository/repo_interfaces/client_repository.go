package repo_interfaces

import (
	"context"

	"github.com/api-sage/core-banking/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, client domain.Client) (domain.Client, error)
	GetByID(ctx context.Context, id string) (domain.Client, error)
	IsBlocked(ctx context.Context, id string) (bool, error)
	FindIDsWithCurrentAndSavingsAccounts(ctx context.Context) ([]string, error)
}
