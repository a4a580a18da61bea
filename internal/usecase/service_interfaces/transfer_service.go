package service_interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking/internal/domain"
)

// TransferRequest carries one funds movement. Amount is in the currency of
// the initiating side; a nil Amount is rejected as an invalid argument.
type TransferRequest struct {
	DebitAccountID  string
	CreditAccountID string
	Type            domain.TransactionType
	Currency        domain.CurrencyCode
	Amount          *decimal.Decimal
	Description     string
}

// TransferService is the single point of balance mutation: interactive
// transfers and both schedulers go through Transfer.
type TransferService interface {
	Transfer(ctx context.Context, req TransferRequest) (domain.Transaction, error)
}
