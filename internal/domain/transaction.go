package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeTransfer         TransactionType = "TRANSFER"
	TransactionTypeDeposit          TransactionType = "DEPOSIT"
	TransactionTypeRefund           TransactionType = "REFUND"
	TransactionTypeWithdrawal       TransactionType = "WITHDRAWAL"
	TransactionTypeRecurringPayment TransactionType = "RECURRING_PAYMENT"
)

// Transaction is append-only: rows are written once at the end of a
// successful transfer posting and never updated afterwards.
type Transaction struct {
	ID              string
	DebitAccountID  string
	CreditAccountID string
	Type            TransactionType
	Currency        CurrencyCode
	Amount          decimal.Decimal
	Description     string
	CreatedAt       time.Time
}
