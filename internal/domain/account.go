package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeCurrent    AccountType = "CURRENT"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeDeposit    AccountType = "DEPOSIT"
	AccountTypeCreditCard AccountType = "CREDIT_CARD"
	AccountTypeLoan       AccountType = "LOAN"
	AccountTypeInvestment AccountType = "INVESTMENT"
)

type AccountStatus string

const (
	AccountStatusActive  AccountStatus = "ACTIVE"
	AccountStatusBlocked AccountStatus = "BLOCKED"
	AccountStatusClosed  AccountStatus = "CLOSED"
	AccountStatusOverdue AccountStatus = "OVERDUE"
	AccountStatusPending AccountStatus = "PENDING"
)

type CurrencyCode string

const (
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyUSD CurrencyCode = "USD"
	CurrencyJPY CurrencyCode = "JPY"
	CurrencyGBP CurrencyCode = "GBP"
	CurrencyAUD CurrencyCode = "AUD"
)

// Account balances are nullable on purpose: a row created during onboarding
// may not be funded yet, and the transfer path treats an unset balance or
// status as an invalid argument rather than a zero value.
type Account struct {
	ID        string
	ClientID  string
	Name      string
	Type      AccountType
	Status    AccountStatus
	Balance   *decimal.Decimal
	Currency  CurrencyCode
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Account) Initialized() bool {
	return a.Balance != nil && a.Status != ""
}
