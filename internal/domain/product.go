package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductType string

const (
	ProductTypeCurrent    ProductType = "CURRENT"
	ProductTypeSavings    ProductType = "SAVINGS"
	ProductTypeDeposit    ProductType = "DEPOSIT"
	ProductTypeCreditCard ProductType = "CREDIT_CARD"
	ProductTypeLoan       ProductType = "LOAN"
	ProductTypeInvestment ProductType = "INVESTMENT"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "ACTIVE"
	ProductStatusInactive ProductStatus = "INACTIVE"
)

type Product struct {
	ID           string
	Name         string
	Type         ProductType
	Status       ProductStatus
	Currency     CurrencyCode
	InterestRate *decimal.Decimal
	Limit        *decimal.Decimal
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// accountTypeProducts maps each account type to its product type explicitly.
// Matching by enum ordinal breaks as soon as either enum is reordered, so
// the table is keyed by variant and checked for exhaustiveness in tests.
var accountTypeProducts = map[AccountType]ProductType{
	AccountTypeCurrent:    ProductTypeCurrent,
	AccountTypeSavings:    ProductTypeSavings,
	AccountTypeDeposit:    ProductTypeDeposit,
	AccountTypeCreditCard: ProductTypeCreditCard,
	AccountTypeLoan:       ProductTypeLoan,
	AccountTypeInvestment: ProductTypeInvestment,
}

func ProductTypeForAccountType(t AccountType) (ProductType, bool) {
	pt, ok := accountTypeProducts[t]
	return pt, ok
}
