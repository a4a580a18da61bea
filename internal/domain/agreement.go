package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AgreementStatus string

const (
	AgreementStatusActive     AgreementStatus = "ACTIVE"
	AgreementStatusPending    AgreementStatus = "PENDING"
	AgreementStatusSuspended  AgreementStatus = "SUSPENDED"
	AgreementStatusTerminated AgreementStatus = "TERMINATED"
	AgreementStatusAnnulled   AgreementStatus = "ANNULLED"
)

// Agreement links an account to a product and carries the terms that
// authorize automatic money movement: InterestRate for deposit accrual,
// Amount for the fixed recurring payment. Only ACTIVE agreements authorize
// scheduler-driven transfers.
type Agreement struct {
	ID           string
	AccountID    string
	ProductID    string
	InterestRate *decimal.Decimal
	Status       AgreementStatus
	Amount       decimal.Decimal
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
