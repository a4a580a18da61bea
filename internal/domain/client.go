package domain

import "time"

type ClientStatus string

const (
	ClientStatusActive  ClientStatus = "ACTIVE"
	ClientStatusBlocked ClientStatus = "BLOCKED"
	// ClientStatusBank marks the single system client whose account funds
	// interest accruals and receives refunds.
	ClientStatusBank ClientStatus = "BANK"
)

type Client struct {
	ID                 string
	ManagerID          string
	Status             ClientStatus
	TaxCode            string
	FirstName          string
	LastName           string
	Email              string
	TransactionPinHash string
	IsDeleted          bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (c Client) Blocked() bool {
	return c.Status == ClientStatusBlocked
}
