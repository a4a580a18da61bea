package models

import "github.com/shopspring/decimal"

type AccountResponse struct {
	ID        string           `json:"id"`
	ClientID  string           `json:"clientId"`
	Name      string           `json:"name"`
	Type      string           `json:"type"`
	Status    string           `json:"status"`
	Balance   *decimal.Decimal `json:"balance"`
	Currency  string           `json:"currency"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
}
