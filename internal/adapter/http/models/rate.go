package models

import "github.com/shopspring/decimal"

type RateResponse struct {
	Currency  string          `json:"currency"`
	Rate      decimal.Decimal `json:"rate"`
	UpdatedAt string          `json:"updatedAt"`
}
