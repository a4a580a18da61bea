package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking/internal/domain"
)

var allowedTransferTypes = map[domain.TransactionType]struct{}{
	domain.TransactionTypeTransfer:   {},
	domain.TransactionTypeRefund:     {},
	domain.TransactionTypeWithdrawal: {},
}

var supportedCurrencies = map[domain.CurrencyCode]struct{}{
	domain.CurrencyEUR: {},
	domain.CurrencyUSD: {},
	domain.CurrencyJPY: {},
	domain.CurrencyGBP: {},
	domain.CurrencyAUD: {},
}

type TransferFundsRequest struct {
	DebitAccountID  string           `json:"debitAccountId"`
	CreditAccountID string           `json:"creditAccountId"`
	Type            string           `json:"type"`
	Currency        string           `json:"currency"`
	Amount          *decimal.Decimal `json:"amount"`
	Description     string           `json:"description"`
	TransactionPIN  string           `json:"transactionPIN"`
}

func (r TransferFundsRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.DebitAccountID) == "" {
		errs = append(errs, "debitAccountId is required")
	}
	if strings.TrimSpace(r.CreditAccountID) == "" {
		errs = append(errs, "creditAccountId is required")
	}

	transferType := domain.TransactionType(strings.ToUpper(strings.TrimSpace(r.Type)))
	if _, ok := allowedTransferTypes[transferType]; !ok {
		errs = append(errs, "type must be one of TRANSFER, REFUND, WITHDRAWAL")
	}

	currency := domain.CurrencyCode(strings.ToUpper(strings.TrimSpace(r.Currency)))
	if _, ok := supportedCurrencies[currency]; !ok {
		errs = append(errs, "currency must be one of EUR, USD, JPY, GBP, AUD")
	}

	if r.Amount == nil || r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if strings.TrimSpace(r.TransactionPIN) == "" {
		errs = append(errs, "transactionPIN is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransactionResponse struct {
	ID              string          `json:"id"`
	DebitAccountID  string          `json:"debitAccountId"`
	CreditAccountID string          `json:"creditAccountId"`
	Type            string          `json:"type"`
	Currency        string          `json:"currency"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	CreatedAt       string          `json:"createdAt"`
}
