package models

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func validRequest() TransferFundsRequest {
	amount := decimal.RequireFromString("25.00")
	return TransferFundsRequest{
		DebitAccountID:  "a-1",
		CreditAccountID: "a-2",
		Type:            "TRANSFER",
		Currency:        "EUR",
		Amount:          &amount,
		TransactionPIN:  "4821",
	}
}

func TestTransferFundsRequestValidateAcceptsGoodRequest(t *testing.T) {
	if err := validRequest().Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestTransferFundsRequestValidateNormalizesCase(t *testing.T) {
	req := validRequest()
	req.Type = " transfer "
	req.Currency = "eur"
	if err := req.Validate(); err != nil {
		t.Fatalf("case-insensitive request rejected: %v", err)
	}
}

func TestTransferFundsRequestValidateRejections(t *testing.T) {
	zero := decimal.Zero

	tests := []struct {
		name   string
		mutate func(*TransferFundsRequest)
		want   string
	}{
		{"missing debit account", func(r *TransferFundsRequest) { r.DebitAccountID = " " }, "debitAccountId"},
		{"missing credit account", func(r *TransferFundsRequest) { r.CreditAccountID = "" }, "creditAccountId"},
		{"scheduler-only type", func(r *TransferFundsRequest) { r.Type = "DEPOSIT" }, "type"},
		{"unknown type", func(r *TransferFundsRequest) { r.Type = "WIRE" }, "type"},
		{"unsupported currency", func(r *TransferFundsRequest) { r.Currency = "CHF" }, "currency"},
		{"nil amount", func(r *TransferFundsRequest) { r.Amount = nil }, "amount"},
		{"zero amount", func(r *TransferFundsRequest) { r.Amount = &zero }, "amount"},
		{"missing pin", func(r *TransferFundsRequest) { r.TransactionPIN = "" }, "transactionPIN"},
	}

	for _, tt := range tests {
		req := validRequest()
		tt.mutate(&req)
		err := req.Validate()
		if err == nil {
			t.Fatalf("%s: expected validation error", tt.name)
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("%s: error %q does not mention %q", tt.name, err, tt.want)
		}
	}
}
