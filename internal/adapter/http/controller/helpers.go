package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/core-banking/internal/adapter/http/models"
	"github.com/api-sage/core-banking/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusForError maps the four terminal error kinds of the transfer core to
// HTTP statuses; anything else is a server error.
func statusForError(err error) int {
	switch {
	case domain.IsInvalidArgument(err):
		return http.StatusBadRequest
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case domain.IsInsufficientFunds(err):
		return http.StatusUnprocessableEntity
	case domain.IsTransactionNotAllowed(err):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func mapTransactionToResponse(transaction domain.Transaction) models.TransactionResponse {
	return models.TransactionResponse{
		ID:              transaction.ID,
		DebitAccountID:  transaction.DebitAccountID,
		CreditAccountID: transaction.CreditAccountID,
		Type:            string(transaction.Type),
		Currency:        string(transaction.Currency),
		Amount:          transaction.Amount,
		Description:     transaction.Description,
		CreatedAt:       transaction.CreatedAt.Format(time.RFC3339),
	}
}

func mapAccountToResponse(account domain.Account) models.AccountResponse {
	return models.AccountResponse{
		ID:        account.ID,
		ClientID:  account.ClientID,
		Name:      account.Name,
		Type:      string(account.Type),
		Status:    string(account.Status),
		Balance:   account.Balance,
		Currency:  string(account.Currency),
		CreatedAt: account.CreatedAt.Format(time.RFC3339),
		UpdatedAt: account.UpdatedAt.Format(time.RFC3339),
	}
}
