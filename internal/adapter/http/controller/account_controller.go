package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/core-banking/internal/adapter/http/models"
	"github.com/api-sage/core-banking/internal/commons"
	"github.com/api-sage/core-banking/internal/usecase/service_interfaces"
)

type AccountController struct {
	accountService service_interfaces.AccountService
}

func NewAccountController(accountService service_interfaces.AccountService) *AccountController {
	return &AccountController{accountService: accountService}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("GET /accounts/{id}", wrap(c.getAccount))
	mux.Handle("GET /accounts/{id}/transactions", wrap(c.getAccountTransactions))
	mux.Handle("POST /clients/{id}/block-accounts", wrap(c.blockClientAccounts))
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	account, err := c.accountService.GetAccount(r.Context(), r.PathValue("id"))
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err)
		response := commons.ErrorResponse[models.AccountResponse]("account not found")
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	response := commons.SuccessResponse("account fetched successfully", mapAccountToResponse(account))
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) getAccountTransactions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	transactions, err := c.accountService.GetAccountTransactions(r.Context(), r.PathValue("id"))
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err)
		response := commons.ErrorResponse[[]models.TransactionResponse]("account not found")
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	mapped := make([]models.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		mapped = append(mapped, mapTransactionToResponse(transaction))
	}

	response := commons.SuccessResponse("transactions fetched successfully", mapped)
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) blockClientAccounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if err := c.accountService.BlockClientAccounts(r.Context(), r.PathValue("id")); err != nil {
		logError(r, err, nil)
		status := statusForError(err)
		response := commons.ErrorResponse[struct{}]("failed to block client accounts")
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	response := commons.SuccessResponse("client accounts blocked", struct{}{})
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
