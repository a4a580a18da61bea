package controller

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/api-sage/core-banking/internal/adapter/http/models"
	"github.com/api-sage/core-banking/internal/commons"
	"github.com/api-sage/core-banking/internal/domain"
	"github.com/api-sage/core-banking/internal/usecase/service_interfaces"
)

type TransferController struct {
	transferService service_interfaces.TransferService
	accountService  service_interfaces.AccountService
	clientService   service_interfaces.ClientService
}

func NewTransferController(
	transferService service_interfaces.TransferService,
	accountService service_interfaces.AccountService,
	clientService service_interfaces.ClientService,
) *TransferController {
	return &TransferController{
		transferService: transferService,
		accountService:  accountService,
		clientService:   clientService,
	}
}

func (c *TransferController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handler := http.Handler(http.HandlerFunc(c.transfer))
	if authMiddleware != nil {
		handler = authMiddleware(handler)
	}

	mux.Handle("POST /transfer-funds", handler)
}

func (c *TransferController) transfer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.TransferFundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.TransactionResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		response := commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	// The PIN belongs to the owner of the debit account.
	debitAccount, err := c.accountService.GetAccount(r.Context(), strings.TrimSpace(req.DebitAccountID))
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err)
		response := commons.ErrorResponse[models.TransactionResponse]("debit account not found")
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	if err := c.clientService.VerifyTransactionPin(r.Context(), debitAccount.ClientID, req.TransactionPIN); err != nil {
		logError(r, err, nil)
		status := statusForError(err)
		response := commons.ErrorResponse[models.TransactionResponse]("transaction pin verification failed")
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	transaction, err := c.transferService.Transfer(r.Context(), service_interfaces.TransferRequest{
		DebitAccountID:  strings.TrimSpace(req.DebitAccountID),
		CreditAccountID: strings.TrimSpace(req.CreditAccountID),
		Type:            domain.TransactionType(strings.ToUpper(strings.TrimSpace(req.Type))),
		Currency:        domain.CurrencyCode(strings.ToUpper(strings.TrimSpace(req.Currency))),
		Amount:          req.Amount,
		Description:     strings.TrimSpace(req.Description),
	})
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err)
		response := commons.ErrorResponse[models.TransactionResponse]("transfer failed", err.Error())
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	response := commons.SuccessResponse("transfer completed successfully", mapTransactionToResponse(transaction))
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
