package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/core-banking/internal/adapter/http/models"
	"github.com/api-sage/core-banking/internal/commons"
	"github.com/api-sage/core-banking/internal/usecase/service_interfaces"
)

type ClientController struct {
	clientService service_interfaces.ClientService
}

func NewClientController(clientService service_interfaces.ClientService) *ClientController {
	return &ClientController{clientService: clientService}
}

func (c *ClientController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handler := http.Handler(http.HandlerFunc(c.registerClient))
	if authMiddleware != nil {
		handler = authMiddleware(handler)
	}

	mux.Handle("POST /clients", handler)
}

func (c *ClientController) registerClient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RegisterClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.ClientResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		response := commons.ErrorResponse[models.ClientResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	client, err := c.clientService.RegisterClient(r.Context(), service_interfaces.RegisterClientRequest{
		ManagerID:      req.ManagerID,
		TaxCode:        req.TaxCode,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		TransactionPin: req.TransactionPin,
	})
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err)
		response := commons.ErrorResponse[models.ClientResponse]("failed to register client")
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	response := commons.SuccessResponse("client registered successfully", models.ClientResponse{
		ID:        client.ID,
		Status:    string(client.Status),
		FirstName: client.FirstName,
		LastName:  client.LastName,
		Email:     client.Email,
		CreatedAt: client.CreatedAt.Format(time.RFC3339),
	})
	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}
