package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/core-banking/internal/adapter/http/models"
	"github.com/api-sage/core-banking/internal/commons"
	"github.com/api-sage/core-banking/internal/usecase/service_interfaces"
)

type RateController struct {
	rateService        service_interfaces.RateService
	rateRefreshService service_interfaces.RateRefreshService
}

func NewRateController(
	rateService service_interfaces.RateService,
	rateRefreshService service_interfaces.RateRefreshService,
) *RateController {
	return &RateController{
		rateService:        rateService,
		rateRefreshService: rateRefreshService,
	}
}

func (c *RateController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("GET /rates", wrap(c.getRates))
	mux.Handle("POST /rates/refresh", wrap(c.refreshRates))
}

func (c *RateController) getRates(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	rates, err := c.rateService.GetRates(r.Context())
	if err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[[]models.RateResponse]("failed to get rates", "Unable to fetch rates right now")
		writeJSON(w, http.StatusInternalServerError, response)
		logResponse(r, http.StatusInternalServerError, response, start)
		return
	}

	mapped := make([]models.RateResponse, 0, len(rates))
	for _, rate := range rates {
		mapped = append(mapped, models.RateResponse{
			Currency:  string(rate.Currency),
			Rate:      rate.Rate,
			UpdatedAt: rate.UpdatedAt.Format(time.RFC3339),
		})
	}

	response := commons.SuccessResponse("rates fetched successfully", mapped)
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *RateController) refreshRates(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if err := c.rateRefreshService.RefreshRates(r.Context()); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[struct{}]("rate refresh failed", err.Error())
		writeJSON(w, http.StatusBadGateway, response)
		logResponse(r, http.StatusBadGateway, response, start)
		return
	}

	response := commons.SuccessResponse("rates refreshed successfully", struct{}{})
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
