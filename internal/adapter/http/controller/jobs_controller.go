package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/api-sage/core-banking/internal/commons"
	"github.com/api-sage/core-banking/internal/usecase/service_interfaces"
)

// JobsController exposes manual triggers for the periodic jobs so operators
// can run a batch outside its schedule.
type JobsController struct {
	accrualService   service_interfaces.AccrualService
	recurringService service_interfaces.RecurringPaymentService
}

func NewJobsController(
	accrualService service_interfaces.AccrualService,
	recurringService service_interfaces.RecurringPaymentService,
) *JobsController {
	return &JobsController{
		accrualService:   accrualService,
		recurringService: recurringService,
	}
}

func (c *JobsController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("POST /jobs/deposit-accrual", wrap(c.runDepositAccrual))
	mux.Handle("POST /jobs/recurring-payments", wrap(c.runRecurringPayments))
}

func (c *JobsController) runDepositAccrual(w http.ResponseWriter, r *http.Request) {
	c.runJob(w, r, "deposit accrual", c.accrualService.RunDepositAccrual)
}

func (c *JobsController) runRecurringPayments(w http.ResponseWriter, r *http.Request) {
	c.runJob(w, r, "recurring payments", c.recurringService.RunRecurringPayments)
}

func (c *JobsController) runJob(w http.ResponseWriter, r *http.Request, name string, run func(ctx context.Context) error) {
	start := time.Now()
	logRequest(r, nil)

	if err := run(r.Context()); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[struct{}](name+" run failed", err.Error())
		writeJSON(w, http.StatusInternalServerError, response)
		logResponse(r, http.StatusInternalServerError, response, start)
		return
	}

	response := commons.SuccessResponse(name+" run completed", struct{}{})
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
