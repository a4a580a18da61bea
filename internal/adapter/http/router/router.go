package router

import "net/http"

type TransferRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type AccountRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type RateRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type ClientRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type JobsRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

func New(
	transferController TransferRouteRegistrar,
	accountController AccountRouteRegistrar,
	rateController RateRouteRegistrar,
	clientController ClientRouteRegistrar,
	jobsController JobsRouteRegistrar,
	authMiddleware func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()

	if transferController != nil {
		transferController.RegisterRoutes(mux, authMiddleware)
	}
	if accountController != nil {
		accountController.RegisterRoutes(mux, authMiddleware)
	}
	if rateController != nil {
		rateController.RegisterRoutes(mux, authMiddleware)
	}
	if clientController != nil {
		clientController.RegisterRoutes(mux, authMiddleware)
	}
	if jobsController != nil {
		jobsController.RegisterRoutes(mux, authMiddleware)
	}

	return mux
}
