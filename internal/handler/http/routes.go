package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
		r.Method("GET", "/metrics", h.metrics.handler())
	})

	// admin routes: a valid token first, then the admin role
	router.Route("/api/admin", func(r chi.Router) {
		r.Use(h.auth, h.requireAdmin)

		r.Route("/funds", func(r chi.Router) {
			r.Post("/", h.createFund)
			r.Get("/", h.listFunds)
			r.Get("/me", h.getMyFund)
			r.Post("/me/deposit", h.deposit)
			r.Post("/me/withdraw", h.withdraw)
			r.Get("/{fundID}", h.getFund)
		})

		r.Route("/service-fees", func(r chi.Router) {
			r.Post("/", h.createServiceFee)
			r.Get("/", h.listServiceFees)
			r.Get("/{feeID}", h.getServiceFee)
			r.Patch("/{feeID}/status", h.updateServiceFeeStatus)
			r.Delete("/{feeID}", h.deleteServiceFee)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
