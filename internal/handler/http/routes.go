package http

import (
	"github.com/go-chi/chi/v5"
)

// Init builds the router. Middleware order, outermost first: trace id,
// access log, gzip, panic recovery. Recovery sits inside gzip so that its
// error envelope is compressed like any other response.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withGZip, h.withRecover)

	router.Post(h.skillPath, h.skill)
	router.Get("/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
