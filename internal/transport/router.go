package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// StatusPath is the route of the status endpoint.
const StatusPath = "/api/eth-tx-status"

// NewRouter wires the status API, health and metrics endpoints behind CORS.
func NewRouter(h *StatusHandler, m HTTPMetrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(logger, m))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get(StatusPath, h.TxStatus)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return cors.Default().Handler(r)
}
