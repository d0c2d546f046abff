package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sftp-checker/internal/worker"
)

// Server exposes the observability surface: Prometheus metrics and a health
// endpoint reflecting scheduler state.
type Server struct {
	set *worker.Set
}

func NewServer(set *worker.Set) *Server {
	return &Server{set: set}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if !s.set.IsHealthy() {
			http.Error(w, "schedulers not running", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
