// v0
// internal/api/server.go
package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/observability"
)

type Server struct {
	HTTP *http.Server
	Log  *slog.Logger
}

func NewServer(addr string, log *slog.Logger, h *Handlers, m *observability.Metrics) *Server {
	r := mux.NewRouter()
	r.Handle("/health", m.Middleware("health", http.HandlerFunc(h.Health))).Methods(http.MethodGet)
	r.Handle("/simulate", m.Middleware("simulate", http.HandlerFunc(h.Simulate))).Methods(http.MethodPost)
	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	chain := handlers.RecoveryHandler()(handlers.LoggingHandler(os.Stdout, r))

	hs := &http.Server{
		Addr:              addr,
		Handler:           chain,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{HTTP: hs, Log: log}
}

func (s *Server) Start() error {
	s.Log.Info("http server starting", "addr", s.HTTP.Addr)
	return s.HTTP.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.Log.Info("http server stopping")
	return s.HTTP.Shutdown(ctx)
}
