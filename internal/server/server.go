// Package server exposes a pool of Maude gateways over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GatewayPool is the subset of the SDK pool the server needs.
type GatewayPool interface {
	Execute(ctx context.Context, command string) (string, error)
	Alive() int
	Size() int
}

// Server serves evaluation requests over a pool of interpreters.
type Server struct {
	log        *slog.Logger
	pool       GatewayPool
	router     *gin.Engine
	httpServer *http.Server
}

// New creates a server listening on addr once Run is called.
func New(log *slog.Logger, pool GatewayPool, addr string) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		log:  log.With("component", "http_server"),
		pool: pool,
	}

	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	api.POST("/eval", s.handleEval)
	api.GET("/health", s.handleHealth)

	s.router = router
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Run serves until Shutdown is called or the listener fails.
func (s *Server) Run() error {
	s.log.Info("HTTP server listening", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown stops the server gracefully, honoring the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")

	return s.httpServer.Shutdown(ctx)
}
