package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/bagdasarian/member-search/internal/handler"
)

type Server struct {
	handler *handler.Handler
	server  *http.Server
	logger  *zap.SugaredLogger
}

func NewServer(h *handler.Handler, addr string, logger *zap.Logger) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	return &Server{
		handler: h,
		server: &http.Server{
			Addr:              addr,
			Handler:           handler.Middleware(logger, mux),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger.Sugar(),
	}
}

func (s *Server) Start() error {
	s.logger.Infow("server starting", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
