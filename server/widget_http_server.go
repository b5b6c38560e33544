package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type WidgetHttpServer struct {
	router          *Router
	muxRouter       *mux.Router
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

func NewWidgetHttpServer(router *Router, muxRouter *mux.Router, shutdownTimeout time.Duration, logger *zap.Logger) *WidgetHttpServer {
	router.RegisterRoutes()
	return &WidgetHttpServer{
		router:          router,
		muxRouter:       muxRouter,
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}
}

// Handler returns the routed handler of the server.
func (s *WidgetHttpServer) Handler() http.Handler {
	return s.muxRouter
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *WidgetHttpServer) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("[WidgetHttpServer] Starting server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("[WidgetHttpServer] Shutting down the server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-serveErr
	s.logger.Info("[WidgetHttpServer] Server exiting")
	return nil
}
