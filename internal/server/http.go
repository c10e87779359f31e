package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/netutil"

	"github.com/MKhiriev/voice-bridge/internal/config"
	"github.com/MKhiriev/voice-bridge/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type httpServer struct {
	server         *http.Server
	listener       net.Listener
	listening      chan struct{}
	maxConnections int

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = config.DefaultRequestTimeout
	}

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       requestTimeout,
			WriteTimeout:      requestTimeout,
			IdleTimeout:       idleTimeout,
		},
		listening:      make(chan struct{}),
		maxConnections: cfg.MaxConnections,
		logger:         logger,
	}
}

// listen binds the configured address. Serving starts in RunServer.
func (h *httpServer) listen() error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s failed: %w", h.server.Addr, err)
	}
	if h.maxConnections > 0 {
		listener = netutil.LimitListener(listener, h.maxConnections)
	}

	h.listener = listener
	close(h.listening)
	h.logger.Info().
		Str("address", listener.Addr().String()).
		Int("max_connections", h.maxConnections).
		Msg("HTTP server listening")
	return nil
}

func (h *httpServer) RunServer() {
	if h.listener == nil {
		h.logger.Err(errServerNotListening).Msg("HTTP server Serve")
		return
	}
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server Serve")
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	h.logger.Info().Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
