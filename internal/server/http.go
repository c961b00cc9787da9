package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger

	// ready is closed once the listener is bound (or binding failed).
	ready     chan struct{}
	mu        sync.Mutex
	boundTo   string
	listenErr error
}

func newHTTPServer(handler http.Handler, address string, log *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: log,
		ready:  make(chan struct{}),
	}
}

// RunServer binds the listener and serves until Shutdown is called.
func (h *httpServer) RunServer() {
	ln, err := net.Listen("tcp", h.server.Addr)

	h.mu.Lock()
	h.listenErr = err
	if err == nil {
		h.boundTo = ln.Addr().String()
	}
	h.mu.Unlock()
	close(h.ready)

	if err != nil {
		h.logger.Err(err).Str("address", h.server.Addr).Msg("HTTP server failed to listen")
		return
	}

	h.logger.Info().Str("address", h.boundTo).Msg("HTTP server listening")
	if err = h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server stopped unexpectedly")
	}
}

// Addr waits until the listener is bound and returns its address.
func (h *httpServer) Addr() (string, error) {
	<-h.ready

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.boundTo, h.listenErr
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server shutdown")
	}
}
