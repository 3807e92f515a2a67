package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/echosite/echosite/config"
	"github.com/echosite/echosite/logger"
	"golang.org/x/net/netutil"
)

// Server represents the web server
type Server struct {
	config   *config.ServerConfig
	logger   *logger.WebLogger
	listener net.Listener
	httpSrv  *http.Server
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewServer creates a new server instance
func NewServer(cfg *config.ServerConfig, log *logger.WebLogger) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		config: cfg,
		logger: log,
		ctx:    ctx,
		cancel: cancel,
	}
	s.httpSrv = &http.Server{
		Handler: http.HandlerFunc(s.dispatch),
		BaseContext: func(net.Listener) context.Context {
			return s.ctx
		},
	}

	return s
}

// Start binds the listen address and begins serving requests.
// It returns once the listener is up; serving continues in the background.
func (s *Server) Start() error {
	addr := s.config.Addr()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	if s.config.MaxConns > 0 {
		listener = netutil.LimitListener(listener, s.config.MaxConns)
	}
	s.listener = listener

	s.logger.Info("Server listening on %s", describeBind(listener.Addr()))

	go s.serveLoop()

	return nil
}

// serveLoop runs the HTTP accept loop until the server is stopped
func (s *Server) serveLoop() {
	err := s.httpSrv.Serve(s.listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Server error: %v", err)
	}
}

// Stop closes the listener and drains in-flight requests
func (s *Server) Stop() error {
	s.cancel()

	timeout := time.Duration(s.config.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.httpSrv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	s.logger.Info("Server stopped")
	return nil
}

// Addr returns the resolved listen address, or nil before Start
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// describeBind renders a bound address for the listening log line,
// distinguishing a wildcard bind from a specific interface
func describeBind(addr net.Addr) string {
	tcpAddr, ok := addr.(*net.TCPAddr)
	if !ok {
		return addr.String()
	}
	if tcpAddr.IP == nil || tcpAddr.IP.IsUnspecified() {
		return fmt.Sprintf("all interfaces, port %d", tcpAddr.Port)
	}
	return tcpAddr.String()
}
