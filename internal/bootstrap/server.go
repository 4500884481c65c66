package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultShutdownTimeout = 10 * time.Second

type ServerConfig struct {
	Port            string
	Env             string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// RunHTTPServer serves handler until ctx is cancelled (cmd/api wires ctx to
// SIGINT/SIGTERM), then drains in-flight requests within ShutdownTimeout.
// Start and shutdown are both written to the audit log.
func RunHTTPServer(
	ctx context.Context,
	handler http.Handler,
	cfg ServerConfig,
	auditLogger AuditLogger,
	logger *zap.Logger,
) error {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("http.server")

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}

	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	addr := ln.Addr().String()
	logger.Info("HTTP server running", zap.String("addr", addr), zap.String("env", cfg.Env))
	auditLogger.Log(ctx, AuditLog{
		Action:  "SERVER_START",
		Message: "Leave API is accepting requests",
		Meta:    map[string]any{"addr": addr, "env": cfg.Env},
	})

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("serve failed", zap.Error(err))
		return err
	case <-ctx.Done():
	}

	logger.Info("shutdown requested", zap.Error(ctx.Err()))

	// audit dulu sebelum koneksi ditutup
	auditLogger.Log(context.WithoutCancel(ctx), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta:    map[string]any{"addr": addr, "env": cfg.Env},
	})

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
		return err
	}
	logger.Info("server exited gracefully")
	return nil
}
