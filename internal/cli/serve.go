package cli

import (
	"context"
	"time"

	"github.com/toyz/docspec/internal/server"
	"github.com/toyz/docspec/internal/server/adapters"
	"github.com/toyz/docspec/internal/utils"
)

// ShutdownTimeout bounds the graceful shutdown of the mock server
const ShutdownTimeout = 5 * time.Second

// NewServer creates a mock server for cfg with every action mounted
func NewServer(ctx context.Context, cfg *Config, diagnostics *utils.DiagnosticSystem) (*server.Server, error) {
	extractor, err := NewExtractor(cfg, diagnostics)
	if err != nil {
		return nil, err
	}

	web, err := adapters.New(cfg.Server.Adapter)
	if err != nil {
		return nil, err
	}

	srv := server.New(web, extractor, diagnostics)
	if err := srv.Mount(ctx); err != nil {
		return nil, err
	}
	return srv, nil
}

// Serve runs the mock server for cfg until ctx is done, then shuts it down
func Serve(ctx context.Context, cfg *Config, diagnostics *utils.DiagnosticSystem) error {
	if diagnostics == nil {
		diagnostics = utils.NewQuietDiagnostics()
	}
	diagnostics.Header("Serving documentation")

	srv, err := NewServer(ctx, cfg, diagnostics)
	if err != nil {
		return err
	}
	for route, action := range srv.Routes() {
		diagnostics.Verbose("%s %s", route, action)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.Server.Addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	diagnostics.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		return err
	}

	select {
	case err := <-errCh:
		return err
	case <-shutdownCtx.Done():
		return nil
	}
}
