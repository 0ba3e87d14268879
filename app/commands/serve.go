package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"blogsite/app/repositories"
	"blogsite/app/routes"
	"blogsite/app/views"

	"go.uber.org/zap"
)

func (c *CLI) serve() int {
	db, err := repositories.Open(c.dbPath(), c.cfg.Database.InMemory)
	if err != nil {
		c.log.Error("failed to open database", zap.Error(err))
		return 1
	}
	defer db.Close()

	renderer, err := views.NewRenderer(c.cfg.Views.Dir)
	if err != nil {
		c.log.Error("failed to load templates", zap.Error(err))
		return 1
	}

	srv := &http.Server{
		Addr:    c.cfg.Server.Addr,
		Handler: routes.SetupRoutes(db, renderer, c.log),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.runServer(ctx, srv); err != nil {
		c.log.Error("server stopped", zap.Error(err))
		return 1
	}
	return 0
}

// runServer serves until ctx is done, then shuts srv down gracefully
func (c *CLI) runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		c.log.Info("starting blog server", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.log.Info("shutting down", zap.Duration("timeout", c.cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
