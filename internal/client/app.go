package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/service"
	"github.com/MKhiriev/go-shop-admin/internal/workers"
)

var (
	errNoServices = errors.New("client services are not specified")
	errNoUI       = errors.New("ui is not specified")
)

// App ties the console services, their background workers and the UI into
// one process lifecycle.
type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	closer   io.Closer
	logger   *logger.Logger
}

// NewApp creates the console application. closer, usually the local
// storage, is closed after the UI exits and the workers are stopped; it may
// be nil.
func NewApp(services *service.ClientServices, ui UI, closer io.Closer, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNoServices
	}
	if ui == nil {
		return nil, errNoUI
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(services.PersistJob),
		closer:   closer,
		logger:   log,
	}, nil
}

// Run restores the previous session, starts the session flush job and
// blocks in the UI until the operator quits or the process receives
// SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) (err error) {
	state, restoreErr := a.services.SessionService.Restore(ctx)
	if restoreErr != nil {
		// an unreadable session store only costs the operator a login
		a.logger.Err(restoreErr).Str("func", "App.run").Msg("could not restore previous session")
	} else if state.Authenticated {
		a.logger.Info().Str("subject", state.Subject).Msg("continuing previous session")
	}

	a.workers.Start(ctx)
	defer func() {
		// Stop performs the final session flush, so it must run before the
		// storage is closed.
		a.workers.Stop()
		if a.closer != nil {
			if closeErr := a.closer.Close(); closeErr != nil {
				a.logger.Err(closeErr).Str("func", "App.run").Msg("error closing local storage")
				err = errors.Join(err, fmt.Errorf("close local storage: %w", closeErr))
			}
		}
		a.logger.Info().Msg("console stopped")
	}()

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
