package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-achieve-portal/internal/config"
	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/internal/service"
	"github.com/MKhiriev/go-achieve-portal/internal/tui"
	"github.com/MKhiriev/go-achieve-portal/internal/workers"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	jobs     *workers.Jobs
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("services are not provided")
	}
	if ui == nil {
		return nil, errors.New("ui is not provided")
	}

	return &App{
		services: services,
		tui:      ui,
		jobs:     workers.NewJobs(services.NotificationJob),
		workers:  workersCfg,
		logger:   log,
	}, nil
}

// Run drives one full session: restore or interactive login, the main loop
// with the push reader running alongside, and sign-out handling. A logout
// from the main loop starts the cycle over.
func (a *App) Run() error {
	ctx := context.Background()

	user, err := a.services.AuthService.Restore(ctx)
	if err != nil {
		if !errors.Is(err, service.ErrNoSavedSession) {
			return fmt.Errorf("restore session: %w", err)
		}

		user, err = a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	a.jobs.Start(ctx, a.workers.PushRetryInterval)
	defer a.jobs.Stop()

	logout, err := a.tui.MainLoop(ctx, user)
	if err != nil {
		return err
	}
	if logout {
		a.jobs.Stop()
		if err = a.services.AuthService.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Str("func", "App.Run").Msg("logout failed")
		}
		return a.Run()
	}

	return nil
}
