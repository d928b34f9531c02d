package app

import (
	"context"
	"time"

	"github.com/MKhiriev/remote-mirror/internal/logger"
	"github.com/MKhiriev/remote-mirror/internal/service"
	"github.com/MKhiriev/remote-mirror/models"
)

type App struct {
	job      service.SyncJob
	req      models.SyncRequest
	interval time.Duration
	logger   *logger.Logger
}

// NewApp returns an App. A zero interval means a single run.
func NewApp(services *service.Services, req models.SyncRequest, interval time.Duration, log *logger.Logger) *App {
	return &App{
		job:      services.SyncJob,
		req:      req,
		interval: interval,
		logger:   log,
	}
}

func (a *App) Run(ctx context.Context) service.ExitCode {
	if a.interval <= 0 {
		return a.job.RunOnce(ctx, a.req)
	}

	a.logger.Info().Dur("interval", a.interval).Msg("sync job started")
	a.job.Start(ctx, a.req, a.interval)
	<-ctx.Done()
	a.job.Stop()
	a.logger.Info().Msg("sync job stopped")

	return a.job.LastExitCode()
}
