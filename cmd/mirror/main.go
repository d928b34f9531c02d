package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/remote-mirror/internal/adapter"
	"github.com/MKhiriev/remote-mirror/internal/app"
	"github.com/MKhiriev/remote-mirror/internal/config"
	"github.com/MKhiriev/remote-mirror/internal/logger"
	"github.com/MKhiriev/remote-mirror/internal/service"
	"github.com/MKhiriev/remote-mirror/internal/store"
	"github.com/MKhiriev/remote-mirror/internal/tui"
	"github.com/MKhiriev/remote-mirror/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `Usage: mirror [flags] [remote-folder]

Mirrors a remote folder tree (Dropbox or S3) into a local directory.
Credentials are read from the environment or the JSON config file.
`

func main() {
	os.Exit(int(run()))
}

func run() service.ExitCode {
	fmt.Fprint(os.Stderr, buildInfo())

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(os.Stderr, usage)
		return service.ExitOK
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return service.ExitAborted
	}

	log := newLogger(cfg.Log)
	log.Debug().Str("backend", cfg.Remote.Backend).Str("local", cfg.Local.Directory).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	remote, err := adapter.NewRemoteAdapter(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating remote adapter")
		return service.ExitAborted
	}

	storages, err := store.NewStorages(cfg.Local)
	if err != nil {
		log.Error().Err(err).Msg("error creating storages")
		return service.ExitAborted
	}

	var confirmer service.Confirmer
	if cfg.Sync.Interactive {
		confirmer = tui.NewConfirmer(buildInfo(), log)
	}

	services := service.NewServices(remote, storages, confirmer, cfg.Metrics.File, log)

	return app.NewApp(services, cfg.SyncRequest(), cfg.Sync.Interval, log).Run(ctx)
}

func newLogger(cfg config.Log) *logger.Logger {
	opts := logger.Options{
		Level:   cfg.Level,
		Console: cfg.Format == config.LogFormatConsole,
		Output:  os.Stderr,
	}
	if cfg.File != "" {
		return logger.NewFileLogger("mirror", cfg.File, opts)
	}
	return logger.New("mirror", opts)
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
