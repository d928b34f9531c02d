package service

import (
	"fmt"

	"github.com/MKhiriev/remote-mirror/internal/logger"
	"github.com/MKhiriev/remote-mirror/models"
	"github.com/prometheus/client_golang/prometheus"
)

// ExitCode is the process exit status derived from a run.
type ExitCode int

const (
	// ExitOK means every entry was synced or skipped.
	ExitOK ExitCode = 0
	// ExitFailures means the walk completed but some items failed.
	ExitFailures ExitCode = 1
	// ExitAborted means the walk stopped early.
	ExitAborted ExitCode = 2
)

type runReporter struct {
	metricsFile string
	logger      *logger.Logger
}

// NewReporter returns a [Reporter] that logs the run summary and, when
// metricsFile is non-empty, writes the run gauges there in the Prometheus
// text format for node_exporter's textfile collector.
func NewReporter(metricsFile string, log *logger.Logger) Reporter {
	return &runReporter{metricsFile: metricsFile, logger: log}
}

// Report implements [Reporter]. It only reads stats.
func (r *runReporter) Report(stats *models.RunStats, runErr error) ExitCode {
	log := r.logger.WithRunID(stats.RunID)

	code := ExitOK
	if runErr != nil {
		code = ExitAborted
		log.Error().
			Err(runErr).
			Int("folders_checked", stats.FoldersChecked).
			Int("files_checked", stats.FilesChecked).
			Int("files_downloaded", stats.FilesDownloaded).
			Msg("sync aborted")
	} else {
		log.Info().
			Int("folders_checked", stats.FoldersChecked).
			Int("files_checked", stats.FilesChecked).
			Int("files_downloaded", stats.FilesDownloaded).
			Dur("duration", stats.Duration()).
			Msg("sync complete")
	}

	if stats.HasFailures() {
		if code == ExitOK {
			code = ExitFailures
		}
		log.Error().Int("count", len(stats.Failures)).Msgf("failed items (%d)", len(stats.Failures))
		for _, f := range stats.Failures {
			log.Error().
				Err(f.Cause).
				Str("remote", f.RemotePath).
				Str("local", f.LocalPath).
				Msg("failed item")
		}
	}

	if r.metricsFile != "" {
		if err := writeMetrics(r.metricsFile, stats, code); err != nil {
			log.Warn().Err(err).Str("file", r.metricsFile).Msg("metrics textfile not written")
		}
	}

	return code
}

func writeMetrics(path string, stats *models.RunStats, code ExitCode) error {
	registry := prometheus.NewRegistry()

	gauge := func(name, help string, value float64) {
		g := prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
		g.Set(value)
		registry.MustRegister(g)
	}

	gauge("mirror_folders_checked", "Remote folders visited by the last run.", float64(stats.FoldersChecked))
	gauge("mirror_files_checked", "Files found current by the last run.", float64(stats.FilesChecked))
	gauge("mirror_files_downloaded", "Files downloaded by the last run.", float64(stats.FilesDownloaded))
	gauge("mirror_failures", "Items that failed in the last run.", float64(len(stats.Failures)))
	gauge("mirror_last_run_status", "Exit code of the last run: 0 ok, 1 failures, 2 aborted.", float64(code))
	gauge("mirror_last_run_duration_seconds", "Duration of the last run.", stats.Duration().Seconds())
	gauge("mirror_last_run_timestamp_seconds", "Unix time the last run finished.", float64(stats.FinishedAt.Unix()))

	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
