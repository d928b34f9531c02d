package service

import (
	"github.com/MKhiriev/remote-mirror/internal/adapter"
	"github.com/MKhiriev/remote-mirror/internal/logger"
	"github.com/MKhiriev/remote-mirror/internal/store"
)

type Services struct {
	SyncService SyncService
	Reporter    Reporter
	SyncJob     SyncJob
}

func NewServices(remote adapter.RemoteAdapter, storages *store.Storages, confirmer Confirmer, metricsFile string, log *logger.Logger) *Services {
	syncSvc := NewSyncService(remote, storages.Mirror, confirmer, log)
	reporter := NewReporter(metricsFile, log)

	return &Services{
		SyncService: syncSvc,
		Reporter:    reporter,
		SyncJob:     NewSyncJob(syncSvc, reporter),
	}
}
