package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/remote-mirror/models"
)

// DefaultSyncInterval is used by Start when the interval is not positive.
const DefaultSyncInterval = 5 * time.Minute

type syncJob struct {
	syncService SyncService
	reporter    Reporter

	lastCode atomic.Int32

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that runs syncService and hands every result
// to reporter. The job is idle until RunOnce or Start is called.
func NewSyncJob(syncService SyncService, reporter Reporter) SyncJob {
	j := &syncJob{syncService: syncService, reporter: reporter}
	j.lastCode.Store(int32(ExitAborted))
	return j
}

// RunOnce implements SyncJob.
func (j *syncJob) RunOnce(ctx context.Context, req models.SyncRequest) ExitCode {
	stats, err := j.syncService.Run(ctx, req)
	code := j.reporter.Report(stats, err)

	// A run cut short by shutdown is not a completed run.
	if ctx.Err() == nil {
		j.lastCode.Store(int32(code))
	}
	return code
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that syncs immediately and then every
// interval. If interval is zero or negative it defaults to 5 minutes. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, req models.SyncRequest, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		j.RunOnce(jobCtx, req)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.RunOnce(jobCtx, req)
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// LastExitCode implements SyncJob.
func (j *syncJob) LastExitCode() ExitCode {
	return ExitCode(j.lastCode.Load())
}
