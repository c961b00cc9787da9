package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/workers"
)

const (
	defaultPersistInterval = 2 * time.Second
	finalFlushTimeout      = 2 * time.Second
)

type clientPersistJob struct {
	session  ClientSessionService
	interval time.Duration
	logger   *logger.Logger

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewClientPersistJob creates a worker that flushes the session token to
// durable storage every interval. A zero interval means the 2s default; a
// negative one disables the ticker but keeps the final flush on Stop.
func NewClientPersistJob(session ClientSessionService, interval time.Duration, log *logger.Logger) workers.Worker {
	if interval == 0 {
		interval = defaultPersistInterval
	}
	return &clientPersistJob{session: session, interval: interval, logger: log}
}

// Start implements workers.Worker. It stops any previously running loop and
// launches a new one that exits when ctx is cancelled or Stop is called.
func (j *clientPersistJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	defer j.mu.Unlock()
	j.started = true

	if j.interval < 0 {
		j.logger.Debug().Msg("periodic session flush disabled")
		return
	}

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.session.Persist(jobCtx); err != nil {
					j.logger.Err(err).Str("func", "clientPersistJob").Msg("periodic session flush failed")
				}
			}
		}
	}()
}

// Stop implements workers.Worker. It cancels the loop, waits for it to exit
// and performs one last flush.
func (j *clientPersistJob) Stop() {
	j.mu.Lock()
	started, cancel := j.started, j.cancel
	j.started, j.cancel = false, nil
	j.mu.Unlock()

	if !started {
		return
	}
	if cancel != nil {
		cancel()
	}
	j.wg.Wait()

	ctx, done := context.WithTimeout(context.Background(), finalFlushTimeout)
	defer done()
	if err := j.session.Persist(ctx); err != nil {
		j.logger.Err(err).Str("func", "clientPersistJob").Msg("final session flush failed")
	}
}
