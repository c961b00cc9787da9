// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/stretchr/testify/assert"
)

// spySessionService counts Persist calls; every other method is inert.
type spySessionService struct {
	persists atomic.Int64
}

func (s *spySessionService) Login(context.Context, string, string) (models.SessionState, error) {
	return models.SessionState{}, nil
}
func (s *spySessionService) Logout(context.Context) error { return nil }
func (s *spySessionService) Restore(context.Context) (models.SessionState, error) {
	return models.SessionState{}, nil
}
func (s *spySessionService) Persist(context.Context) error {
	s.persists.Add(1)
	return nil
}
func (s *spySessionService) Invalidate(context.Context, string)  {}
func (s *spySessionService) AuthHeader() string                  { return "" }
func (s *spySessionService) HasToken() bool                      { return false }
func (s *spySessionService) State() models.SessionState          { return models.SessionState{} }
func (s *spySessionService) Subscribe(func(models.SessionState)) {}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientPersistJob_Start_FlushesPeriodically(t *testing.T) {
	spy := &spySessionService{}
	job := NewClientPersistJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.persists.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Persist should run several times, ran: %d", got)
}

func TestClientPersistJob_Stop_StopsGoroutineAndFlushesOnce(t *testing.T) {
	spy := &spySessionService{}
	job := NewClientPersistJob(spy, time.Hour, logger.Nop())

	job.Start(context.Background())
	job.Stop()

	assert.Equal(t, int64(1), spy.persists.Load(), "only the final flush should run")

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int64(1), spy.persists.Load())
}

func TestClientPersistJob_Stop_WithoutStart(t *testing.T) {
	spy := &spySessionService{}
	job := NewClientPersistJob(spy, time.Hour, logger.Nop())

	// safe no-op
	job.Stop()
	assert.Equal(t, int64(0), spy.persists.Load())
}

func TestClientPersistJob_NegativeIntervalDisablesTicker(t *testing.T) {
	spy := &spySessionService{}
	job := NewClientPersistJob(spy, -1, logger.Nop())

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int64(0), spy.persists.Load())

	job.Stop()
	assert.Equal(t, int64(1), spy.persists.Load())
}

func TestClientPersistJob_ZeroIntervalUsesDefault(t *testing.T) {
	job := NewClientPersistJob(&spySessionService{}, 0, logger.Nop()).(*clientPersistJob)
	assert.Equal(t, defaultPersistInterval, job.interval)
}

func TestClientPersistJob_ContextCancelStopsLoop(t *testing.T) {
	spy := &spySessionService{}
	job := NewClientPersistJob(spy, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(10 * time.Millisecond)

	before := spy.persists.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, before, spy.persists.Load())

	job.Stop()
}
