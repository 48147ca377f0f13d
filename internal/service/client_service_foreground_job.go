// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
)

// ForegroundTrigger is the part of [Ledger] the job drives.
type ForegroundTrigger interface {
	Foreground(ctx context.Context) (bool, error)
}

// ForegroundJob calls Foreground on a ticker. The headless client has no OS
// foreground events, so the tick stands in for them; the ledger's cooldown
// still decides whether a pass actually runs.
type ForegroundJob struct {
	trigger  ForegroundTrigger
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewForegroundJob creates an idle job. A non-positive interval defaults to
// one minute.
func NewForegroundJob(trigger ForegroundTrigger, interval time.Duration, logger *logger.Logger) *ForegroundJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ForegroundJob{trigger: trigger, interval: interval, logger: logger}
}

// Start stops a running job, fires one trigger immediately and then one per
// interval until ctx is cancelled or Stop is called.
func (j *ForegroundJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.fire(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.fire(jobCtx)
			}
		}
	}()
}

func (j *ForegroundJob) fire(ctx context.Context) {
	ran, err := j.trigger.Foreground(ctx)
	if err != nil {
		j.logger.Warn().Err(err).Msg("foreground sync failed")
		return
	}
	if ran {
		j.logger.Debug().Msg("foreground sync ran")
	}
}

// Stop cancels the job and waits for its goroutine. Safe to call when the
// job is not running.
func (j *ForegroundJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
