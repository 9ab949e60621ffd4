// Package scheduler runs the refund and bonus sweeps on a cron schedule inside
// the API process.
package scheduler

import (
	"context"
	"log"
	"time"

	"dominant_assurance/internal/usecase"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = 5 * time.Minute

// SweepScheduler manages the sweep cron job.
type SweepScheduler struct {
	cron       *cron.Cron
	sweep      usecase.ISweepUseCase
	schedule   string
	projectIDs []string
}

func NewSweepScheduler(sweep usecase.ISweepUseCase, schedule string, projectIDs []string) *SweepScheduler {
	cronLogger := cron.PrintfLogger(log.Default())
	c := cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)))
	return &SweepScheduler{cron: c, sweep: sweep, schedule: schedule, projectIDs: projectIDs}
}

// Start registers the sweep job and starts the cron scheduler.
func (s *SweepScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.RunSweeps); err != nil {
		log.Printf("[sweep][scheduler] failed to schedule sweep job schedule=%q err=%v", s.schedule, err)
		return err
	}
	log.Printf("[sweep][scheduler] scheduled sweep job schedule=%q projects=%d", s.schedule, len(s.projectIDs))
	s.cron.Start()
	return nil
}

// RunSweeps is the cron job body.
func (s *SweepScheduler) RunSweeps() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()
	started := time.Now()
	s.sweep.RunAll(ctx, s.projectIDs)
	log.Printf("[sweep][scheduler] sweep job finished duration=%s", time.Since(started))
}

// Stop stops the scheduler; the returned context is done when a running job ends.
func (s *SweepScheduler) Stop() context.Context {
	return s.cron.Stop()
}
