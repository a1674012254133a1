// Package scheduler runs the periodic recalculation of report snapshots.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher recalculates stored reports. It is satisfied by *service.SnapshotService.
type Refresher interface {
	RefreshAll(ctx context.Context) (int, error)
}

// Scheduler triggers a Refresher on a cron schedule.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	timeout   time.Duration
}

// New parses spec (standard 5-field cron) and registers the refresh job.
// Overlapping runs are skipped.
func New(spec string, refresher Refresher, timeout time.Duration) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	s := &Scheduler{
		cron:      c,
		refresher: refresher,
		timeout:   timeout,
	}

	if _, err := c.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid snapshot schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start begins running the schedule in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and returns a context that is done when the
// running job, if any, has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	written, err := s.refresher.RefreshAll(ctx)
	if err != nil {
		log.Printf("snapshot refresh finished with errors: %v", err)
	}
	log.Printf("snapshot refresh wrote %d reports in %s", written, time.Since(start))
}
