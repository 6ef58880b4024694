package cleanup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"band-practice-go/pkg/logger"
	"github.com/robfig/cron/v3"
)

const DefaultSchedule = "0 2 * * *"

type runner interface {
	Run(ctx context.Context) (Result, error)
}

// Scheduler runs the cleanup on a cron schedule. Failures are logged and
// never stop later runs.
type Scheduler struct {
	cron    *cron.Cron
	job     runner
	log     logger.Logger
	timeout time.Duration

	entry  cron.EntryID
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

func NewScheduler(job runner, schedule string, loc *time.Location, timeout time.Duration, log logger.Logger) (*Scheduler, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if loc == nil {
		loc = time.Local
	}

	cronLog := logger.NewCronLogger(log)
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.SkipIfStillRunning(cronLog), cron.Recover(cronLog)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:    c,
		job:     job,
		log:     log,
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
	}

	entry, err := c.AddFunc(schedule, s.runScheduled)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("cleanup schedule %q: %w", schedule, err)
	}
	s.entry = entry

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("cleanup: scheduler started", "next_run", s.Next().Format(time.RFC3339))
}

// Next is the next planned run, or the zero time before Start.
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entry).Next
}

// Stop cancels a running job and waits for it to return or for ctx to end.
func (s *Scheduler) Stop(ctx context.Context) error {
	var stopped context.Context
	s.once.Do(func() {
		s.cancel()
		stopped = s.cron.Stop()
	})
	if stopped == nil {
		return nil
	}

	select {
	case <-stopped.Done():
		s.log.Info("cleanup: scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) runScheduled() {
	ctx := s.ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.runJob(ctx)
	if err != nil {
		s.log.InternalError("cleanup: scheduled run failed", err)
		return
	}
	s.log.Debug("cleanup: scheduled run finished", "deleted", result.DeletedCount)
}

// runJob turns a panicking job into an error so it is logged like any other
// failed run.
func (s *Scheduler) runJob(ctx context.Context) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cleanup panicked: %v", r)
		}
	}()
	return s.job.Run(ctx)
}
