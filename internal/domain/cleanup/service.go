package cleanup

import (
	"context"
	"fmt"
	"time"

	"band-practice-go/pkg/logger"
)

type Purger interface {
	DeletePracticesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Result struct {
	DeletedCount int64
	CleanedAt    time.Time
	Cutoff       time.Time
}

// Service removes expired practices in one bulk delete. Running it twice
// for the same day is harmless: the second pass deletes nothing.
type Service struct {
	purger Purger
	loc    *time.Location
	now    func() time.Time
	log    logger.Logger
}

func NewService(purger Purger, loc *time.Location, log logger.Logger) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{purger: purger, loc: loc, now: time.Now, log: log}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Run(ctx context.Context) (Result, error) {
	now := s.now()
	cutoff := Cutoff(now, s.loc)

	deleted, err := s.purger.DeletePracticesBefore(ctx, cutoff)
	if err != nil {
		return Result{}, fmt.Errorf("delete practices before %s: %w", cutoff.Format(time.DateOnly), err)
	}

	if deleted > 0 {
		s.log.Info("cleanup: removed expired practices", "deleted", deleted, "cutoff", cutoff.Format(time.DateOnly))
	} else {
		s.log.Debug("cleanup: nothing to remove", "cutoff", cutoff.Format(time.DateOnly))
	}

	return Result{
		DeletedCount: deleted,
		CleanedAt:    now,
		Cutoff:       cutoff,
	}, nil
}
