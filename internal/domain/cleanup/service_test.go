package cleanup

import (
	"context"
	"errors"
	"testing"
	"time"

	"band-practice-go/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	dates   []time.Time
	cutoffs []time.Time
	err     error
}

func (p *fakePurger) DeletePracticesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	p.cutoffs = append(p.cutoffs, cutoff)
	if p.err != nil {
		return 0, p.err
	}
	kept := p.dates[:0]
	var deleted int64
	for _, d := range p.dates {
		if d.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, d)
	}
	p.dates = kept
	return deleted, nil
}

func TestRunDeletesOnlyPastPractices(t *testing.T) {
	now := time.Date(2026, 5, 2, 2, 0, 0, 0, time.UTC)
	purger := &fakePurger{dates: []time.Time{
		date(2026, 5, 1),
		date(2026, 5, 2),
		date(2026, 5, 3),
	}}

	svc := NewService(purger, time.UTC, logger.NewNop()).WithClock(func() time.Time { return now })
	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 1, result.DeletedCount)
	assert.Equal(t, now, result.CleanedAt)
	assert.Equal(t, date(2026, 5, 2), result.Cutoff)
	assert.Equal(t, []time.Time{date(2026, 5, 2), date(2026, 5, 3)}, purger.dates)
}

func TestRunTwiceSameDayDeletesNothingSecondTime(t *testing.T) {
	now := time.Date(2026, 5, 2, 2, 0, 0, 0, time.UTC)
	purger := &fakePurger{dates: []time.Time{date(2026, 4, 30), date(2026, 5, 1)}}

	svc := NewService(purger, time.UTC, logger.NewNop()).WithClock(func() time.Time { return now })
	first, err := svc.Run(context.Background())
	require.NoError(t, err)
	second, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 2, first.DeletedCount)
	assert.Zero(t, second.DeletedCount)
	assert.Empty(t, purger.dates)
}

func TestRunWrapsStoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	purger := &fakePurger{err: storeErr}

	svc := NewService(purger, time.UTC, logger.NewNop())
	_, err := svc.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
