package tsp

import (
	"context"
	"time"
)

// budget is the wall-clock allowance of one solve call. It combines
// Options.TimeLimit with the context deadline/cancellation; whichever comes
// first ends the search. Solvers poll it at their outer loop boundaries only.
type budget struct {
	ctx      context.Context
	start    time.Time
	deadline time.Time
	limited  bool
}

func newBudget(ctx context.Context, limit time.Duration) budget {
	if ctx == nil {
		ctx = context.Background()
	}
	b := budget{ctx: ctx, start: time.Now()}
	if limit > 0 {
		b.limited = true
		b.deadline = b.start.Add(limit)
	}
	if d, ok := ctx.Deadline(); ok && (!b.limited || d.Before(b.deadline)) {
		b.limited = true
		b.deadline = d
	}

	return b
}

// expired reports whether the deadline passed or the context was cancelled.
func (b budget) expired() bool {
	if b.ctx.Err() != nil {
		return true
	}

	return b.limited && !time.Now().Before(b.deadline)
}

func (b budget) elapsed() time.Duration { return time.Since(b.start) }
