// Package scheduler contains the reminder core: a minute ticker, the trigger
// engine that decides which (subscriber, kind) pairs fire at a given moment,
// and the dispatcher that delivers them and records delivery.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/azamatbyte/ramadan/internal/domain"
)

// tickInterval matches the minute granularity of trigger matching. Each tick
// runs a full pass to completion; ticks never overlap.
const tickInterval = time.Minute

// Scheduler drives the engine and dispatcher off the wall clock in one fixed
// civil timezone, independent of the host's local zone.
type Scheduler struct {
	engine     *Engine
	dispatcher *Dispatcher
	loc        *time.Location
	log        *zap.Logger
}

func New(engine *Engine, dispatcher *Dispatcher, loc *time.Location, log *zap.Logger) *Scheduler {
	return &Scheduler{engine: engine, dispatcher: dispatcher, loc: loc, log: log}
}

// Run ticks once per minute until ctx is canceled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopping")
			return
		case <-ticker.C:
			s.Tick(ctx, time.Now().In(s.loc))
		}
	}
}

// Tick performs one scheduling cycle for the given moment. A dispatch failure
// for one firing never stops the remaining ones.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) {
	today := now.Format(domain.DateLayout)
	for _, f := range s.engine.Due(ctx, now) {
		if err := s.dispatcher.Dispatch(f, today); err != nil {
			s.log.Error("dispatch failed",
				zap.Error(err),
				zap.String("category", string(f.Ref.Category)),
				zap.Int64("id", f.Ref.ID),
				zap.String("kind", string(f.Kind)))
			continue
		}
		s.log.Info("reminder sent",
			zap.String("category", string(f.Ref.Category)),
			zap.Int64("id", f.Ref.ID),
			zap.String("kind", string(f.Kind)),
			zap.String("time", f.Time.String()))
	}
}
