package scheduler

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/azamatbyte/ramadan/internal/domain"
	"github.com/azamatbyte/ramadan/internal/prayer"
	"github.com/azamatbyte/ramadan/internal/store"
	"github.com/azamatbyte/ramadan/internal/timetable"
)

// LeadMinutes is how long before a fasting-window boundary its reminder fires.
const LeadMinutes = 10

// PrayerProvider computes the five prayer instants for a coordinate and date.
// prayer.Client implements it.
type PrayerProvider interface {
	Times(ctx context.Context, coords domain.Coordinates, date string) (prayer.Times, error)
}

// Firing is one decided notification: this subscriber gets this kind now.
// Time is the boundary or prayer instant shown in the message, not the
// lead-adjusted trigger instant.
type Firing struct {
	Ref  domain.ChatRef
	Sub  domain.Subscriber
	Kind domain.TriggerKind
	Time domain.Clock
}

// Engine decides, for one moment in time, the full set of notifications due.
// It never sends anything itself.
type Engine struct {
	repo    store.Repo
	prayers PrayerProvider
	log     *zap.Logger
}

func NewEngine(repo store.Repo, prayers PrayerProvider, log *zap.Logger) *Engine {
	return &Engine{repo: repo, prayers: prayers, log: log}
}

// Due walks every subscriber and collects the (subscriber, kind) pairs whose
// trigger instant equals now's minute and whose dedup marker is not yet
// stamped for today. Order is stable: individuals before groups, each in
// store order, kinds in their fixed order. A failure for one subscriber never
// stops the walk.
func (e *Engine) Due(ctx context.Context, now time.Time) []Firing {
	today := now.Format(domain.DateLayout)
	tick := domain.ClockOf(now)

	var due []Firing
	for _, category := range []domain.Category{domain.CategoryIndividual, domain.CategoryGroup} {
		for _, entry := range e.repo.All(category) {
			due = append(due, e.dueFor(ctx, entry, today, tick)...)
		}
	}
	return due
}

func (e *Engine) dueFor(ctx context.Context, entry store.Entry, today string, tick domain.Clock) []Firing {
	sub := entry.Subscriber
	var out []Firing

	if sub.Region != "" {
		out = append(out, e.fastingDue(entry, today, tick)...)
	}
	if sub.Location != nil {
		out = append(out, e.prayersDue(ctx, entry, today, tick)...)
	}
	// A subscriber with neither region nor coordinates is silently skipped.
	return out
}

// fastingDue checks the two lead-adjusted fasting-window triggers.
func (e *Engine) fastingDue(entry store.Entry, today string, tick domain.Clock) []Firing {
	day, ok := timetable.DayFor(today)
	if !ok {
		// Outside Ramadan: a normal state, not an error.
		return nil
	}
	times, err := timetable.TimesFor(entry.Subscriber.Region, day.Index)
	if err != nil {
		if errors.Is(err, timetable.ErrUnknownRegion) {
			e.log.Warn("subscriber has unknown region",
				zap.String("category", string(entry.Ref.Category)),
				zap.Int64("id", entry.Ref.ID),
				zap.String("region", entry.Subscriber.Region))
		} else {
			e.log.Warn("resolve times failed", zap.Error(err), zap.Int64("id", entry.Ref.ID))
		}
		return nil
	}

	var out []Firing
	for _, f := range []struct {
		kind domain.TriggerKind
		at   domain.Clock
	}{
		{domain.KindSahar, times.Sahar},
		{domain.KindIftar, times.Iftar},
	} {
		trigger := f.at.Add(-LeadMinutes)
		if tick == trigger && !entry.Subscriber.FiredOn(f.kind, today) {
			out = append(out, Firing{Ref: entry.Ref, Sub: entry.Subscriber, Kind: f.kind, Time: f.at})
		}
	}
	return out
}

// prayersDue checks the five exact prayer-instant triggers.
func (e *Engine) prayersDue(ctx context.Context, entry store.Entry, today string, tick domain.Clock) []Firing {
	times, err := e.prayers.Times(ctx, *entry.Subscriber.Location, today)
	if err != nil {
		// Provider unavailable: skip this subscriber for this tick only.
		e.log.Debug("prayer times unavailable",
			zap.Error(err),
			zap.String("category", string(entry.Ref.Category)),
			zap.Int64("id", entry.Ref.ID))
		return nil
	}

	var out []Firing
	for _, kind := range domain.PrayerKinds() {
		at, ok := times.ByKind(kind)
		if !ok {
			continue
		}
		if tick == at && !entry.Subscriber.FiredOn(kind, today) {
			out = append(out, Firing{Ref: entry.Ref, Sub: entry.Subscriber, Kind: kind, Time: at})
		}
	}
	return out
}
