package worker

import (
	"context"
	"log/slog"
	"time"

	"trendpilot/internal/model"
)

// ScheduleStore lists schedules and resolves their owners.
type ScheduleStore interface {
	ListSchedules(ctx context.Context) ([]model.Schedule, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
}

// AutopilotRunner executes one autopilot run for a user.
type AutopilotRunner interface {
	Run(ctx context.Context, userID string) ([]model.RunResult, error)
}

// ScheduleMatcher fires autopilot runs for schedules whose time matches the
// current minute. Ticks are sequential: a tick's runs finish before the next
// tick is evaluated, so the same user is never run twice concurrently. A tick
// that arrives late simply misses that minute; there is no catch-up.
type ScheduleMatcher struct {
	Store    ScheduleStore
	Runner   AutopilotRunner
	Interval time.Duration
	Location *time.Location
	Now      func() time.Time // test injection
}

func (w *ScheduleMatcher) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = time.Minute
	}
	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.runOnce(ctx)
		}
	}
}

func (w *ScheduleMatcher) runOnce(ctx context.Context) {
	now := w.now()
	current := now.Format("15:04")
	weekday := now.Weekday()
	slog.Info("schedule check", "time", current, "weekday", weekday.String())

	schedules, err := w.Store.ListSchedules(ctx)
	if err != nil {
		slog.Error("schedule check: list schedules failed", "error", err)
		return
	}

	for _, s := range schedules {
		if !Matches(s, now) {
			continue
		}
		user, err := w.Store.GetUser(ctx, s.UserID)
		if err != nil {
			slog.Error("schedule check: load user failed", "user", s.UserID, "error", err)
			continue
		}
		if user == nil || !user.AutopilotEnabled {
			continue
		}

		slog.Info("autopilot run", "user", user.Email, "time", s.Time)
		results, err := w.Runner.Run(ctx, user.ID)
		if err != nil {
			slog.Error("autopilot run failed", "user", user.Email, "error", err)
			continue
		}
		slog.Info("autopilot run done", "user", user.Email, "results", len(results))
	}
}

func (w *ScheduleMatcher) now() time.Time {
	loc := w.Location
	if loc == nil {
		loc = time.UTC
	}
	if w.Now != nil {
		return w.Now().In(loc)
	}
	return time.Now().In(loc)
}

// Matches reports whether the schedule fires at the given local time: the
// stored "HH:MM" string must equal the current minute exactly, and the
// weekday must satisfy the frequency class.
func Matches(s model.Schedule, now time.Time) bool {
	if s.Time != now.Format("15:04") {
		return false
	}
	weekend := now.Weekday() == time.Saturday || now.Weekday() == time.Sunday
	switch s.Frequency {
	case model.FrequencyWeekdays:
		return !weekend
	case model.FrequencyWeekends:
		return weekend
	default: // daily
		return true
	}
}
