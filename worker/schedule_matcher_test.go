package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"trendpilot/internal/model"
)

func localTime(weekday time.Weekday, hour, minute int) time.Time {
	// 2026-09-02 is a Wednesday.
	base := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	offset := int(weekday - time.Wednesday)
	return base.AddDate(0, 0, offset).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TestMatches(t *testing.T) {
	cases := []struct {
		name string
		sch  model.Schedule
		now  time.Time
		want bool
	}{
		{"weekdays wednesday on time", model.Schedule{Time: "09:00", Frequency: model.FrequencyWeekdays}, localTime(time.Wednesday, 9, 0), true},
		{"weekdays saturday", model.Schedule{Time: "09:00", Frequency: model.FrequencyWeekdays}, localTime(time.Saturday, 9, 0), false},
		{"weekdays wrong minute", model.Schedule{Time: "09:00", Frequency: model.FrequencyWeekdays}, localTime(time.Wednesday, 9, 1), false},
		{"weekends saturday", model.Schedule{Time: "21:30", Frequency: model.FrequencyWeekends}, localTime(time.Saturday, 21, 30), true},
		{"weekends sunday", model.Schedule{Time: "21:30", Frequency: model.FrequencyWeekends}, localTime(time.Sunday, 21, 30), true},
		{"weekends monday", model.Schedule{Time: "21:30", Frequency: model.FrequencyWeekends}, localTime(time.Monday, 21, 30), false},
		{"daily any day", model.Schedule{Time: "12:00", Frequency: model.FrequencyDaily}, localTime(time.Sunday, 12, 0), true},
		{"daily wrong time", model.Schedule{Time: "12:00", Frequency: model.FrequencyDaily}, localTime(time.Sunday, 12, 1), false},
	}
	for _, tc := range cases {
		if got := Matches(tc.sch, tc.now); got != tc.want {
			t.Errorf("%s: Matches = %v, want %v", tc.name, got, tc.want)
		}
	}
}

type matcherStore struct {
	schedules []model.Schedule
	users     map[string]*model.User
}

func (s *matcherStore) ListSchedules(ctx context.Context) ([]model.Schedule, error) {
	return s.schedules, nil
}

func (s *matcherStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.users[id], nil
}

type recordingRunner struct {
	ran  []string
	errs map[string]error
}

func (r *recordingRunner) Run(ctx context.Context, userID string) ([]model.RunResult, error) {
	r.ran = append(r.ran, userID)
	return nil, r.errs[userID]
}

func TestRunOnceInvokesMatchingEnabledUsers(t *testing.T) {
	store := &matcherStore{
		schedules: []model.Schedule{
			{UserID: "enabled", Time: "09:00", Frequency: model.FrequencyDaily},
			{UserID: "disabled", Time: "09:00", Frequency: model.FrequencyDaily},
			{UserID: "enabled", Time: "10:00", Frequency: model.FrequencyDaily},
		},
		users: map[string]*model.User{
			"enabled":  {ID: "enabled", Email: "a@example.com", AutopilotEnabled: true},
			"disabled": {ID: "disabled", Email: "b@example.com", AutopilotEnabled: false},
		},
	}
	runner := &recordingRunner{}
	w := &ScheduleMatcher{
		Store:  store,
		Runner: runner,
		Now:    func() time.Time { return localTime(time.Wednesday, 9, 0) },
	}

	w.runOnce(context.Background())

	if len(runner.ran) != 1 || runner.ran[0] != "enabled" {
		t.Errorf("expected only the enabled user's 09:00 schedule to fire, got %v", runner.ran)
	}
}

func TestRunOnceContinuesAfterRunError(t *testing.T) {
	store := &matcherStore{
		schedules: []model.Schedule{
			{UserID: "first", Time: "09:00", Frequency: model.FrequencyDaily},
			{UserID: "second", Time: "09:00", Frequency: model.FrequencyDaily},
		},
		users: map[string]*model.User{
			"first":  {ID: "first", AutopilotEnabled: true},
			"second": {ID: "second", AutopilotEnabled: true},
		},
	}
	runner := &recordingRunner{errs: map[string]error{"first": errors.New("persistence failure")}}
	w := &ScheduleMatcher{
		Store:  store,
		Runner: runner,
		Now:    func() time.Time { return localTime(time.Wednesday, 9, 0) },
	}

	w.runOnce(context.Background())

	if len(runner.ran) != 2 {
		t.Errorf("a failing run must not stop the remaining schedules, got %v", runner.ran)
	}
}

func TestMatcherTimezoneApplied(t *testing.T) {
	jst := time.FixedZone("jst", 9*3600)
	store := &matcherStore{
		schedules: []model.Schedule{{UserID: "u", Time: "09:00", Frequency: model.FrequencyDaily}},
		users:     map[string]*model.User{"u": {ID: "u", AutopilotEnabled: true}},
	}
	runner := &recordingRunner{}
	w := &ScheduleMatcher{
		Store:    store,
		Runner:   runner,
		Location: jst,
		// 00:00 UTC is 09:00 JST.
		Now: func() time.Time { return time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC) },
	}

	w.runOnce(context.Background())

	if len(runner.ran) != 1 {
		t.Errorf("schedule must match in the configured zone, got %v", runner.ran)
	}
}
