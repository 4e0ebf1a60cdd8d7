package settings_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xraph/batch"
	"github.com/xraph/batch/capability"
	"github.com/xraph/batch/job"
	"github.com/xraph/batch/settings"
)

type ingestJob struct{}

func (ingestJob) Run(_ context.Context, _ *job.Inputs, _ *job.States) error { return nil }

func newCaps() *capability.Registry {
	caps := capability.NewRegistry()
	caps.RegisterStatic("pipelines.ingest", map[string]job.Factory{
		"Ingest": func() job.Job { return ingestJob{} },
	})
	return caps
}

func TestResolveDefaults(t *testing.T) {
	t.Parallel()

	s, err := settings.Resolve(map[string]any{
		"job_class": "pipelines.ingest.Ingest",
		"job_type":  "ingest",
	}, newCaps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Schedule != nil || s.ScheduleExpr != "" {
		t.Errorf("Schedule = %v (%q), want unconstrained", s.Schedule, s.ScheduleExpr)
	}
	if s.DateFormat != "%Y%m%d" {
		t.Errorf("DateFormat = %q, want %q", s.DateFormat, "%Y%m%d")
	}
	if s.MaxFailures != 20 {
		t.Errorf("MaxFailures = %d, want 20", s.MaxFailures)
	}
	if s.MaxConsecutiveFailures != 5 {
		t.Errorf("MaxConsecutiveFailures = %d, want 5", s.MaxConsecutiveFailures)
	}
	if s.ExpireHours != 24 {
		t.Errorf("ExpireHours = %d, want 24", s.ExpireHours)
	}
	if s.BatchSize != 1000 {
		t.Errorf("BatchSize = %d, want 1000", s.BatchSize)
	}
	if s.ProcessInterval != 0 {
		t.Errorf("ProcessInterval = %v, want 0", s.ProcessInterval)
	}
	if s.JobVersion != 1 {
		t.Errorf("JobVersion = %d, want 1", s.JobVersion)
	}
	if s.RequireLock {
		t.Error("RequireLock = true, want false")
	}
	if s.JobType != "ingest" {
		t.Errorf("JobType = %q, want %q", s.JobType, "ingest")
	}
	if s.JobClass == nil {
		t.Fatal("JobClass is nil")
	}
	if _, ok := s.JobClass().(ingestJob); !ok {
		t.Errorf("JobClass produced %T, want ingestJob", s.JobClass())
	}
}

func TestResolveFullConfiguration(t *testing.T) {
	t.Parallel()

	s, err := settings.Resolve(map[string]any{
		"job_class":                   "pipelines.ingest.Ingest",
		"job_type":                    "ingest",
		"job_schedule":                "0 9 * * *",
		"date_format":                 "%Y%m%d%H",
		"max_failures":                3,
		"max_consecutive_failures":    2,
		"expire_hours":                48,
		"batch_size":                  "250",
		"process_interval_in_seconds": "1.5",
		"require_lock":                "true",
		"job_version":                 7,
	}, newCaps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Schedule == nil {
		t.Fatal("Schedule is nil, want parsed cron schedule")
	}
	// 08:00 on a Monday schedules for 09:00 the same day.
	from := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	if next := s.Schedule.Next(from); next.Hour() != 9 || next.Day() != 4 {
		t.Errorf("Schedule.Next(%v) = %v, want 09:00 same day", from, next)
	}
	if s.ScheduleExpr != "0 9 * * *" {
		t.Errorf("ScheduleExpr = %q, want %q", s.ScheduleExpr, "0 9 * * *")
	}
	if s.DateFormat != "%Y%m%d%H" {
		t.Errorf("DateFormat = %q, want %q", s.DateFormat, "%Y%m%d%H")
	}
	if s.MaxFailures != 3 || s.MaxConsecutiveFailures != 2 {
		t.Errorf("failure thresholds = (%d, %d), want (3, 2)", s.MaxFailures, s.MaxConsecutiveFailures)
	}
	if s.ExpireHours != 48 {
		t.Errorf("ExpireHours = %d, want 48", s.ExpireHours)
	}
	if s.BatchSize != 250 {
		t.Errorf("BatchSize = %d, want 250", s.BatchSize)
	}
	if want := 1500 * time.Millisecond; s.ProcessInterval != want {
		t.Errorf("ProcessInterval = %v, want %v", s.ProcessInterval, want)
	}
	if !s.RequireLock {
		t.Error("RequireLock = false, want true")
	}
	if s.JobVersion != 7 {
		t.Errorf("JobVersion = %d, want 7", s.JobVersion)
	}
}

func TestResolveMissingRequiredKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"no job_class", map[string]any{"job_type": "ingest"}},
		{"nil job_class", map[string]any{"job_class": nil, "job_type": "ingest"}},
		{"no job_type", map[string]any{"job_class": "pipelines.ingest.Ingest"}},
		{"empty job_type", map[string]any{"job_class": "pipelines.ingest.Ingest", "job_type": ""}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := settings.Resolve(tt.raw, newCaps())
			if !errors.Is(err, batch.ErrMissingSetting) {
				t.Errorf("Resolve = %v, want ErrMissingSetting", err)
			}
		})
	}
}

func TestResolveInvalidValues(t *testing.T) {
	t.Parallel()

	base := func(overrides map[string]any) map[string]any {
		raw := map[string]any{
			"job_class": "pipelines.ingest.Ingest",
			"job_type":  "ingest",
		}
		for k, v := range overrides {
			raw[k] = v
		}
		return raw
	}

	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"non-numeric batch_size", base(map[string]any{"batch_size": "many"})},
		{"negative max_failures", base(map[string]any{"max_failures": -1})},
		{"negative interval", base(map[string]any{"process_interval_in_seconds": -0.5})},
		{"non-boolean require_lock", base(map[string]any{"require_lock": "sometimes"})},
		{"malformed schedule", base(map[string]any{"job_schedule": "every tuesday"})},
		{"malformed date_format", base(map[string]any{"date_format": "%Q"})},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := settings.Resolve(tt.raw, newCaps())
			if !errors.Is(err, batch.ErrInvalidSetting) {
				t.Errorf("Resolve = %v, want ErrInvalidSetting", err)
			}
		})
	}
}

func TestResolveUnresolvableJobClass(t *testing.T) {
	t.Parallel()

	_, err := settings.Resolve(map[string]any{
		"job_class": "pipelines.ingest.Missing",
		"job_type":  "ingest",
	}, newCaps())
	if !errors.Is(err, batch.ErrCapabilityNotFound) {
		t.Errorf("Resolve = %v, want ErrCapabilityNotFound", err)
	}

	_, err = settings.Resolve(map[string]any{
		"job_class": "nodots",
		"job_type":  "ingest",
	}, newCaps())
	if !errors.Is(err, batch.ErrMalformedIdentifier) {
		t.Errorf("Resolve = %v, want ErrMalformedIdentifier", err)
	}
}
