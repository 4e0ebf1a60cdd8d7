package settings

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
	cronlib "github.com/robfig/cron/v3"
	"github.com/spf13/cast"

	"github.com/xraph/batch"
	"github.com/xraph/batch/capability"
	"github.com/xraph/batch/job"
)

// Defaults applied by Resolve when the corresponding key is absent.
const (
	DefaultDateFormat             = "%Y%m%d"
	DefaultMaxFailures            = 20
	DefaultMaxConsecutiveFailures = 5
	DefaultExpireHours            = 24
	DefaultBatchSize              = 1000
	DefaultJobVersion             = 1
)

// cronParser supports standard 5-field cron and descriptors like "@daily".
var cronParser = cronlib.NewParser(
	cronlib.Minute | cronlib.Hour | cronlib.Dom | cronlib.Month | cronlib.Dow | cronlib.Descriptor,
)

// Settings is the resolved, typed configuration for one job type and
// version. It is constructed once at resolution and treated as immutable
// afterwards; one Settings value produces many run records over time.
type Settings struct {
	// Schedule is the parsed recurrence rule the external scheduler
	// evaluates. Nil means unconstrained.
	Schedule cronlib.Schedule

	// ScheduleExpr is the raw expression Schedule was parsed from.
	ScheduleExpr string

	// DateFormat is the strftime pattern controlling run-identifier
	// granularity.
	DateFormat string

	// MaxFailures and MaxConsecutiveFailures are failure thresholds
	// enforced by the external execution engine.
	MaxFailures            int
	MaxConsecutiveFailures int

	// ExpireHours is the retention window consumed by the external sweep.
	ExpireHours int

	// BatchSize is the unit of work per run.
	BatchSize int

	// ProcessInterval is the pause between processing steps.
	ProcessInterval time.Duration

	// JobClass constructs the job implementation bound through the
	// capability registry.
	JobClass job.Factory

	// JobType is the friendly name, stable across versions.
	JobType string

	// JobVersion increments on breaking changes to job semantics.
	JobVersion int

	// RequireLock is advisory data for the external execution engine.
	// This library neither acquires nor checks any lock.
	RequireLock bool
}

// Resolve converts a raw configuration map into Settings, binding
// "job_class" through caps. It is a pure function of the map and the
// registry's current bindings.
//
// Missing required keys fail with batch.ErrMissingSetting; coercion
// failures and negative numeric values with batch.ErrInvalidSetting;
// unresolvable job classes with the capability package's errors.
func Resolve(raw map[string]any, caps *capability.Registry) (*Settings, error) {
	identifier, err := requiredString(raw, "job_class")
	if err != nil {
		return nil, err
	}
	factory, err := caps.Resolve(identifier)
	if err != nil {
		return nil, err
	}

	jobType, err := requiredString(raw, "job_type")
	if err != nil {
		return nil, err
	}

	s := &Settings{JobClass: factory, JobType: jobType}

	if s.ScheduleExpr, err = stringValue(raw, "job_schedule", ""); err != nil {
		return nil, err
	}
	if s.ScheduleExpr != "" {
		sched, parseErr := cronParser.Parse(s.ScheduleExpr)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: job_schedule: %v", batch.ErrInvalidSetting, parseErr)
		}
		s.Schedule = sched
	}

	if s.DateFormat, err = stringValue(raw, "date_format", DefaultDateFormat); err != nil {
		return nil, err
	}
	// Validate the pattern eagerly so a bad format fails resolution, not
	// the first identifier derivation.
	if _, err := strftime.New(s.DateFormat); err != nil {
		return nil, fmt.Errorf("%w: date_format: %v", batch.ErrInvalidSetting, err)
	}

	if s.MaxFailures, err = intValue(raw, "max_failures", DefaultMaxFailures); err != nil {
		return nil, err
	}
	if s.MaxConsecutiveFailures, err = intValue(raw, "max_consecutive_failures", DefaultMaxConsecutiveFailures); err != nil {
		return nil, err
	}
	if s.ExpireHours, err = intValue(raw, "expire_hours", DefaultExpireHours); err != nil {
		return nil, err
	}
	if s.BatchSize, err = intValue(raw, "batch_size", DefaultBatchSize); err != nil {
		return nil, err
	}

	seconds, err := floatValue(raw, "process_interval_in_seconds", 0)
	if err != nil {
		return nil, err
	}
	s.ProcessInterval = time.Duration(seconds * float64(time.Second))

	if s.JobVersion, err = intValue(raw, "job_version", DefaultJobVersion); err != nil {
		return nil, err
	}
	if s.RequireLock, err = boolValue(raw, "require_lock", false); err != nil {
		return nil, err
	}

	return s, nil
}

func requiredString(raw map[string]any, key string) (string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: %s", batch.ErrMissingSetting, key)
	}
	str, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", batch.ErrInvalidSetting, key, err)
	}
	if str == "" {
		return "", fmt.Errorf("%w: %s", batch.ErrMissingSetting, key)
	}
	return str, nil
}

func stringValue(raw map[string]any, key, def string) (string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return def, nil
	}
	str, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", batch.ErrInvalidSetting, key, err)
	}
	return str, nil
}

func intValue(raw map[string]any, key string, def int) (int, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return def, nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", batch.ErrInvalidSetting, key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s must be non-negative, got %d", batch.ErrInvalidSetting, key, n)
	}
	return n, nil
}

func floatValue(raw map[string]any, key string, def float64) (float64, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return def, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", batch.ErrInvalidSetting, key, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("%w: %s must be non-negative, got %v", batch.ErrInvalidSetting, key, f)
	}
	return f, nil
}

func boolValue(raw map[string]any, key string, def bool) (bool, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return def, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", batch.ErrInvalidSetting, key, err)
	}
	return b, nil
}
