package settings

import (
	"fmt"
	"time"

	"github.com/xraph/batch/id"
	"github.com/xraph/batch/job"
)

// RecordFactory builds the initial persisted record for one run of a job.
// It performs no I/O; the caller hands the record to a store.
type RecordFactory struct {
	deriver id.Deriver
	codec   job.Codec
}

// NewRecordFactory creates a RecordFactory deriving identifiers with the
// given offsets. A nil codec falls back to job.DefaultCodec().
func NewRecordFactory(offsets id.Offsets, codec job.Codec) *RecordFactory {
	if codec == nil {
		codec = job.DefaultCodec()
	}
	return &RecordFactory{deriver: id.NewDeriver(offsets), codec: codec}
}

// NewRecord builds the pending record for one run plus revision of s.
//
// A zero runDate substitutes the current UTC instant. Identifiers derived
// from that substitute are not reproducible, so callers that depend on
// create-if-absent deduplication must pass the run date explicitly.
func (f *RecordFactory) NewRecord(s *Settings, revision int, runDate time.Time) (*job.Record, error) {
	if runDate.IsZero() {
		runDate = time.Now().UTC()
	}

	inputs, err := f.codec.Encode(&job.Inputs{
		RunDate:         runDate,
		BatchSize:       s.BatchSize,
		ProcessInterval: s.ProcessInterval.Seconds(),
	})
	if err != nil {
		return nil, fmt.Errorf("settings: encode inputs: %w", err)
	}
	states, err := f.codec.Encode(&job.States{})
	if err != nil {
		return nil, fmt.Errorf("settings: encode states: %w", err)
	}

	rowKey, err := f.deriver.RowKey(s.JobType, s.JobVersion, runDate, revision, s.DateFormat)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &job.Record{
		PartitionKey: f.deriver.PartitionKey(s.JobType, s.JobVersion),
		RowKey:       rowKey,
		Revision:     revision,
		Inputs:       inputs,
		States:       states,
		Status:       job.StatusPending,
		CreateTime:   now,
		UpdateTime:   now,
	}, nil
}
