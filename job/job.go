package job

import (
	"context"
	"time"
)

// Status represents the lifecycle state of a run record.
type Status string

const (
	// StatusPending means the run is waiting to be picked up by the
	// execution engine.
	StatusPending Status = "pending"
	// StatusRunning means the execution engine is processing the run.
	StatusRunning Status = "running"
	// StatusCompleted means the run finished successfully.
	StatusCompleted Status = "completed"
	// StatusFailed means the run failed and will not be re-attempted
	// under the same revision.
	StatusFailed Status = "failed"
	// StatusCancelled means the run was explicitly cancelled.
	StatusCancelled Status = "cancelled"
)

// Job is the capability contract a pluggable job implementation satisfies.
// The external execution engine constructs one through its Factory, decodes
// the record's snapshots, and invokes Run.
type Job interface {
	Run(ctx context.Context, in *Inputs, st *States) error
}

// Factory constructs a fresh Job instance. Factories are registered in a
// capability registry and bound to settings by dotted identifier.
type Factory func() Job

// Inputs is the per-run input snapshot encoded into a record. Field names
// and wire types are fixed across releases; ProcessInterval is carried as
// float seconds.
type Inputs struct {
	RunDate         time.Time `msgpack:"run_date" json:"run_date"`
	BatchSize       int       `msgpack:"batch_size" json:"batch_size"`
	ProcessInterval float64   `msgpack:"process_interval" json:"process_interval"`
}

// States is the progress snapshot encoded into a record. A new record
// starts from the zero value; the execution engine rewrites it as the run
// advances.
type States struct {
	LastProcessed string `msgpack:"last_processed" json:"last_processed"`
	Processed     int64  `msgpack:"processed_count" json:"processed_count"`
	Skipped       int64  `msgpack:"skipped_count" json:"skipped_count"`
}
