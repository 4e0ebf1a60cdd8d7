// Package id derives the deterministic identifiers for batch run records.
//
// A partition key groups every run of one job type and version. A row key
// identifies one run plus revision within that partition. Both are pure
// functions of their inputs: identical inputs always yield identical keys.
// External create-if-absent deduplication relies on that determinism.
package id

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

// Offsets are the fixed values added to the job version and the revision
// when forming identifiers. They are threaded through explicitly so tests
// can substitute alternates without mutating shared state.
type Offsets struct {
	// Version is added to the job version in the partition key.
	Version int

	// Revision is added to the revision in the row key.
	Revision int
}

// DefaultOffsets returns the offsets applied uniformly across the system.
func DefaultOffsets() Offsets {
	return Offsets{Version: 100, Revision: 1}
}

// Deriver derives partition and row keys from job identity fields.
// The zero value applies zero offsets; construct with NewDeriver.
type Deriver struct {
	offsets Offsets
}

// NewDeriver returns a Deriver applying the given offsets.
func NewDeriver(offsets Offsets) Deriver {
	return Deriver{offsets: offsets}
}

// PartitionKey returns the identifier grouping all runs of one job type
// and version, in the form "{jobType}_{jobVersion+offset}".
func (d Deriver) PartitionKey(jobType string, jobVersion int) string {
	return fmt.Sprintf("%s_%d", jobType, jobVersion+d.offsets.Version)
}

// RowKey returns the identifier unique to one run plus revision, in the
// form "{runDate}_{revision+offset}_{partitionKey}". The run date is
// rendered in UTC using the strftime pattern dateFormat, so the pattern
// controls run-identifier granularity (the default "%Y%m%d" makes the
// row key unique per calendar day).
func (d Deriver) RowKey(jobType string, jobVersion int, runDate time.Time, revision int, dateFormat string) (string, error) {
	formatted, err := strftime.Format(dateFormat, runDate.UTC())
	if err != nil {
		return "", fmt.Errorf("id: format run date with %q: %w", dateFormat, err)
	}
	return fmt.Sprintf("%s_%d_%s", formatted, revision+d.offsets.Revision, d.PartitionKey(jobType, jobVersion)), nil
}
