package batch

import "github.com/xraph/batch/id"

// Offsets are the fixed values applied to job version and revision when
// deriving identifiers.
type Offsets = id.Offsets

// Deriver derives partition and row keys for run records.
type Deriver = id.Deriver
