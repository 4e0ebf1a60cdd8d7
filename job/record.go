package job

import "time"

// Record is the persisted state of one scheduled run plus revision.
type Record struct {
	// PartitionKey groups all runs of one job type and version.
	PartitionKey string `json:"partition_key"`

	// RowKey uniquely identifies this run plus revision within the
	// partition. Derived from the run date, so it doubles as the job id.
	RowKey string `json:"row_key"`

	// Revision disambiguates re-attempts of the same logical run.
	Revision int `json:"revision"`

	// Inputs is the encoded Inputs snapshot.
	Inputs []byte `json:"inputs"`

	// States is the encoded States snapshot.
	States []byte `json:"states"`

	// Status is the lifecycle state. New records start pending.
	Status Status `json:"status"`

	// CreateTime and UpdateTime are UTC and equal at creation. Only the
	// external execution engine moves UpdateTime afterwards.
	CreateTime time.Time `json:"create_time"`
	UpdateTime time.Time `json:"update_time"`
}
