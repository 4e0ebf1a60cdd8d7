package job

import (
	"context"
	"time"
)

// Store defines the persistence contract for run records. Backends index
// records by (PartitionKey, RowKey). This package ships no backend beyond
// the in-memory reference in store/memory; production implementations are
// external.
type Store interface {
	// CreateRecord persists a new record. It is create-if-absent: a record
	// already stored under the same (PartitionKey, RowKey) is left intact
	// and batch.ErrRecordExists is returned. Callers rely on this together
	// with deterministic key derivation to deduplicate runs.
	CreateRecord(ctx context.Context, r *Record) error

	// GetRecord retrieves a record by key. Returns batch.ErrRecordNotFound
	// if absent.
	GetRecord(ctx context.Context, partitionKey, rowKey string) (*Record, error)

	// UpdateRecord persists changes to an existing record. Returns
	// batch.ErrRecordNotFound if absent.
	UpdateRecord(ctx context.Context, r *Record) error

	// ListRecords returns all records in a partition, ordered by RowKey.
	ListRecords(ctx context.Context, partitionKey string) ([]*Record, error)

	// DeleteRecordsBefore removes records created before the cutoff and
	// returns how many were removed. The external retention sweep computes
	// the cutoff from the settings' expire hours.
	DeleteRecordsBefore(ctx context.Context, cutoff time.Time) (int, error)
}
