// Package memory provides a fully in-memory implementation of the record
// store boundary. Safe for concurrent access. Intended for unit testing
// and development; production backends live outside this library.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xraph/batch"
	"github.com/xraph/batch/job"
)

var _ job.Store = (*Store)(nil)

// Store keeps run records in a map keyed by (PartitionKey, RowKey).
type Store struct {
	mu      sync.RWMutex
	records map[recordKey]*job.Record
}

type recordKey struct {
	partition string
	row       string
}

// New returns a new empty Store.
func New() *Store {
	return &Store{records: make(map[recordKey]*job.Record)}
}

// CreateRecord persists a new record. A record already stored under the
// same keys is left intact and batch.ErrRecordExists is returned.
func (m *Store) CreateRecord(_ context.Context, r *job.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := recordKey{partition: r.PartitionKey, row: r.RowKey}
	if _, exists := m.records[key]; exists {
		return batch.ErrRecordExists
	}
	cp := *r
	m.records[key] = &cp
	return nil
}

// GetRecord retrieves a record by key.
func (m *Store) GetRecord(_ context.Context, partitionKey, rowKey string) (*job.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[recordKey{partition: partitionKey, row: rowKey}]
	if !ok {
		return nil, batch.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

// UpdateRecord persists changes to an existing record.
func (m *Store) UpdateRecord(_ context.Context, r *job.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := recordKey{partition: r.PartitionKey, row: r.RowKey}
	if _, ok := m.records[key]; !ok {
		return batch.ErrRecordNotFound
	}
	cp := *r
	m.records[key] = &cp
	return nil
}

// ListRecords returns all records in a partition, ordered by RowKey.
func (m *Store) ListRecords(_ context.Context, partitionKey string) ([]*job.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*job.Record, 0)
	for key, r := range m.records {
		if key.partition != partitionKey {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RowKey < out[j].RowKey })
	return out, nil
}

// DeleteRecordsBefore removes records created before the cutoff and
// returns how many were removed.
func (m *Store) DeleteRecordsBefore(_ context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key, r := range m.records {
		if r.CreateTime.Before(cutoff) {
			delete(m.records, key)
			removed++
		}
	}
	return removed, nil
}
