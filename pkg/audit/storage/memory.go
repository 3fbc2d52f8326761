package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"vindex-hq/vindex/pkg/audit"
)

// MemoryBackend implements audit.Backend with in-process storage.
// It is intended for tests and deployments where durability is not
// required.
type MemoryBackend struct {
	mu      sync.RWMutex
	records []*audit.Record
	closed  bool
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Save persists an audit record.
func (m *MemoryBackend) Save(_ context.Context, record *audit.Record) error {
	if record == nil {
		return fmt.Errorf("record cannot be nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("backend is closed")
	}

	// Copy so later caller mutations don't alias stored state.
	stored := *record
	m.records = append(m.records, &stored)
	return nil
}

// Query retrieves audit records matching the query filters, newest first.
func (m *MemoryBackend) Query(_ context.Context, query *audit.Query) ([]*audit.Record, error) {
	if query == nil {
		query = &audit.Query{}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, fmt.Errorf("backend is closed")
	}

	matched := make([]*audit.Record, 0)
	for _, r := range m.records {
		if matches(r, query) {
			dup := *r
			matched = append(matched, &dup)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return paginate(matched, query), nil
}

// Count returns the number of records matching the query filters.
func (m *MemoryBackend) Count(_ context.Context, query *audit.Query) (int64, error) {
	if query == nil {
		query = &audit.Query{}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return 0, fmt.Errorf("backend is closed")
	}

	var count int64
	for _, r := range m.records {
		if matches(r, query) {
			count++
		}
	}
	return count, nil
}

// DeleteOlderThan removes records created before the cutoff.
func (m *MemoryBackend) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, fmt.Errorf("backend is closed")
	}

	kept := m.records[:0]
	var deleted int64
	for _, r := range m.records {
		if r.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	m.records = kept
	return deleted, nil
}

// Close marks the backend as closed.
func (m *MemoryBackend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.records = nil
	return nil
}

// matches reports whether a record passes all query filters.
func matches(r *audit.Record, q *audit.Query) bool {
	if q.StartTime != nil && r.CreatedAt.Before(*q.StartTime) {
		return false
	}
	if q.EndTime != nil && r.CreatedAt.After(*q.EndTime) {
		return false
	}
	if q.WMI != "" && r.WMI != q.WMI {
		return false
	}
	if q.Source != "" && r.Source != q.Source {
		return false
	}
	if q.ValidChecksum != nil && r.ValidChecksum != *q.ValidChecksum {
		return false
	}
	return true
}

// paginate applies limit and offset to a sorted result set.
func paginate(records []*audit.Record, q *audit.Query) []*audit.Record {
	offset := q.Offset
	if offset > len(records) {
		return []*audit.Record{}
	}
	records = records[offset:]

	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit < len(records) {
		records = records[:limit]
	}
	return records
}
