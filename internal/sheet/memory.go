package sheet

import (
	"context"
	"sync"

	"github.com/dukaforge/opsboard/pkg/types"
)

// Memory is an in-process store. It is the default backend for ad-hoc runs
// and the test double for every package that takes a Store.
type Memory struct {
	mu     sync.Mutex
	tables map[string]types.RecordSet

	// ReadErr and WriteErr, when set, are returned by the corresponding
	// operation. Used by tests to exercise the failure paths.
	ReadErr  error
	WriteErr error
}

// NewMemory returns an empty in-process store.
func NewMemory() *Memory {
	return &Memory{tables: make(map[string]types.RecordSet)}
}

// Seed replaces the named worksheet without going through Write, bypassing
// any injected WriteErr.
func (m *Memory) Seed(table string, rs types.RecordSet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[table] = rs.Clone()
}

// Read returns a deep copy of the named worksheet. A missing worksheet reads
// as empty, matching a spreadsheet backend that lazily creates sheets.
func (m *Memory) Read(ctx context.Context, table string) (types.RecordSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return types.RecordSet{}, m.ReadErr
	}
	return m.tables[table].Clone(), nil
}

// Write overwrites the named worksheet. Row refs are dropped.
func (m *Memory) Write(ctx context.Context, table string, rs types.RecordSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	clean := rs.Clone()
	for i := range clean.Records {
		clean.Records[i].Ref = types.RowRef{}
	}
	m.tables[table] = clean
	return nil
}
