package stats

import (
	"context"
	"sort"
	"sync"
)

type generationKey struct {
	runID      string
	generation int
}

// MemoryRecorder keeps records in process memory. It backs tests and runs
// that do not need persistence.
type MemoryRecorder struct {
	mu      sync.Mutex
	records map[generationKey]GenerationRecord
}

// NewMemoryRecorder creates an empty in-memory recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{records: make(map[generationKey]GenerationRecord)}
}

// Init is a no-op for the in-memory recorder.
func (m *MemoryRecorder) Init(ctx context.Context) error {
	return nil
}

// RecordGeneration stores a record, replacing any previous record of the same
// run and generation.
func (m *MemoryRecorder) RecordGeneration(ctx context.Context, rec GenerationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[generationKey{rec.RunID, rec.Generation}] = rec
	return nil
}

// History returns a run's records in generation order.
func (m *MemoryRecorder) History(ctx context.Context, runID string) ([]GenerationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []GenerationRecord
	for key, rec := range m.records {
		if key.runID == runID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Generation < out[j].Generation })
	return out, nil
}

// Close is a no-op for the in-memory recorder.
func (m *MemoryRecorder) Close() error {
	return nil
}
