// Package stats records per-generation results of an evolutionary run, so
// headless runs can be inspected and compared after the fact.
package stats

import "context"

// GenerationRecord is one finished generation of one run. BestBrain is the
// encoded controller of the top-ranked car, suitable for evo.DecodeBrain.
type GenerationRecord struct {
	RunID       string
	Generation  int
	Ticks       int
	Survivors   int
	BestFitness float64
	MeanFitness float64
	BestBrain   []byte
}

// Recorder persists generation records. Implementations must tolerate
// re-recording the same (run, generation) pair; the latest write wins.
type Recorder interface {
	Init(ctx context.Context) error
	RecordGeneration(ctx context.Context, rec GenerationRecord) error
	History(ctx context.Context, runID string) ([]GenerationRecord, error)
	Close() error
}
