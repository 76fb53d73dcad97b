package evo

// CarSnapshot is the read-only per-car view exposed after each tick: enough
// for a host to draw the car and its sensor rays.
type CarSnapshot struct {
	ID      int
	X, Y    float64
	Heading float64
	Alive   bool
	Fitness float64
	Radars  [NumSensors]Radar
}

// Snapshot is the read-only aggregate view of the simulation, taken at a tick
// boundary. It shares no mutable storage with the engine.
type Snapshot struct {
	State          State
	Generation     int
	MaxGenerations int
	Tick           int
	TickBudget     int
	AliveCount     int
	PopulationSize int
	BestFitness    float64
	Cars           []CarSnapshot
}

// Snapshot captures the current presentation state. Hosts render from this
// and never reach into the engine's own structures.
func (s *Simulation) Snapshot() Snapshot {
	cars := make([]CarSnapshot, len(s.pop.Cars))
	for i, c := range s.pop.Cars {
		cars[i] = CarSnapshot{
			ID:      c.ID,
			X:       c.X,
			Y:       c.Y,
			Heading: c.Heading,
			Alive:   c.Alive,
			Fitness: c.Fitness,
			Radars:  c.Radars,
		}
	}
	return Snapshot{
		State:          s.state,
		Generation:     s.run.Generation,
		MaxGenerations: s.cfg.Simulation.MaxGenerations,
		Tick:           s.ticks,
		TickBudget:     s.cfg.Simulation.TickBudget,
		AliveCount:     s.pop.AliveCount(),
		PopulationSize: len(s.pop.Cars),
		BestFitness:    s.run.BestFitness,
		Cars:           cars,
	}
}
