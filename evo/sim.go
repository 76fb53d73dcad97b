package evo

import "math/rand"

// State is the lifecycle of the simulation loop.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateEnded
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// GenerationSummary reports a finished generation: how it ended and the
// fitness it produced. BestBrain is a clone of the top-ranked controller and
// shares no storage with the population.
type GenerationSummary struct {
	Generation  int
	Ticks       int
	Survivors   int
	BestFitness float64
	MeanFitness float64
	BestBrain   *Brain
}

// Simulation drives the evolutionary run one tick at a time. The host owns
// the clock: Step advances exactly one tick and returns, so rendering and
// input polling happen between ticks, never inside one. All per-tick work is
// pure computation against the World oracle.
type Simulation struct {
	cfg   *Config
	world World
	rng   *rand.Rand
	start Pose

	run   Run
	pop   *Population
	ticks int
	state State
	skip  bool
}

// NewSimulation validates the configuration and seeds the first generation
// with random brains.
func NewSimulation(cfg *Config, world World, start Pose, rng *rand.Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{
		cfg:   cfg,
		world: world,
		rng:   rng,
		start: start,
	}
	if err := s.beginGeneration(nil); err != nil {
		return nil, err
	}
	return s, nil
}

// beginGeneration constructs the next population and resets the tick counter.
// Passing nil brains seeds a fresh random generation.
func (s *Simulation) beginGeneration(brains []*Brain) error {
	pop, err := NewPopulation(s.cfg, s.start, brains, s.rng)
	if err != nil {
		return err
	}
	s.run.Generation++
	s.pop = pop
	s.ticks = 0
	s.skip = false
	s.state = StateRunning
	return nil
}

// Step advances the simulation by exactly one tick. While paused or after the
// run has ended it performs no work. Every alive car completes its full
// update (move, collision check, sense, decide) within the tick, in stable
// population order. Step returns a non-nil summary on the tick that finishes
// a generation; selection and the hand-off to the next generation have
// already happened by the time it returns.
func (s *Simulation) Step() (*GenerationSummary, error) {
	if s.state != StateRunning {
		return nil, nil
	}
	if s.skip {
		// Skip signal observed at the tick boundary: end the generation now,
		// selecting on whatever fitness has accrued so far.
		return s.endGeneration()
	}

	s.ticks++
	for _, car := range s.pop.Cars {
		if !car.Alive {
			continue
		}
		car.Step(s.world, s.cfg)
		// Fitness accrued on the tick a car dies still counts.
		s.run.Observe(car.Fitness)
	}

	if s.ticks >= s.cfg.Simulation.TickBudget || s.pop.AliveCount() == 0 {
		return s.endGeneration()
	}
	return nil, nil
}

// endGeneration summarizes the finished population, runs selection and seeds
// the next generation. After the final generation the run ends instead; only
// Restart revives it.
func (s *Simulation) endGeneration() (*GenerationSummary, error) {
	summary := s.summarize()
	s.skip = false

	if s.run.Generation >= s.cfg.Simulation.MaxGenerations {
		s.state = StateEnded
		return summary, nil
	}

	brains := NextGeneration(s.pop.Cars, s.cfg, s.rng)
	if err := s.beginGeneration(brains); err != nil {
		return summary, err
	}
	return summary, nil
}

func (s *Simulation) summarize() *GenerationSummary {
	fitnesses := make([]float64, len(s.pop.Cars))
	for i, c := range s.pop.Cars {
		fitnesses[i] = c.Fitness
	}
	ranked := Rank(s.pop.Cars, s.cfg.Selection.DistanceWeight)
	return &GenerationSummary{
		Generation:  s.run.Generation,
		Ticks:       s.ticks,
		Survivors:   s.pop.AliveCount(),
		BestFitness: MaxFloat(fitnesses),
		MeanFitness: Mean(fitnesses),
		BestBrain:   ranked[0].Brain.Clone(),
	}
}

// TogglePause flips between running and paused. Pausing takes effect at the
// tick boundary; a paused simulation performs no work until resumed.
func (s *Simulation) TogglePause() {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
	case StatePaused:
		s.state = StateRunning
	}
}

// SkipGeneration requests that the current generation end at the next tick
// boundary. Accrued fitness still feeds selection.
func (s *Simulation) SkipGeneration() {
	if s.state == StateEnded {
		return
	}
	s.skip = true
}

// Restart discards the generation in progress and reinitializes the whole
// run: the generation counter and best-fitness watermark reset and a fresh
// random population takes over.
func (s *Simulation) Restart() error {
	s.run = Run{}
	s.skip = false
	return s.beginGeneration(nil)
}

// State returns the current loop state.
func (s *Simulation) State() State {
	return s.state
}

// Generation returns the current generation index.
func (s *Simulation) Generation() int {
	return s.run.Generation
}

// BestFitness returns the best fitness ever observed in this run.
func (s *Simulation) BestFitness() float64 {
	return s.run.BestFitness
}
