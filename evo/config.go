package evo

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config stores every tunable of the simulation. Values not present in the
// loaded file keep their defaults.
type Config struct {
	Simulation SimulationConfig
	Car        CarConfig
	Sensors    SensorConfig
	Mutation   MutationConfig
	Selection  SelectionConfig
	Track      TrackConfig
	Display    DisplayConfig
}

// SimulationConfig holds the generation-level parameters.
type SimulationConfig struct {
	PopulationSize int `ini:"population_size"`
	MaxGenerations int `ini:"max_generations"`
	TickBudget     int `ini:"tick_budget"`
}

// CarConfig holds the kinematic and reward parameters of a single car.
type CarConfig struct {
	Speed          float64 `ini:"speed"`           // units moved per tick, constant (no throttle)
	TurnStep       float64 `ini:"turn_step"`       // degrees rotated per firing steering output
	SteerThreshold float64 `ini:"steer_threshold"` // output level above which a steering decision fires
	TickReward     float64 `ini:"tick_reward"`     // flat fitness granted per surviving tick
}

// SensorConfig holds the ray-marching parameters of the distance sensors.
type SensorConfig struct {
	MaxRange float64 `ini:"max_range"` // maximum probe length in world units
	Step     float64 `ini:"step"`      // march increment in world units
}

// MutationConfig holds the offspring perturbation parameters.
type MutationConfig struct {
	Rate float64 `ini:"rate"` // per-value mutation probability
}

// SelectionConfig holds the ranking parameters of the generational selector.
type SelectionConfig struct {
	// DistanceWeight scales driven distance into the effective fitness score
	// used for ranking. It acts as a tie-break bonus, weighted far below the
	// per-tick reward.
	DistanceWeight float64 `ini:"distance_weight"`
}

// TrackConfig holds the oval circuit geometry, in pixels.
type TrackConfig struct {
	Width        int     `ini:"width"`
	Height       int     `ini:"height"`
	LaneWidth    float64 `ini:"lane_width"`
	OuterRadiusX float64 `ini:"outer_radius_x"`
	OuterRadiusY float64 `ini:"outer_radius_y"`
}

// DisplayConfig holds the windowed-host parameters.
type DisplayConfig struct {
	WindowTitle string `ini:"window_title"`
	TPS         int    `ini:"tps"`
}

// DefaultConfig returns the canonical configuration.
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			PopulationSize: 25,
			MaxGenerations: 50,
			TickBudget:     1200,
		},
		Car: CarConfig{
			Speed:          6.0,
			TurnStep:       5.0,
			SteerThreshold: 0.5,
			TickReward:     0.1,
		},
		Sensors: SensorConfig{
			MaxRange: 180,
			Step:     5,
		},
		Mutation: MutationConfig{
			Rate: 0.2,
		},
		Selection: SelectionConfig{
			DistanceWeight: 0.01,
		},
		Track: TrackConfig{
			Width:        1200,
			Height:       750,
			LaneWidth:    90,
			OuterRadiusX: 480,
			OuterRadiusY: 300,
		},
		Display: DisplayConfig{
			WindowTitle: "Evorace - Neural Racing",
			TPS:         60,
		},
	}
}

// LoadConfig loads configuration parameters from an INI file on top of the
// defaults, then validates the result.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := DefaultConfig()

	if err := cfg.Section("Simulation").MapTo(&config.Simulation); err != nil {
		return nil, fmt.Errorf("failed to map [Simulation] section: %w", err)
	}
	if err := cfg.Section("Car").MapTo(&config.Car); err != nil {
		return nil, fmt.Errorf("failed to map [Car] section: %w", err)
	}
	if err := cfg.Section("Sensors").MapTo(&config.Sensors); err != nil {
		return nil, fmt.Errorf("failed to map [Sensors] section: %w", err)
	}
	if err := cfg.Section("Mutation").MapTo(&config.Mutation); err != nil {
		return nil, fmt.Errorf("failed to map [Mutation] section: %w", err)
	}
	if err := cfg.Section("Selection").MapTo(&config.Selection); err != nil {
		return nil, fmt.Errorf("failed to map [Selection] section: %w", err)
	}
	if err := cfg.Section("Track").MapTo(&config.Track); err != nil {
		return nil, fmt.Errorf("failed to map [Track] section: %w", err)
	}
	if err := cfg.Section("Display").MapTo(&config.Display); err != nil {
		return nil, fmt.Errorf("failed to map [Display] section: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects inconsistent configurations up front so problems surface
// at construction rather than mid-generation.
func (c *Config) Validate() error {
	if c.Simulation.PopulationSize < MinPopulationSize {
		return fmt.Errorf("config error: population_size must be at least %d (the minimum elite count)", MinPopulationSize)
	}
	if c.Simulation.MaxGenerations <= 0 {
		return fmt.Errorf("config error: max_generations must be positive")
	}
	if c.Simulation.TickBudget <= 0 {
		return fmt.Errorf("config error: tick_budget must be positive")
	}
	if c.Car.Speed <= 0 {
		return fmt.Errorf("config error: speed must be positive")
	}
	if c.Car.TurnStep < 0 {
		return fmt.Errorf("config error: turn_step cannot be negative")
	}
	if c.Car.TickReward < 0 {
		return fmt.Errorf("config error: tick_reward cannot be negative")
	}
	if c.Sensors.MaxRange <= 0 {
		return fmt.Errorf("config error: sensor max_range must be positive")
	}
	if c.Sensors.Step <= 0 || c.Sensors.Step > c.Sensors.MaxRange {
		return fmt.Errorf("config error: sensor step must be in (0, max_range]")
	}
	if c.Mutation.Rate < 0 || c.Mutation.Rate > 1 {
		return fmt.Errorf("config error: mutation rate must be between 0 and 1")
	}
	if c.Selection.DistanceWeight < 0 {
		return fmt.Errorf("config error: distance_weight cannot be negative")
	}
	if c.Track.Width <= 0 || c.Track.Height <= 0 {
		return fmt.Errorf("config error: track dimensions must be positive")
	}
	if c.Track.LaneWidth <= 0 {
		return fmt.Errorf("config error: lane_width must be positive")
	}
	if c.Track.OuterRadiusX <= c.Track.LaneWidth || c.Track.OuterRadiusY <= c.Track.LaneWidth {
		return fmt.Errorf("config error: outer radii must exceed lane_width")
	}
	if 2*c.Track.OuterRadiusX >= float64(c.Track.Width) || 2*c.Track.OuterRadiusY >= float64(c.Track.Height) {
		return fmt.Errorf("config error: the oval does not fit inside the track canvas")
	}
	return nil
}
