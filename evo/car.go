package evo

import "math"

// Pose is a position plus heading in the world's screen coordinates
// (y grows downward, heading in degrees, 0 pointing along +x and growing
// counterclockwise on screen).
type Pose struct {
	X, Y    float64
	Heading float64
}

// Car is one simulated vehicle: a pose, accumulated fitness and distance, an
// exclusively-owned brain, and the most recent radar readings. The alive flag
// is monotonic; once a car dies it never updates again.
type Car struct {
	ID      int
	X, Y    float64
	Heading float64
	Alive   bool

	Fitness  float64
	Distance float64

	Brain  *Brain
	Radars [NumSensors]Radar
}

// NewCar places a car at the start pose with the given brain.
func NewCar(id int, start Pose, brain *Brain) *Car {
	return &Car{
		ID:      id,
		X:       start.X,
		Y:       start.Y,
		Heading: start.Heading,
		Alive:   true,
		Brain:   brain,
	}
}

// Step advances the car by one tick: move at constant speed along the
// heading, accrue distance and the per-tick reward, re-check collision at the
// new center, and — if still alive — refresh the sensors and apply the
// brain's steering decisions. A dead car's Step is a no-op.
func (c *Car) Step(w World, cfg *Config) {
	if !c.Alive {
		return
	}

	sin, cos := math.Sincos(c.Heading * math.Pi / 180)
	c.X += cos * cfg.Car.Speed
	c.Y -= sin * cfg.Car.Speed

	c.Distance += cfg.Car.Speed
	c.Fitness += cfg.Car.TickReward

	// Collision is not an error, it is the expected terminal transition.
	if !w.Drivable(int(c.X), int(c.Y)) {
		c.Alive = false
		return
	}

	out := c.Brain.Forward(c.sense(w, &cfg.Sensors))
	if out[0] > cfg.Car.SteerThreshold {
		c.Heading += cfg.Car.TurnStep
	}
	if out[1] > cfg.Car.SteerThreshold {
		c.Heading -= cfg.Car.TurnStep
	}
}

// sense refreshes the radar readings and returns them normalized to [0, 1],
// where 1.0 means no obstacle detected within range.
func (c *Car) sense(w World, cfg *SensorConfig) [BrainInputs]float64 {
	var inputs [BrainInputs]float64
	for i, offset := range SensorAngles {
		c.Radars[i] = castRay(w, c.X, c.Y, c.Heading, offset, cfg)
		inputs[i] = c.Radars[i].Distance / cfg.MaxRange
	}
	return inputs
}

// Score is the effective fitness used for ranking: driven distance
// contributes a small bonus on top of the per-tick reward.
func (c *Car) Score(distanceWeight float64) float64 {
	return c.Fitness + c.Distance*distanceWeight
}
