package rng

import (
	"math/rand"
	"time"
)

// Roller provides the randomness used by shuffles and AI decisions.
// Tests supply a fixed seed to make outcomes deterministic.
type Roller interface {
	// Intn returns a uniform value in [0, n)
	Intn(n int) int

	// Float64 returns a uniform value in [0.0, 1.0)
	Float64() float64

	// Shuffle randomizes the order of n elements via swap
	Shuffle(n int, swap func(i, j int))
}

// Config for the default roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// defaultRoller implements Roller using math/rand
type defaultRoller struct {
	random *rand.Rand
}

// New creates a new roller, seeded from the config or the current time
func New(cfg *Config) *defaultRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &defaultRoller{
		random: rand.New(source),
	}
}

// Intn returns a uniform value in [0, n)
func (r *defaultRoller) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return r.random.Intn(n)
}

// Float64 returns a uniform value in [0.0, 1.0)
func (r *defaultRoller) Float64() float64 {
	return r.random.Float64()
}

// Shuffle randomizes the order of n elements via swap
func (r *defaultRoller) Shuffle(n int, swap func(i, j int)) {
	r.random.Shuffle(n, swap)
}
