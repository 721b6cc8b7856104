package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// IntRange returns a pseudo-random int in [minVal, maxVal].
func (r *RNG) IntRange(minVal, maxVal int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Intn(maxVal-minVal+1)
}

// Float64Range returns a pseudo-random float64 in [minVal, maxVal).
func (r *RNG) Float64Range(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// Pair returns two pseudo-random values in [minVal, maxVal).
// Locks only once per call.
func (r *RNG) Pair(minVal, maxVal float64) (float64, float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	return minVal + r.rand.Float64()*span, minVal + r.rand.Float64()*span
}

// Quad returns four pseudo-random values in [minVal, maxVal).
func (r *RNG) Quad(minVal, maxVal float64) (float64, float64, float64, float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	return minVal + r.rand.Float64()*span,
		minVal + r.rand.Float64()*span,
		minVal + r.rand.Float64()*span,
		minVal + r.rand.Float64()*span
}

// Floats returns n pseudo-random values in [minVal, maxVal).
func (r *RNG) Floats(n int, minVal, maxVal float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	out := make([]float64, n)
	for i := range out {
		out[i] = minVal + r.rand.Float64()*span
	}
	return out
}

// Ints returns n pseudo-random ints in [minVal, maxVal].
func (r *RNG) Ints(n int, minVal, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = minVal + r.rand.Intn(maxVal-minVal+1)
	}
	return out
}

// Angle returns a pseudo-random angle in [-π, π).
func (r *RNG) Angle() float64 {
	return r.Float64Range(-math.Pi, math.Pi)
}

// AxisAngle returns a random unit axis (drawn from a Gaussian, so the
// direction is uniform on the sphere) and an angle in [-π, π).
func (r *RNG) AxisAngle() ([3]float64, float64) {
	r.mu.Lock()
	var axis [3]float64
	var norm float64
	for norm < 1e-6 {
		norm = 0
		for i := range axis {
			axis[i] = r.rand.NormFloat64()
			norm += axis[i] * axis[i]
		}
	}
	angle := -math.Pi + r.rand.Float64()*2*math.Pi
	r.mu.Unlock()

	norm = math.Sqrt(norm)
	for i := range axis {
		axis[i] /= norm
	}
	return axis, angle
}
