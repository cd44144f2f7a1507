// Package initializer provides weight initializers for neural network layers.
package initializer

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Initializer produces a flat, row-major weight sample for a layer whose
// weight tensor has the given shape.
type Initializer interface {
	Init(shape ...int) []float64
}

// Fans returns the fan-in and fan-out of a weight tensor shape, taken from
// its last two dimensions. For dense layers these are the only dimensions;
// for convolutional kernels the leading spatial dimensions do not enter the
// fan calculation.
func Fans(shape []int) (fanIn, fanOut int) {
	if len(shape) < 2 {
		panic("initializer: weight shape needs at least two dimensions")
	}
	return shape[len(shape)-2], shape[len(shape)-1]
}

// Edge returns the symmetric Glorot/Xavier sampling bound,
// sqrt(6 / (fan_in + fan_out)).
func Edge(fanIn, fanOut int) float64 {
	return math.Sqrt(6.0 / float64(fanIn+fanOut))
}

// GlorotUniform samples i.i.d. uniform weights from [-edge, edge] with
// edge = sqrt(6/(fan_in+fan_out)), the standard bound that preserves
// activation variance across layers.
type GlorotUniform struct {
	seed   uint64
	seeded bool
}

// NewGlorotUniform creates a GlorotUniform initializer drawing from the
// shared random source.
func NewGlorotUniform() *GlorotUniform {
	return &GlorotUniform{}
}

// NewSeededGlorotUniform creates a GlorotUniform initializer with a fixed
// seed. Every Init call restarts from the seed, so the same seed and shape
// always produce the same weights.
func NewSeededGlorotUniform(seed uint64) *GlorotUniform {
	return &GlorotUniform{seed: seed, seeded: true}
}

// Init samples prod(shape) weights in row-major order.
func (g GlorotUniform) Init(shape ...int) []float64 {
	fanIn, fanOut := Fans(shape)
	dist := distuv.Uniform{
		Min: -Edge(fanIn, fanOut),
		Max: Edge(fanIn, fanOut),
	}
	if g.seeded {
		dist.Src = rand.NewSource(g.seed)
	}

	out := make([]float64, numElements(shape))
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// GlorotUniformNonNegative is GlorotUniform with the absolute value taken of
// every sample, for models constrained to non-negative weights (e.g.
// enforcing monotonicity). The sampling bound is unchanged, so weights lie
// in [0, edge].
type GlorotUniformNonNegative struct {
	GlorotUniform
}

// NewGlorotUniformNonNegative creates a GlorotUniformNonNegative initializer
// drawing from the shared random source.
func NewGlorotUniformNonNegative() *GlorotUniformNonNegative {
	return &GlorotUniformNonNegative{}
}

// NewSeededGlorotUniformNonNegative creates a GlorotUniformNonNegative
// initializer with a fixed seed.
func NewSeededGlorotUniformNonNegative(seed uint64) *GlorotUniformNonNegative {
	return &GlorotUniformNonNegative{GlorotUniform{seed: seed, seeded: true}}
}

// Init samples prod(shape) non-negative weights in row-major order.
func (g GlorotUniformNonNegative) Init(shape ...int) []float64 {
	out := g.GlorotUniform.Init(shape...)
	for i, w := range out {
		out[i] = math.Abs(w)
	}
	return out
}

func numElements(shape []int) int {
	n := 1
	for _, d := range shape {
		if d <= 0 {
			panic(fmt.Sprintf("initializer: invalid dimension %d", d))
		}
		n *= d
	}
	return n
}
