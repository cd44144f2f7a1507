// Package circml is the public surface of the library: circular-aware error
// metrics, losses for angle regression, and weight initializers, exposed as
// the narrow callable interfaces a training framework plugs in.
package circml

import (
	"github.com/circml/circml/internal/initializer"
	"github.com/circml/circml/internal/loss"
	"github.com/circml/circml/internal/metrics"
)

// Re-export common types for easier access
type (
	Loss        = loss.Loss
	Initializer = initializer.Initializer
)

// Losses. The exp parameter is reserved and currently unused.
func CircularLoss(exp float64) Loss { return loss.NewCircular(exp) }
func MSELoss(exp float64) Loss      { return loss.NewMSE(exp) }

// Initializers
func GlorotUniform() Initializer { return initializer.NewGlorotUniform() }

func SeededGlorotUniform(seed uint64) Initializer {
	return initializer.NewSeededGlorotUniform(seed)
}

func GlorotUniformNonNegative() Initializer {
	return initializer.NewGlorotUniformNonNegative()
}

func SeededGlorotUniformNonNegative(seed uint64) Initializer {
	return initializer.NewSeededGlorotUniformNonNegative(seed)
}

// Metrics
func Reflect(yPred []float64) []float64 {
	return metrics.Reflect(yPred)
}

func CircularError(yPred, yTrue []float64) []float64 {
	return metrics.CircularError(yPred, yTrue)
}

func MSE(yPred, yTrue []float64, circular bool) float64 {
	return metrics.MSE(yPred, yTrue, circular)
}

func MAE(yPred, yTrue []float64, circular bool) float64 {
	return metrics.MAE(yPred, yTrue, circular)
}

func BatchMSE(yPred, yTrue [][]float64, circular bool) []float64 {
	return metrics.BatchMSE(yPred, yTrue, circular)
}

func BatchMAE(yPred, yTrue [][]float64, circular bool) []float64 {
	return metrics.BatchMAE(yPred, yTrue, circular)
}
