// Package loss provides loss functions for angle regression.
//
// Inputs to both losses are pre-normalized headings in [-0.5, 0.5]
// (degrees divided by 360), so per-sample differences lie in [-1, 1].
package loss

import "math"

// BackwardInPlacer is an optional interface for loss functions that support
// in-place gradient computation to avoid allocations.
type BackwardInPlacer interface {
	BackwardInPlace(yPred, yTrue, grad []float64)
}

// Loss is a loss function with derivative.
type Loss interface {
	// Forward computes the loss between predicted and true values.
	Forward(yPred, yTrue []float64) float64

	// Backward computes the gradient of the loss w.r.t. prediction.
	// This creates a new slice and should be avoided in hot loops.
	Backward(yPred, yTrue []float64) []float64
}

// eps floors the circular loss so it never reaches exactly zero, keeping
// the optimizer away from the degenerate zero-loss/zero-gradient point.
const eps = 1e-10

// Circular is a periodic loss for angle regression:
//
//	per-sample = max(0.5 * (1 - cos(pi*diff)), 1e-10)
//
// where diff = y_pred - y_true. The batch loss is the mean absolute value of
// that quantity; the floored cosine term is never negative, so the absolute
// value leaves it unchanged.
type Circular struct {
	// Exp is reserved for an exponent-tunable variant. It is stored but
	// not applied to the formula.
	Exp float64
}

// NewCircular creates a Circular loss with the given (unused) exponent.
func NewCircular(exp float64) *Circular {
	return &Circular{Exp: exp}
}

// Forward computes the mean floored circular loss over the batch.
// A diff of 0 yields eps; a diff of ±1 yields the maximum loss of 1.
func (c Circular) Forward(yPred, yTrue []float64) float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("Circular: prediction and target must have same length")
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yPred[i] - yTrue[i]
		term := 0.5 * (1 - math.Cos(math.Pi*diff))
		if term < eps {
			term = eps
		}
		sum += math.Abs(term)
	}
	return sum / float64(n)
}

// Backward computes gradient: dL/dy_pred = 0.5*pi*sin(pi*diff)/n.
// Where the epsilon floor is active the loss is constant, so the gradient
// there is zero.
func (c Circular) Backward(yPred, yTrue []float64) []float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("Circular: prediction and target must have same length")
	}

	grad := make([]float64, n)
	factor := 0.5 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		diff := yPred[i] - yTrue[i]
		if 0.5*(1-math.Cos(math.Pi*diff)) <= eps {
			continue
		}
		grad[i] = factor * math.Sin(math.Pi*diff)
	}
	return grad
}

// BackwardInPlace computes the gradient and stores it in the grad slice.
func (c Circular) BackwardInPlace(yPred, yTrue, grad []float64) {
	n := len(yPred)
	if n != len(yTrue) || n != len(grad) {
		panic("Circular: slices must have same length")
	}

	factor := 0.5 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		diff := yPred[i] - yTrue[i]
		if 0.5*(1-math.Cos(math.Pi*diff)) <= eps {
			grad[i] = 0
			continue
		}
		grad[i] = factor * math.Sin(math.Pi*diff)
	}
}

// MSE is the plain squared-difference loss over the same normalized inputs,
// kept for comparison against Circular during training.
type MSE struct {
	// Exp is reserved for an exponent-tunable variant. It is stored but
	// not applied to the formula.
	Exp float64
}

// NewMSE creates an MSE loss with the given (unused) exponent.
func NewMSE(exp float64) *MSE {
	return &MSE{Exp: exp}
}

// Forward computes mean(|y_pred - y_true|^2) over the batch.
func (m MSE) Forward(yPred, yTrue []float64) float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("MSE: prediction and target must have same length")
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := math.Abs(yPred[i] - yTrue[i])
		sum += diff * diff
	}
	return sum / float64(n)
}

// Backward computes gradient: dL/dy_pred = (2/n) * (y_pred - y_true)
func (m MSE) Backward(yPred, yTrue []float64) []float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("MSE: prediction and target must have same length")
	}

	grad := make([]float64, n)
	factor := 2.0 / float64(n)
	for i := 0; i < n; i++ {
		grad[i] = factor * (yPred[i] - yTrue[i])
	}
	return grad
}

// BackwardInPlace computes the gradient and stores it in the grad slice.
func (m MSE) BackwardInPlace(yPred, yTrue, grad []float64) {
	n := len(yPred)
	if n != len(yTrue) || n != len(grad) {
		panic("MSE: slices must have same length")
	}

	factor := 2.0 / float64(n)
	for i := 0; i < n; i++ {
		grad[i] = factor * (yPred[i] - yTrue[i])
	}
}
