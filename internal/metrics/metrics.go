// Package metrics provides circular-aware error metrics for angle predictions.
//
// All angles are in degrees. Targets are assumed to already lie in
// [-180, 180]; predictions may drift out of range during training and are
// reflected back in before differences are taken.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Reflect brings out-of-range predictions back into [-180, 180] by mirroring
// around the boundary they crossed: 190 maps to 170, not -170. In-range
// values pass through unchanged. A single reflection is applied, so values
// must lie within [-540, 540].
func Reflect(yPred []float64) []float64 {
	out := make([]float64, len(yPred))
	copy(out, yPred)
	reflectInPlace(out)
	return out
}

func reflectInPlace(v []float64) {
	for i, x := range v {
		if x > 180 {
			v[i] = 360 - x
		} else if x < -180 {
			v[i] = -360 - x
		}
	}
}

// CircularError computes the wrapped angular error between predictions and
// targets: predictions are reflected into range, subtracted, and any
// difference of magnitude above 180 is wrapped to its within-range
// equivalent. The result always lies in [-180, 180].
func CircularError(yPred, yTrue []float64) []float64 {
	if len(yPred) != len(yTrue) {
		panic("metrics: prediction and target must have same length")
	}

	diff := Reflect(yPred)
	floats.Sub(diff, yTrue)
	wrapInPlace(diff)
	return diff
}

func wrapInPlace(diff []float64) {
	for i, d := range diff {
		if d > 180 {
			diff[i] = 360 - d
		} else if d < -180 {
			diff[i] = -360 - d
		}
	}
}

// MSE computes the mean squared error of a batch of scalar predictions.
// With circular set, differences are wrapped via CircularError so that a
// prediction of 175 against a target of -175 counts as 10 degrees, not 350.
func MSE(yPred, yTrue []float64, circular bool) float64 {
	diff := errorDiff(yPred, yTrue, circular)
	floats.Mul(diff, diff)
	return stat.Mean(diff, nil)
}

// MAE computes the mean absolute error of a batch of scalar predictions,
// optionally with circular correction.
func MAE(yPred, yTrue []float64, circular bool) float64 {
	diff := errorDiff(yPred, yTrue, circular)
	for i, d := range diff {
		diff[i] = math.Abs(d)
	}
	return stat.Mean(diff, nil)
}

// BatchMSE reduces a 2-D batch along its leading axis, returning one mean
// squared error per trailing feature. Rows are samples, columns features.
func BatchMSE(yPred, yTrue [][]float64, circular bool) []float64 {
	return reduceBatch(yPred, yTrue, circular, MSE)
}

// BatchMAE reduces a 2-D batch along its leading axis, returning one mean
// absolute error per trailing feature.
func BatchMAE(yPred, yTrue [][]float64, circular bool) []float64 {
	return reduceBatch(yPred, yTrue, circular, MAE)
}

func errorDiff(yPred, yTrue []float64, circular bool) []float64 {
	if circular {
		return CircularError(yPred, yTrue)
	}

	if len(yPred) != len(yTrue) {
		panic("metrics: prediction and target must have same length")
	}
	diff := make([]float64, len(yPred))
	floats.SubTo(diff, yPred, yTrue)
	return diff
}

func reduceBatch(yPred, yTrue [][]float64, circular bool, reduce func([]float64, []float64, bool) float64) []float64 {
	rows, cols := batchDims(yPred, yTrue)

	out := make([]float64, cols)
	predCol := make([]float64, rows)
	trueCol := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			predCol[i] = yPred[i][j]
			trueCol[i] = yTrue[i][j]
		}
		out[j] = reduce(predCol, trueCol, circular)
	}
	return out
}

func batchDims(yPred, yTrue [][]float64) (rows, cols int) {
	rows = len(yPred)
	if rows != len(yTrue) {
		panic("metrics: prediction and target must have same batch size")
	}
	if rows == 0 {
		panic("metrics: empty batch")
	}

	cols = len(yPred[0])
	for i := 0; i < rows; i++ {
		if len(yPred[i]) != cols || len(yTrue[i]) != cols {
			panic("metrics: prediction and target rows must have same length")
		}
	}
	return rows, cols
}
