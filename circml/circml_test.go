package circml_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/circml/circml/circml"
)

func TestFacadeRoundTrip(t *testing.T) {
	// Headings in degrees, one prediction pushed past the seam.
	yPred := []float64{190, -170}
	yTrue := []float64{170, 170}

	// First pair reflects to zero error, second wraps to 20 degrees.
	assert.InDelta(t, 10.0, circml.MAE(yPred, yTrue, true), 1e-9)
	assert.InDelta(t, 200.0, circml.MSE(yPred, yTrue, true), 1e-9)

	// Normalized headings in [-0.5, 0.5] for the losses.
	normPred := []float64{0.25}
	normTrue := []float64{0}

	circ := circml.CircularLoss(0)
	mse := circml.MSELoss(0)
	assert.InDelta(t, 0.5*(1-math.Cos(math.Pi*0.25)), circ.Forward(normPred, normTrue), 1e-12)
	assert.InDelta(t, 0.0625, mse.Forward(normPred, normTrue), 1e-12)

	w := circml.SeededGlorotUniformNonNegative(1).Init(4, 2)
	assert.Len(t, w, 8)
	for _, v := range w {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}
