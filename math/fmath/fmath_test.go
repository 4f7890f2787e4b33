package fmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesMath(t *testing.T) {
	xs := []float64{-3.5, -1, -0.25, 0, 0.25, 1, 2.75, 10}
	for _, x := range xs {
		assert.Equal(t, math.Sin(x), Sin(x), "Sin(%g)", x)
		assert.Equal(t, math.Cos(x), Cos(x), "Cos(%g)", x)
		assert.Equal(t, math.Tanh(x), Tanh(x), "Tanh(%g)", x)
		assert.Equal(t, math.Atan(x), Atan(x), "Atan(%g)", x)
		assert.Equal(t, math.Exp(x), Exp(x), "Exp(%g)", x)
		assert.Equal(t, math.Abs(x), Abs(x), "Abs(%g)", x)
		assert.Equal(t, math.Pow(x, 2), Pow(x, 2), "Pow(%g, 2)", x)
	}
	assert.Equal(t, 3.0, Sqrt(9.0))
}

func TestFloat32Rounding(t *testing.T) {
	x := float32(0.42)
	assert.Equal(t, float32(math.Sin(float64(x))), Sin(x))
	assert.Equal(t, float32(math.Exp(float64(x))), Exp(x))
	assert.Equal(t, float32(2), Abs(float32(-2)))
}

type celsius float32

func TestNamedTypes(t *testing.T) {
	assert.Equal(t, celsius(3), Abs(celsius(-3)))
}

func TestSpecialValues(t *testing.T) {
	assert.True(t, math.IsNaN(Sin(math.NaN())))
	assert.True(t, math.IsInf(float64(Exp(float32(1e3))), 1))
	assert.Equal(t, 1.0, Tanh(math.Inf(1)))
}
