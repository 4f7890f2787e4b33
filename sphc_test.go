package sphc

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
)

func randomAngles(n int, lim float64) (thetas, phis []float64) {
	thetas, phis = make([]float64, n), make([]float64, n)
	for i := range thetas {
		thetas[i] = (rand.Float64()*2 - 1) * lim
		phis[i] = (rand.Float64()*2 - 1) * lim
	}
	return thetas, phis
}

func TestSphericalToXYZUnitNorm(t *testing.T) {
	// Includes values well outside [0, pi] x [0, 2 pi).
	thetas, phis := randomAngles(1000, 20)
	for i := range thetas {
		x, y, z := sphericalToXYZ(thetas[i], phis[i])
		assert.InDelta(t, 1, x*x+y*y+z*z, 1e-12, "theta = %g, phi = %g", thetas[i], phis[i])

		x32, y32, z32 := sphericalToXYZ(float32(thetas[i]), float32(phis[i]))
		assert.InDelta(t, 1, x32*x32+y32*y32+z32*z32, 1e-6, "theta = %g, phi = %g", thetas[i], phis[i])
	}
}

func TestSphericalToXYZMatchesS2(t *testing.T) {
	thetas, phis := randomAngles(200, math.Pi)
	for i := range thetas {
		ll := s2.LatLng{
			Lat: s1.Angle(math.Pi/2 - thetas[i]), Lng: s1.Angle(phis[i]),
		}
		p := s2.PointFromLatLng(ll)
		x, y, z := sphericalToXYZ(thetas[i], phis[i])
		assert.InDelta(t, p.X, x, 1e-12)
		assert.InDelta(t, p.Y, y, 1e-12)
		assert.InDelta(t, p.Z, z, 1e-12)
	}
}

func TestSphericalToXYZAxes(t *testing.T) {
	x, y, z := sphericalToXYZ(0.0, 1.7)
	assert.InDelta(t, 0, x, 1e-15)
	assert.InDelta(t, 0, y, 1e-15)
	assert.Equal(t, 1.0, z)

	x, y, z = sphericalToXYZ(math.Pi/2, math.Pi/2)
	assert.InDelta(t, 0, x, 1e-15)
	assert.InDelta(t, 1, y, 1e-15)
	assert.InDelta(t, 0, z, 1e-15)
}

func TestSgn(t *testing.T) {
	assert.Equal(t, -1.0, sgn(-1.0))
	assert.Equal(t, 0.0, sgn(0.0))
	assert.Equal(t, 1.0, sgn(2.5))
	assert.Equal(t, float32(-1), sgn(float32(-1e-30)))
	assert.Equal(t, 0.0, sgn(math.Copysign(0, -1)))
	assert.Equal(t, 1.0, sgn(math.Inf(1)))
	assert.Equal(t, 0.0, sgn(math.NaN()))
}

func TestDot(t *testing.T) {
	assert.Equal(t, 1.0, dot(1.0, 0, 0, 1, 0, 0))
	assert.Equal(t, 0.0, dot(1.0, 0, 0, 0, 1, 0))
	assert.Equal(t, float32(32), dot(float32(1), 2, 3, 4, 5, 6))
}

// Values printed by the -Demo mode of the sphc command.
func TestDemoFixtures(t *testing.T) {
	assert.Equal(t, "1.10203", fmt.Sprintf("%.6g", CF1(float32(0.23), float32(0.42))))
	assert.Equal(t, "1.20039", fmt.Sprintf("%.6g", FornbergF1(0.2, 0.1)))
	assert.Equal(t, "0.222222", fmt.Sprintf("%.6g", BeentjesF4(0.5, 1.0)))

	assert.InDelta(t, 1.10203028, float64(CF1(float32(0.23), float32(0.42))), 1e-6)
	assert.InDelta(t, 1.2003869337213957, FornbergF1(0.2, 0.1), 1e-12)
	assert.Equal(t, 2.0/9, BeentjesF4(0.5, 1.0))
}
