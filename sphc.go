/*package sphc is a collection of closed-form test functions defined on the
surface of the unit sphere.

Every function takes a polar angle, theta, and an azimuthal angle, phi, and
returns a single scalar of the same floating point type. The functions are
meant to be evaluated at the nodes of a quadrature rule so that the resulting
estimate can be compared against a known integral. Some are smooth, some are
steep but continuous, and some are discontinuous on purpose.

Angles are not validated or wrapped. The conventional domains are
theta in [0, pi] and phi in [0, 2 pi), but anything goes through the
trigonometric functions unchanged. NaN and Inf inputs (or overflowing
intermediate terms) propagate to the output.

Functions are grouped by where they come from: the Fornberg, Beentjes,
Renka, Reeger and Bellet test suites, Franke's function, and a family of
custom functions (CF1 through CF15). The grouping is only for attribution,
none of the functions depend on each other. Use Lookup to select a function
by name at runtime.
*/
package sphc

import (
	"github.com/MitchesD/spherical-collection/math/fmath"
	"golang.org/x/exp/constraints"
)

// sphericalToXYZ converts a point on the unit sphere from spherical to
// Cartesian coordinates.
func sphericalToXYZ[F constraints.Float](theta, phi F) (x, y, z F) {
	sinTheta := fmath.Sin(theta)
	x = sinTheta * fmath.Cos(phi)
	y = sinTheta * fmath.Sin(phi)
	z = fmath.Cos(theta)
	return x, y, z
}

// sgn returns -1, 0, or +1 if v is negative, zero, or positive, respectively.
// NaN is neither, so it maps to 0.
func sgn[F constraints.Float](v F) F {
	if v > 0 {
		return 1
	} else if v < 0 {
		return -1
	}
	return 0
}

func dot[F constraints.Float](x1, y1, z1, x2, y2, z2 F) F {
	return x1*x2 + y1*y2 + z1*z2
}
