package sphc

import (
	"math"

	"github.com/MitchesD/spherical-collection/math/fmath"
	"golang.org/x/exp/constraints"
)

// The CF functions are custom test functions. Several of them take
// absolute values of oscillating terms, which puts sharp ridges along the
// zero set of the term inside.

// CF1 is |sin(cos(2 phi) - 2 theta)| + |cos(2 theta)|.
func CF1[F constraints.Float](theta, phi F) F {
	return fmath.Abs(fmath.Sin(fmath.Cos(2*phi)-2*theta)) +
		fmath.Abs(fmath.Cos(2*theta))
}

// CF2 is |sin(2 phi - theta)| + |cos(2 theta)|.
func CF2[F constraints.Float](theta, phi F) F {
	return fmath.Abs(fmath.Sin(2*phi-theta)) + fmath.Abs(fmath.Cos(2*theta))
}

// CF3 is 1 + sin(5 phi)/5. It does not depend on theta.
func CF3[F constraints.Float](theta, phi F) F {
	return 1 + fmath.Sin(5*phi)/5
}

// CF4 is 1 + cos(5 phi)/5 + sin(5 theta).
func CF4[F constraints.Float](theta, phi F) F {
	return 1 + fmath.Cos(5*phi)/5 + fmath.Sin(5*theta)
}

// CF5 sums three exponentials of projections onto fixed directions, an
// exponential in theta, and a rectified cosine with a frequency of 45 in
// both angles.
func CF5[F constraints.Float](theta, phi F) F {
	x, y, z := sphericalToXYZ(theta, phi)
	return fmath.Exp(2*dot(x, y, z, -1, -1, 0.8)) +
		fmath.Exp(1.5*dot(x, y, z, 1, -1, 0.8)) +
		fmath.Exp(theta) +
		10*fmath.Exp(dot(x, y, z, 0.8, 0.3, -4)-1) +
		4*fmath.Abs(fmath.Cos(45*theta+45*phi))
}

// CF6 is 1 + cos(theta)/2 + 0.3 cos(2 phi).
func CF6[F constraints.Float](theta, phi F) F {
	return 1 + 0.5*fmath.Cos(theta) + 0.3*fmath.Cos(2*phi)
}

func CF7[F constraints.Float](theta, phi F) F {
	x, y, z := sphericalToXYZ(theta, phi)
	return fmath.Abs(fmath.Cos(3*x) + fmath.Sin(2*y) + 0.5*z*z)
}

func CF8[F constraints.Float](theta, phi F) F {
	x, y, z := sphericalToXYZ(theta, phi)
	return fmath.Abs(
		fmath.Sin(2*x)*fmath.Cos(3*y) + 0.5*z*z +
			0.3*fmath.Sin(5*x)*fmath.Cos(4*z),
	)
}

func CF9[F constraints.Float](theta, phi F) F {
	x, y, z := sphericalToXYZ(theta, phi)
	return fmath.Abs(x*x - y*y + 0.5*x*z - 0.3*y*z)
}

// CF10 is a constant offset plus a 16-fold oscillation in theta whose
// amplitude grows towards the south pole.
func CF10[F constraints.Float](theta, phi F) F {
	x, y, z := sphericalToXYZ(theta, phi)
	return x*x + y*y + z*z + 5 +
		2.5*fmath.Cos((theta-math.Pi)/2)*fmath.Sin(16*theta)
}

// CF11 is |sin(10x) cos(12y) sin(15z) + cos(20x)|.
func CF11[F constraints.Float](theta, phi F) F {
	x, y, z := sphericalToXYZ(theta, phi)
	return fmath.Abs(
		fmath.Sin(10*x)*fmath.Cos(12*y)*fmath.Sin(15*z) + fmath.Cos(20*x),
	)
}

// CF12 is sin(10x) + cos(12y) - sin(15z) + 0.2 cos(18x) + 3.
func CF12[F constraints.Float](theta, phi F) F {
	x, y, z := sphericalToXYZ(theta, phi)
	return fmath.Sin(10*x) + fmath.Cos(12*y) - fmath.Sin(15*z) +
		0.2*fmath.Cos(18*x) + 3
}

func CF13[F constraints.Float](theta, phi F) F {
	x, y, z := sphericalToXYZ(theta, phi)
	return fmath.Exp(-fmath.Sin(5*x)-fmath.Cos(6*y)) + 0.3*fmath.Sin(10*z)
}

func CF14[F constraints.Float](theta, phi F) F {
	x, y, z := sphericalToXYZ(theta, phi)
	return fmath.Exp(-2*(x*x+y*y)) * fmath.Sin(4*z)
}

// CF15 is (x^2 + y^2) exp(-3 z^2): zero at the poles and largest on the
// equator.
func CF15[F constraints.Float](theta, phi F) F {
	x, y, z := sphericalToXYZ(theta, phi)
	return (x*x + y*y) * fmath.Exp(-3*z*z)
}
