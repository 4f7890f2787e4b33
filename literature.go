package sphc

import (
	"math"

	"github.com/MitchesD/spherical-collection/math/fmath"
	"golang.org/x/exp/constraints"
)

//////////////
// Fornberg //
//////////////

// FornbergF1 is a low order polynomial in x, y, and z.
func FornbergF1[F constraints.Float](theta, phi F) F {
	x, y, z := sphericalToXYZ(theta, phi)
	x2, y2 := x*x, y*y
	return 1 + x + y2 + x2*y + x2*x2 + y2*y2*y + x2*y2*z*z
}

// FornbergF4 is a step function which is discontinuous along the great
// circle x + y - z = 0. It only takes the values 0, 1/9, and 2/9.
func FornbergF4[F constraints.Float](theta, phi F) F {
	const scale = 9.0
	x, y, z := sphericalToXYZ(theta, phi)
	return (1 + sgn(-scale*x-scale*y+scale*z)) / scale
}

//////////////
// Beentjes //
//////////////

// BeentjesF3 is a smoothed version of BeentjesF4 with a tanh transition
// across the great circle x + y - z = 0.
func BeentjesF3[F constraints.Float](theta, phi F) F {
	const alpha = 9.0
	x, y, z := sphericalToXYZ(theta, phi)
	return (1 + fmath.Tanh(-alpha*x-alpha*y+alpha*z)) / alpha
}

// BeentjesF4 is discontinuous along the great circle x + y - z = 0 and
// only takes the values 0, 1/9, and 2/9.
func BeentjesF4[F constraints.Float](theta, phi F) F {
	const alpha = 9.0
	x, y, z := sphericalToXYZ(theta, phi)
	return (1 - sgn(x+y-z)) / alpha
}

// BeentjesF5 is discontinuous along the great circle pi*x + y = 0.
func BeentjesF5[F constraints.Float](theta, phi F) F {
	const alpha = 9.0
	x, y, _ := sphericalToXYZ(theta, phi)
	return (1 - sgn(math.Pi*x+y)) / alpha
}

///////////
// Renka //
///////////

func RenkaF3[F constraints.Float](theta, phi F) F {
	x, y, z := sphericalToXYZ(theta, phi)
	dx := 3*x - 1
	return fmath.Abs((1.25 + fmath.Cos(5.4*y)) * fmath.Cos(6*z) / (6 + 6*dx*dx))
}

// RenkaF4 is a Gaussian bump centered on the direction (1, 1, 1).
func RenkaF4[F constraints.Float](theta, phi F) F {
	const width = 81.0 / 16.0
	x, y, z := sphericalToXYZ(theta, phi)
	r2 := fmath.Pow(x-0.5, 2) + fmath.Pow(y-0.5, 2) + fmath.Pow(z-0.5, 2)
	return fmath.Exp(-width*r2) / 3
}

// RenkaF5 is a sharper version of RenkaF4.
func RenkaF5[F constraints.Float](theta, phi F) F {
	const width = 81.0 / 4.0
	x, y, z := sphericalToXYZ(theta, phi)
	r2 := fmath.Pow(x-0.5, 2) + fmath.Pow(y-0.5, 2) + fmath.Pow(z-0.5, 2)
	return fmath.Exp(-width*r2) / 3
}

////////////
// Reeger //
////////////

// ReegerF2 is from "Numerical quadrature over smooth surfaces with
// boundaries". It varies smoothly with z.
func ReegerF2[F constraints.Float](theta, phi F) F {
	_, _, z := sphericalToXYZ(theta, phi)
	return 2 / math.Pi * fmath.Atan(z)
}

// ReegerF3 is from "Numerical Quadrature over the Surface of a Sphere". It
// is a steep arctangent ramp confined to a small cap around the north pole.
func ReegerF3[F constraints.Float](theta, phi F) F {
	const (
		steepness = 300.0
		zEdge = 0.9999
	)
	_, _, z := sphericalToXYZ(theta, phi)
	return (math.Pi/2 + fmath.Atan(steepness*(z-zEdge))) / math.Pi
}

// ReegerF4 is from "Numerical quadrature over smooth surfaces with
// boundaries". It is an arctangent ramp around the latitude
// z = 0.9999 / (2 sqrt(2)).
func ReegerF4[F constraints.Float](theta, phi F) F {
	const (
		steepness = 1000.0
		zEdge = 0.9999 / (2 * math.Sqrt2)
	)
	_, _, z := sphericalToXYZ(theta, phi)
	return 0.5 + fmath.Atan(steepness*(z-zEdge))/math.Pi
}

////////////
// Bellet //
////////////

// BelletF4 is from "Spherical Harmonics Collocation: A Computational
// Intercomparison of Several Grids". It is 1 for x > 1/2, 0 for x < 1/2,
// and 1/2 on the boundary.
func BelletF4[F constraints.Float](theta, phi F) F {
	x, _, _ := sphericalToXYZ(theta, phi)
	return 0.5 * (1 + sgn(x-0.5))
}

////////////
// Franke //
////////////

// Franke is the three dimensional extension of Franke's function restricted
// to the unit sphere: three Gaussian peaks and one Gaussian trough.
func Franke[F constraints.Float](theta, phi F) F {
	x, y, z := sphericalToXYZ(theta, phi)
	x9, y9, z9 := 9*x, 9*y, 9*z

	t1 := 0.75 * fmath.Exp(
		-(x9-2)*(x9-2)/4 - (y9-2)*(y9-2)/4 - (z9-2)*(z9-2)/4,
	)
	t2 := 0.75 * fmath.Exp(
		-(x9+1)*(x9+1)/49 - (y9+1)/10 - (z9+1)/10,
	)
	t3 := 0.5 * fmath.Exp(
		-(x9-7)*(x9-7)/4 - (y9-3)*(y9-3)/4 - (z9-5)*(z9-5)/4,
	)
	t4 := 0.2 * fmath.Exp(
		-(x9-4)*(x9-4) - (y9-7)*(y9-7) - (z9-5)*(z9-5),
	)
	return t1 + t2 + t3 - t4
}
