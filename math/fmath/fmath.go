/*package fmath contains width-preserving versions of the math package's
transcendental functions. Each routine takes and returns the same floating
point type, so an expression built out of them never leaves that type between
operations.

The arithmetic itself is done by the standard library in float64 and the
result is rounded back to the caller's type.
*/
package fmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

func Sin[F constraints.Float](x F) F { return F(math.Sin(float64(x))) }
func Cos[F constraints.Float](x F) F { return F(math.Cos(float64(x))) }
func Tanh[F constraints.Float](x F) F { return F(math.Tanh(float64(x))) }
func Atan[F constraints.Float](x F) F { return F(math.Atan(float64(x))) }
func Exp[F constraints.Float](x F) F { return F(math.Exp(float64(x))) }
func Sqrt[F constraints.Float](x F) F { return F(math.Sqrt(float64(x))) }

// Abs returns |x|.
func Abs[F constraints.Float](x F) F { return F(math.Abs(float64(x))) }

// Pow returns x**y.
func Pow[F constraints.Float](x, y F) F {
	return F(math.Pow(float64(x), float64(y)))
}
