/*package eval evaluates catalog functions over many sample points at once.

It does not choose the points or weight the results: the caller supplies
the nodes of whatever quadrature rule is being tested and accumulates the
returned values however it likes.
*/
package eval

import (
	"fmt"
	"math"
	"runtime"

	"github.com/gonum/floats"
	"golang.org/x/exp/constraints"

	sphc "github.com/MitchesD/spherical-collection"
)

// NumCores is the number of goroutines Parallel uses when it isn't told
// otherwise.
var NumCores = runtime.NumCPU()

// All evaluates f at every pair (thetas[i], phis[i]). If an output array is
// given, the output is written to that array (the array is still returned as
// a convenience).
//
// If more than one output array is provided, only the first is used. All
// panics if the input slices, or the input and output slices, have different
// lengths.
func All[F constraints.Float](
	f sphc.Func[F], thetas, phis []F, out ...[]F,
) []F {
	buf := checkLengths(thetas, phis, out)
	for i := range thetas { buf[i] = f(thetas[i], phis[i]) }
	return buf
}

// Parallel returns the same values as All, but splits the points into
// contiguous chunks which are evaluated on separate goroutines. If workers is
// not positive, NumCores goroutines are used.
func Parallel[F constraints.Float](
	f sphc.Func[F], workers int, thetas, phis []F, out ...[]F,
) []F {
	buf := checkLengths(thetas, phis, out)
	if workers <= 0 { workers = NumCores }
	if workers > len(thetas) { workers = len(thetas) }
	if workers <= 1 { return All(f, thetas, phis, buf) }

	done := make(chan int, workers)
	for id := 0; id < workers - 1; id++ {
		go chanEval(id, workers, f, thetas, phis, buf, done)
	}
	chanEval(workers - 1, workers, f, thetas, phis, buf, done)

	for i := 0; i < workers; i++ { <-done }
	return buf
}

// chanEval evaluates the id-th of workers chunks and reports its id to done.
func chanEval[F constraints.Float](
	id, workers int, f sphc.Func[F], thetas, phis, out []F, done chan<- int,
) {
	lo, hi := chunk(id, workers, len(thetas))
	All(f, thetas[lo:hi], phis[lo:hi], out[lo:hi])
	done <- id
}

// chunk returns the half-open index range handled by worker id.
func chunk(id, workers, n int) (lo, hi int) {
	size, rem := n / workers, n % workers
	lo = id*size + min(id, rem)
	hi = lo + size
	if id < rem { hi++ }
	return lo, hi
}

func checkLengths[F constraints.Float](thetas, phis []F, out [][]F) []F {
	if len(thetas) != len(phis) {
		panic(fmt.Sprintf(
			"Length of thetas (%d) is not equal to length of phis (%d).",
			len(thetas), len(phis),
		))
	}
	if len(out) == 0 { return make([]F, len(thetas)) }
	if len(out[0]) != len(thetas) {
		panic(fmt.Sprintf(
			"Length of output (%d) is not equal to length of inputs (%d).",
			len(out[0]), len(thetas),
		))
	}
	return out[0]
}

// Summary describes a set of evaluated values. Min, Max, and Mean are taken
// over the finite values only and are NaN if there are none.
type Summary struct {
	N, Finite, NaNs, Infs int
	Min, Max, Mean float64
}

// Summarize computes a Summary of vals.
func Summarize[F constraints.Float](vals []F) Summary {
	s := Summary{ N: len(vals) }
	finite := make([]float64, 0, len(vals))
	for _, v := range vals {
		x := float64(v)
		switch {
		case math.IsNaN(x):
			s.NaNs++
		case math.IsInf(x, 0):
			s.Infs++
		default:
			finite = append(finite, x)
		}
	}

	s.Finite = len(finite)
	if s.Finite == 0 {
		s.Min, s.Max, s.Mean = math.NaN(), math.NaN(), math.NaN()
		return s
	}
	s.Min, s.Max = floats.Min(finite), floats.Max(finite)
	s.Mean = floats.Sum(finite) / float64(s.Finite)
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf(
		"N = %d (finite = %d, NaN = %d, Inf = %d), min = %g, max = %g, " +
			"mean = %g", s.N, s.Finite, s.NaNs, s.Infs, s.Min, s.Max, s.Mean,
	)
}
