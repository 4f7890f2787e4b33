package io

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/phil-mansfield/table"
)

// ReadPoints reads the theta and phi columns of a whitespace-separated table
// of sample points.
func ReadPoints(
	fname string, thetaCol, phiCol int,
) (thetas, phis []float64, err error) {
	cols, err := table.ReadTable(fname, []int{ thetaCol, phiCol }, nil)
	if err != nil { return nil, nil, err }
	if len(cols) != 2 {
		return nil, nil, fmt.Errorf(
			"Expected 2 columns from '%s', but read %d.", fname, len(cols),
		)
	}
	return cols[0], cols[1], nil
}

// InlinePoints returns copies of the Theta and Phi values given in the
// config.
func (con *EvaluateConfig) InlinePoints() (thetas, phis []float64) {
	thetas = append([]float64{}, con.Theta...)
	phis = append([]float64{}, con.Phi...)
	return thetas, phis
}

// Points returns the sample points described by the config, converted to
// radians.
func (con *EvaluateConfig) Points() (thetas, phis []float64, err error) {
	if con.ValidPointsFile() {
		thetas, phis, err = ReadPoints(
			con.PointsFile, con.ThetaColumn, con.PhiColumn,
		)
		if err != nil { return nil, nil, err }
	} else {
		thetas, phis = con.InlinePoints()
	}

	if con.Degrees {
		for i := range thetas { thetas[i] *= math.Pi / 180 }
		for i := range phis { phis[i] *= math.Pi / 180 }
	}
	return thetas, phis, nil
}

// WriteValues writes one "theta phi value" row per point to w, preceded by
// a commented header naming the function.
func WriteValues(
	w io.Writer, name string, thetas, phis, vals []float64,
) error {
	if len(thetas) != len(phis) || len(thetas) != len(vals) {
		return fmt.Errorf(
			"Given %d thetas, %d phis, and %d values.",
			len(thetas), len(phis), len(vals),
		)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %-22s %-24s %s\n", "theta", "phi", name)
	for i := range vals {
		fmt.Fprintf(bw, "%-24.17g %-24.17g %.17g\n", thetas[i], phis[i], vals[i])
	}
	return bw.Flush()
}
