package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	sphc "github.com/MitchesD/spherical-collection"
)

const (
	ExampleEvaluateFile = `[Evaluate]

#######################
# Required Parameters #
#######################

# Name of the catalog function to evaluate, e.g. cf_f1, fornberg_f1, or
# beentjes_f4. Run with -List all to see every name.
Function = cf_f1

# The sample points. Either give a PointsFile or list the points inline with
# repeated Theta and Phi lines, but not both.
PointsFile = path/to/points.txt
# Theta = 0.23
# Phi   = 0.42
# Theta = 1.1
# Phi   = 2.3

#######################
# Optional Parameters #
#######################

# Floating point width used for evaluation. Must be 32 or 64. Default is 64.
# Precision = 64

# Columns of PointsFile which hold theta and phi. Defaults are 0 and 1.
# ThetaColumn = 0
# PhiColumn = 1

# Set to true if the input angles are in degrees instead of radians.
# Degrees = false

# File that values are written to. If not set, values are written to stdout.
# Output = path/to/output.txt

# Number of goroutines used for evaluation. Default is the number of logical
# cores.
# Threads = 4

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`

	// ExamplePointsFile is the format read from PointsFile: whitespace
	// separated columns, one point per line.
	ExamplePointsFile = `0.23 0.42
0.2 0.1
0.5 1.0
1.5707963 3.1415927`
)

type SharedConfig struct {
	// Optional
	Output string
	LogFile, ProfileFile string
	Threads int
}

func (con *SharedConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}
func (con *SharedConfig) ValidThreads() bool {
	return con.Threads > 0
}

type EvaluateConfig struct {
	SharedConfig

	// Required
	Function string

	// Either
	PointsFile string
	// or
	Theta, Phi []float64

	// Optional
	Precision int
	ThetaColumn, PhiColumn int
	Degrees bool
}

type EvaluateWrapper struct {
	Evaluate EvaluateConfig
}

func DefaultEvaluateWrapper() *EvaluateWrapper {
	con := EvaluateConfig{}
	con.Precision = 64
	con.ThetaColumn = 0
	con.PhiColumn = 1
	return &EvaluateWrapper{con}
}

func (con *EvaluateConfig) ValidFunction() bool {
	_, err := sphc.Lookup(con.Function)
	return err == nil
}
func (con *EvaluateConfig) ValidPrecision() bool {
	return con.Precision == 32 || con.Precision == 64
}
func (con *EvaluateConfig) ValidPointsFile() bool {
	return con.PointsFile != ""
}
func (con *EvaluateConfig) ValidInlinePoints() bool {
	return len(con.Theta) > 0 && len(con.Theta) == len(con.Phi)
}
func (con *EvaluateConfig) ValidColumns() bool {
	return con.ThetaColumn >= 0 && con.PhiColumn >= 0 &&
		con.ThetaColumn != con.PhiColumn
}

// CheckInit returns a descriptive error if the config is unusable.
func (con *EvaluateConfig) CheckInit() error {
	if con.Function == "" {
		return fmt.Errorf("Need to specify a Function in [Evaluate].")
	} else if _, err := sphc.Lookup(con.Function); err != nil {
		return err
	}

	if !con.ValidPrecision() {
		return fmt.Errorf(
			"Precision must be either 32 or 64, but is %d.", con.Precision,
		)
	}

	if len(con.Theta) != len(con.Phi) {
		return fmt.Errorf(
			"Given %d Theta values but %d Phi values.",
			len(con.Theta), len(con.Phi),
		)
	} else if con.ValidPointsFile() && con.ValidInlinePoints() {
		return fmt.Errorf(
			"Only one of PointsFile and Theta/Phi may be set in [Evaluate].",
		)
	} else if !con.ValidPointsFile() && !con.ValidInlinePoints() {
		return fmt.Errorf(
			"Need to specify either a PointsFile or Theta/Phi values in " +
				"[Evaluate].",
		)
	}

	if con.ValidPointsFile() && !con.ValidColumns() {
		return fmt.Errorf(
			"ThetaColumn (%d) and PhiColumn (%d) must be distinct and " +
				"non-negative.", con.ThetaColumn, con.PhiColumn,
		)
	}

	if con.Threads < 0 {
		return fmt.Errorf("Threads must be positive, but is %d.", con.Threads)
	}

	return nil
}

// ReadEvaluateConfig reads and checks an [Evaluate] config file.
func ReadEvaluateConfig(fname string) (*EvaluateConfig, error) {
	wrap := DefaultEvaluateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Evaluate.CheckInit(); err != nil { return nil, err }
	return &wrap.Evaluate, nil
}

// ParseEvaluateConfig is ReadEvaluateConfig for a config held in memory.
func ParseEvaluateConfig(str string) (*EvaluateConfig, error) {
	wrap := DefaultEvaluateWrapper()
	if err := gcfg.ReadStringInto(wrap, str); err != nil {
		return nil, err
	}
	if err := wrap.Evaluate.CheckInit(); err != nil { return nil, err }
	return &wrap.Evaluate, nil
}
