package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	stdio "io"

	sphc "github.com/MitchesD/spherical-collection"
	"github.com/MitchesD/spherical-collection/eval"
	"github.com/MitchesD/spherical-collection/io"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		log.SetOutput(os.Stderr)
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

// openFileGroup redirects logging and starts CPU profiling if the config
// asks for it.
func openFileGroup(con *io.SharedConfig) (*FileGroup, error) {
	fg := &FileGroup{}
	var err error

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil { return nil, err }
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			fg.Close()
			return nil, err
		}
		if err = pprof.StartCPUProfile(fg.prof); err != nil {
			fg.prof.Close()
			fg.prof = nil
			fg.Close()
			return nil, err
		}
	}

	return fg, nil
}

func main() {
	var (
		evaluateStr, exampleConfig, listStr string
		demo bool
		threads int
	)
	vars := map[string]*string{
		"Evaluate": &evaluateStr,
		"ExampleConfig": &exampleConfig,
		"List": &listStr,
	}

	flag.IntVar(
		&threads, "Threads", runtime.NumCPU(),
		"Number of threads used. Default is the number of logical cores. " +
			"Overridden by Threads in a config file.",
	)
	flag.StringVar(
		&evaluateStr, "Evaluate", "",
		"Configuration file for [Evaluate] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "", "Prints an example " +
			"configuration file of the specified type to stdout. Accepted " +
			"arguments are 'Evaluate' and 'Points'.",
	)
	flag.StringVar(
		&listStr, "List", "", "Lists the catalog functions in the given " +
			"family, or all of them if the argument is 'all'.",
	)
	flag.BoolVar(
		&demo, "Demo", false,
		"Prints three sample evaluations and exits.",
	)

	flag.Parse()

	if demo {
		writeDemo(os.Stdout)
		return
	}

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Evaluate":
		con, err := io.ReadEvaluateConfig(evaluateStr)
		if err != nil { log.Fatal(err.Error()) }
		if !con.ValidThreads() { con.Threads = threads }

		if err := evaluateMain(con); err != nil { log.Fatal(err.Error()) }

	case "ExampleConfig":
		switch exampleConfig {
		case "Evaluate":
			fmt.Println(io.ExampleEvaluateFile)
		case "Points":
			fmt.Println(io.ExamplePointsFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Evaluate' and 'Points'.",
			)
		}

	case "List":
		if err := writeList(os.Stdout, listStr); err != nil {
			log.Fatal(err.Error())
		}

	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but sphc only accepts " +
				"one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// evaluateMain evaluates the configured function at the configured points
// and writes the results to the configured output.
func evaluateMain(con *io.EvaluateConfig) error {
	fg, err := openFileGroup(&con.SharedConfig)
	if err != nil { return err }
	defer fg.Close()

	out := stdio.Writer(os.Stdout)
	if con.ValidOutput() {
		f, err := os.Create(con.Output)
		if err != nil { return err }
		defer f.Close()
		out = f
	}

	return evaluate(out, con)
}

// evaluate does the work of evaluateMain, writing to w.
func evaluate(w stdio.Writer, con *io.EvaluateConfig) error {
	e, err := sphc.Lookup(con.Function)
	if err != nil { return err }

	thetas, phis, err := con.Points()
	if err != nil { return err }

	log.Printf(
		"Evaluating %s at %d points with %d-bit floats on %d threads",
		e.Name, len(thetas), con.Precision, con.Threads,
	)
	t0 := time.Now()

	var vals []float64
	switch con.Precision {
	case 32:
		thetas32, phis32 := toFloat32(thetas), toFloat32(phis)
		vals32 := eval.Parallel(e.F32, con.Threads, thetas32, phis32)
		vals = make([]float64, len(vals32))
		for i := range vals { vals[i] = float64(vals32[i]) }
		log.Println(eval.Summarize(vals32))
	case 64:
		vals = eval.Parallel(e.F64, con.Threads, thetas, phis)
		log.Println(eval.Summarize(vals))
	default:
		return fmt.Errorf("Precision must be 32 or 64, not %d.", con.Precision)
	}

	log.Printf("Evaluation took %s", time.Since(t0))
	return io.WriteValues(w, e.Name, thetas, phis, vals)
}

func toFloat32(xs []float64) []float32 {
	out := make([]float32, len(xs))
	for i := range xs { out[i] = float32(xs[i]) }
	return out
}

// writeList prints the name, family, and shape of every catalog function in
// the given family, or of every function if family is "all".
func writeList(w stdio.Writer, family string) error {
	var entries []sphc.Entry
	if strings.ToLower(family) == "all" {
		entries = sphc.Entries()
	} else {
		f, ok := sphc.FamilyFromString(family)
		if !ok {
			return fmt.Errorf(
				"Unrecognized family '%s'. Use 'all' or one of the " +
					"families printed by -List all.", family,
			)
		}
		entries = sphc.ByFamily(f)
	}

	for _, e := range entries {
		fmt.Fprintf(w, "%-12s %-9s %s\n", e.Name, e.Family, e.Shape)
	}
	return nil
}

// writeDemo evaluates three representative functions at fixed angles.
func writeDemo(w stdio.Writer) {
	fmt.Fprintf(w, "%.6g\n", sphc.CF1[float32](0.23, 0.42))
	fmt.Fprintf(w, "%.6g\n", sphc.FornbergF1(0.2, 0.1))
	fmt.Fprintf(w, "%.6g\n", sphc.BeentjesF4[float64](0.5, 1.0))
}
