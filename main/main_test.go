package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sphc "github.com/MitchesD/spherical-collection"
	"github.com/MitchesD/spherical-collection/io"
)

func TestWriteDemo(t *testing.T) {
	buf := &bytes.Buffer{}
	writeDemo(buf)
	assert.Equal(t, "1.10203\n1.20039\n0.222222\n", buf.String())
}

func TestGetModeName(t *testing.T) {
	a, b := "", ""
	vars := map[string]*string{"A": &a, "B": &b}

	_, err := getModeName(vars)
	assert.Error(t, err)

	a = "x"
	name, err := getModeName(vars)
	require.NoError(t, err)
	assert.Equal(t, "A", name)

	b = "y"
	_, err = getModeName(vars)
	assert.Error(t, err)
}

func TestWriteList(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, writeList(buf, "all"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, len(sphc.Names()))
	assert.Equal(t, []string{"fornberg_f1", "Fornberg", "Smooth"}, strings.Fields(lines[0]))

	buf.Reset()
	require.NoError(t, writeList(buf, "beentjes"))
	assert.Equal(t,
		[]string{"beentjes_f3", "Beentjes", "Ramp"},
		strings.Fields(strings.Split(buf.String(), "\n")[0]),
	)
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))

	assert.Error(t, writeList(buf, "lebedev"))
}

func evaluateString(t *testing.T, cfg string) []float64 {
	con, err := io.ParseEvaluateConfig(cfg)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, evaluate(buf, con))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.True(t, strings.HasPrefix(lines[0], "#"))

	vals := []float64{}
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		require.Len(t, fields, 3)
		v, err := strconv.ParseFloat(fields[2], 64)
		require.NoError(t, err)
		vals = append(vals, v)
	}
	return vals
}

func TestEvaluate(t *testing.T) {
	vals := evaluateString(t, `[Evaluate]
Function = fornberg_f1
Theta = 0.2
Phi = 0.1
Theta = 1.1
Phi = 2.3
Threads = 2`)
	require.Len(t, vals, 2)
	assert.Equal(t, sphc.FornbergF1(0.2, 0.1), vals[0])
	assert.Equal(t, sphc.FornbergF1(1.1, 2.3), vals[1])
}

func TestEvaluateFloat32(t *testing.T) {
	vals := evaluateString(t, `[Evaluate]
Function = cf_f1
Precision = 32
Theta = 0.23
Phi = 0.42`)
	require.Len(t, vals, 1)
	theta, phi := 0.23, 0.42
	assert.Equal(t, float64(sphc.CF1(float32(theta), float32(phi))), vals[0])
}

func TestEvaluateMainOutputFile(t *testing.T) {
	dir := t.TempDir()
	con, err := io.ParseEvaluateConfig(`[Evaluate]
Function = beentjes_f4
Theta = 0.5
Phi = 1.0
Threads = 1`)
	require.NoError(t, err)
	con.Output = filepath.Join(dir, "out.txt")
	con.LogFile = filepath.Join(dir, "log.txt")

	require.NoError(t, evaluateMain(con))

	out, err := os.ReadFile(con.Output)
	require.NoError(t, err)
	assert.Contains(t, string(out), "0.22222222222222221")

	logged, err := os.ReadFile(con.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "Evaluating beentjes_f4 at 1 points")
}
