package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb"
	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/config"
)

const sample = "Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n"

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func runArgs(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvPath, "")
	var out, errOut bytes.Buffer
	err := run(args, strings.NewReader(stdin), &out, &errOut)

	return out.String(), errOut.String(), err
}

func TestRun_Parts(t *testing.T) {
	input := writeFile(t, "input", sample)

	out, banner, err := runArgs(t, "", input)
	require.NoError(t, err)
	assert.Equal(t, "31\n", out)
	assert.Contains(t, banner, "=== Solving summit ===")

	out, _, err = runArgs(t, "", "2", input)
	require.NoError(t, err)
	assert.Equal(t, "29\n", out)
}

func TestRun_Stdin(t *testing.T) {
	out, _, err := runArgs(t, sample, "1", "-")
	require.NoError(t, err)
	assert.Equal(t, "31\n", out)
}

func TestRun_Render(t *testing.T) {
	out, stderr, err := runArgs(t, sample, "-render", "-color", "never", "1", "-")
	require.NoError(t, err)
	assert.Equal(t, "31\n", out)
	assert.Contains(t, stderr, "..>>>>>^\n")
}

func TestRun_ColorAlways(t *testing.T) {
	prev := color.TermColorLevel()
	t.Cleanup(func() { color.ForceSetColorLevel(prev) })

	_, stderr, err := runArgs(t, sample, "-render", "-color", "always", "1", "-")
	require.NoError(t, err)
	assert.Contains(t, stderr, "\x1b[")
	assert.Contains(t, color.ClearCode(stderr), "..>>>>>^\n")
}

func TestRun_Help(t *testing.T) {
	out, usage, err := runArgs(t, "", "-h")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, usage, "-query")
}

func TestRun_Locale(t *testing.T) {
	dir, err := filepath.Abs(filepath.Join("..", "..", "locales"))
	require.NoError(t, err)
	t.Cleanup(func() { gotext.Configure("", "en_US", "hillclimb") })

	cfgPath := writeFile(t, "hillclimb.yaml", "locale: {dir: \""+filepath.ToSlash(dir)+"\", lang: es}\n")
	input := writeFile(t, "input", sample)

	out, banner, err := runArgs(t, "", "-config", cfgPath, input)
	require.NoError(t, err)
	assert.Equal(t, "31\n", out)
	assert.Contains(t, banner, "=== Resolviendo summit ===")

	_, _, err = runArgs(t, "Sbcd\nbcdE\n", "-config", cfgPath, "1", "-")
	require.ErrorIs(t, err, hillclimb.ErrNoPathFound)
	assert.Contains(t, describe(err), "no existe ninguna ruta")
}

func TestRun_ConfigEnv(t *testing.T) {
	cfgPath := writeFile(t, "hillclimb.yaml", "max_expansions: 3\n")
	input := writeFile(t, "input", sample)

	t.Setenv(config.EnvPath, cfgPath)
	var out, errOut bytes.Buffer
	err := run([]string{input}, strings.NewReader(""), &out, &errOut)
	assert.ErrorIs(t, err, astar.ErrExpansionLimit)
	assert.Empty(t, out.String())
}

func TestRun_ConfigQuery(t *testing.T) {
	cfgPath := writeFile(t, "hillclimb.yaml", `
markers: {"@": a, "^": z}
queries:
  - name: peak
    mode: ascent
    start: "@"
    target: {marker: "^"}
`)
	input := writeFile(t, "map.txt", strings.NewReplacer("S", "@", "E", "^").Replace(sample))

	out, banner, err := runArgs(t, "", "-config", cfgPath, "-query", "peak", input)
	require.NoError(t, err)
	assert.Equal(t, "31\n", out)
	assert.Contains(t, banner, "peak")
}

func TestRun_Errors(t *testing.T) {
	input := writeFile(t, "input", sample)

	_, _, err := runArgs(t, "", "3", input)
	assert.ErrorContains(t, err, "not a valid part")

	_, _, err = runArgs(t, "", "1", input, "extra")
	assert.ErrorContains(t, err, "too many arguments")

	_, _, err = runArgs(t, "", "-query", "everest", input)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = runArgs(t, "", "1", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = runArgs(t, "Sab\nbcdE\n", "1", "-")
	assert.ErrorIs(t, err, hillclimb.ErrMalformedInput)

	_, _, err = runArgs(t, "Sbcd\nbcdE\n", "1", "-")
	assert.ErrorIs(t, err, hillclimb.ErrNoPathFound)
	assert.Contains(t, describe(err), "no route exists")

	_, _, err = runArgs(t, sample, "-render", "-color", "sepia", "1", "-")
	assert.ErrorContains(t, err, "sepia")
}

func TestPositional(t *testing.T) {
	part, input, err := positional(nil)
	require.NoError(t, err)
	assert.Equal(t, "1", part)
	assert.Equal(t, "input", input)

	part, input, err = positional([]string{"2"})
	require.NoError(t, err)
	assert.Equal(t, "2", part)
	assert.Equal(t, "input", input)

	part, input, err = positional([]string{"map.txt"})
	require.NoError(t, err)
	assert.Equal(t, "1", part)
	assert.Equal(t, "map.txt", input)
}

func TestDescribe(t *testing.T) {
	assert.Contains(t, describe(hillclimb.ErrMarkerNotFound), "marker missing")
	assert.Contains(t, describe(hillclimb.ErrMalformedInput), "cannot read map")
	assert.Equal(t, "plain", describe(assertErr("plain")))
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
