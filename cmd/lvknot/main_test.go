package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknot/atlas"
	"github.com/katalvlaran/lvknot/internal/config"
	"github.com/katalvlaran/lvknot/render"
)

// execute runs the CLI with a private config directory unless args name one.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if !containsFlag(args, "--config") {
		args = append([]string{"--config", t.TempDir()}, args...)
	}
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag || strings.HasPrefix(a, flag+"=") {
			return true
		}
	}

	return false
}

func TestJones(t *testing.T) {
	out, _, err := execute(t, "jones", "trefoil")
	require.NoError(t, err)
	assert.Equal(t, "t + t^3 - t^4\n", out)

	out, _, err = execute(t, "jones", "hopf", "--parallel", "2")
	require.NoError(t, err)
	assert.Equal(t, "-t^(1/2) - t^(5/2)\n", out)

	_, _, err = execute(t, "jones", "no-such-knot")
	assert.ErrorIs(t, err, atlas.ErrUnknownName)

	_, _, err = execute(t, "jones")
	assert.Error(t, err)
}

func TestJones_File(t *testing.T) {
	doc, err := render.YAML(atlas.Trefoil())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "trefoil.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, _, err := execute(t, "jones", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "t + t^3 - t^4\n", out)

	_, _, err = execute(t, "jones", "trefoil", "-f", path)
	assert.Error(t, err)
	_, _, err = execute(t, "jones", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestJones_Metrics(t *testing.T) {
	out, _, err := execute(t, "jones", "trefoil", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, `lvknot_jones_steps_total{kind="crossing"}`)
	assert.Contains(t, out, `lvknot_jones_duration_seconds_count{result="ok"}`)
	assert.Contains(t, out, "# TYPE lvknot_jones_steps_total counter\n")
	assert.Contains(t, out, "# TYPE lvknot_jones_duration_seconds histogram\n")
	assert.Contains(t, out, `lvknot_jones_duration_seconds_bucket{result="ok",le="+Inf"}`)
}

func TestAtlas(t *testing.T) {
	out, _, err := execute(t, "atlas")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(atlas.Names(), "\n")+"\n", out)

	out, _, err = execute(t, "atlas", "hopf")
	require.NoError(t, err)
	assert.Equal(t, render.Text(atlas.Hopf()), out)
}

func TestRender_Formats(t *testing.T) {
	out, _, err := execute(t, "render", "hopf", "--format", "mermaid")
	require.NoError(t, err)
	assert.Equal(t, render.Mermaid(atlas.Hopf()), out)

	want, err := render.YAML(atlas.Hopf())
	require.NoError(t, err)
	out, _, err = execute(t, "render", "hopf", "--format=yaml")
	require.NoError(t, err)
	assert.Equal(t, want, out)

	_, _, err = execute(t, "render", "hopf", "--format", "svg")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lvknot.yaml"),
		[]byte("format: mermaid\nlogLevel: debug\n"), 0o644))

	out, errOut, err := execute(t, "--config", dir, "render", "hopf")
	require.NoError(t, err)
	assert.Equal(t, render.Mermaid(atlas.Hopf()), out)
	assert.Contains(t, errOut, "configuration loaded")

	out, _, err = execute(t, "--config", dir, "render", "hopf", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, render.Text(atlas.Hopf()), out)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "lvknot.yaml"), []byte("format: png\n"), 0o644))
	_, _, err = execute(t, "--config", dir, "atlas")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestChord(t *testing.T) {
	out, _, err := execute(t, "chord", "--word=0,1,0,1", "--jones")
	require.NoError(t, err)
	assert.Equal(t, "-1 + t + t^3 - t^4\n", out)

	out, _, err = execute(t, "chord", "--word=0,1,0,1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "crossings=8 "), out)
	assert.Contains(t, out, "singular=2")

	out, errOut, err := execute(t, "chord", "--word=0,0", "--log-level", "warn")
	require.NoError(t, err)
	assert.Equal(t, "crossings=0 strands=1 writhe=0 singular=0\nstrand 0 loop\n", out)
	assert.Contains(t, errOut, "degenerate chord word")
}

func TestBraid(t *testing.T) {
	out, _, err := execute(t, "braid", "--strands", "2", "--word=1")
	require.NoError(t, err)
	assert.Equal(t, "| |\n\\ /\n / \n/ \\\n| |\n", out)

	out, _, err = execute(t, "braid", "--word=1,1,1", "--jones")
	require.NoError(t, err)
	assert.Equal(t, "t + t^3 - t^4\n", out)

	out, _, err = execute(t, "braid", "--word=1,-1", "--simplify")
	require.NoError(t, err)
	assert.Equal(t, "| |\n", out)

	out, _, err = execute(t, "braid", "--word=1,-1", "--jones")
	require.NoError(t, err)
	assert.Equal(t, "-t^(-1/2) - t^(1/2)\n", out)

	_, _, err = execute(t, "braid", "--strands", "2", "--word=2")
	assert.Error(t, err)
}
