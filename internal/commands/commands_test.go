package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodnet"
	"github.com/katalvlaran/prodnet/solver"
)

const satisfactory = "../../recipe/testdata/satisfactory.hcl"

// run executes the command tree with args and captures both streams.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errb bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errb)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), errb.String(), err
}

func decodePlan(t *testing.T, out string) jsonPlan {
	t.Helper()
	var plan jsonPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))

	return plan
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, "prodnet v"+prodnet.Version+"\n", out)
}

func TestSolve_Table(t *testing.T) {
	out, _, err := run(t, "solve", satisfactory)
	require.NoError(t, err)

	for _, want := range []string{"satisfactory.hcl: 21 resources, 1 targets", "RESOURCE", "steel_ingot", "5.33", "17.60", "total", "74"} {
		require.Contains(t, out, want)
	}
	require.NotContains(t, out, "copper_ore", "idle resources are hidden")
	require.Less(t, strings.Index(out, "iron_ore"), strings.Index(out, "versatile_framework"), "raw materials first")
}

func TestSolve_JSON(t *testing.T) {
	out, _, err := run(t, "solve", satisfactory, "--format", "json")
	require.NoError(t, err)

	plan := decodePlan(t, out)
	require.Equal(t, satisfactory, plan.Source)
	require.Equal(t, map[string]float64{"versatile_framework": 2}, plan.Targets)
	require.Len(t, plan.Resources, 11)
	require.Equal(t, 74, plan.TotalFactories)

	out, _, err = run(t, "solve", satisfactory, "--format", "json", "--all")
	require.NoError(t, err)
	require.Len(t, decodePlan(t, out).Resources, 21)
}

func TestSolve_TargetsAndVariables(t *testing.T) {
	factories := func(out string) int {
		for _, r := range decodePlan(t, out).Resources {
			if r.Resource == "versatile_framework" {
				return r.Factories
			}
		}
		return -1
	}

	out, _, err := run(t, "solve", satisfactory, "--format=json", "--target", "versatile_framework=4")
	require.NoError(t, err)
	require.Equal(t, 2, factories(out))

	out, _, err = run(t, "solve", satisfactory, "--format=json", "--var", "frameworks=6")
	require.NoError(t, err)
	require.Equal(t, 3, factories(out))

	out, _, err = run(t, "solve", satisfactory, "--format=json", "-t", "concrete=30", "--prune")
	require.NoError(t, err)
	plan := decodePlan(t, out)
	require.Equal(t, map[string]float64{"versatile_framework": 2, "concrete": 30}, plan.Targets)
	require.Len(t, plan.Resources, 13, "concrete and limestone join the plan")
}

func TestSolve_EnvironmentAndConfigFile(t *testing.T) {
	t.Setenv("PRODNET_FORMAT", "json")
	out, _, err := run(t, "solve", satisfactory)
	require.NoError(t, err)
	require.Len(t, decodePlan(t, out).Resources, 11)

	cfg := writeFile(t, "prodnet.yaml", "all: true\n")
	out, _, err = run(t, "solve", satisfactory, "--config", cfg)
	require.NoError(t, err)
	require.Len(t, decodePlan(t, out).Resources, 21)

	// Flags beat the environment.
	out, _, err = run(t, "solve", satisfactory, "--format", "table")
	require.NoError(t, err)
	require.Contains(t, out, "RESOURCE")

	_, _, err = run(t, "solve", satisfactory, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSolve_Singular(t *testing.T) {
	path := writeFile(t, "broken.hcl", `
resource "a" { rate = 30 }
resource "broken" { rate = 0 }
target "a" { rate = 30 }
`)
	_, _, err := run(t, "solve", path)
	require.ErrorIs(t, err, solver.ErrSingularSystem)
	require.Contains(t, err.Error(), `"broken"`)

	// Pruning drops the unrelated zero-rate resource.
	out, _, err := run(t, "solve", path, "--prune", "--format", "json")
	require.NoError(t, err)
	require.Equal(t, 1, decodePlan(t, out).TotalFactories)
}

func TestSolve_InputErrors(t *testing.T) {
	_, _, err := run(t, "solve", satisfactory, "--format", "xml")
	require.ErrorIs(t, err, errUnknownFormat)

	_, _, err = run(t, "solve", satisfactory, "--target", "coal=-1")
	require.ErrorIs(t, err, solver.ErrBadTarget)

	_, _, err = run(t, "solve", satisfactory, "--target", "coal")
	require.ErrorIs(t, err, errBadAssignment)

	_, _, err = run(t, "solve", satisfactory, "--pivot-tolerance", "-1")
	require.Error(t, err)

	_, _, err = run(t, "solve")
	require.Error(t, err)

	_, _, err = run(t, "solve", "missing.hcl")
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSolve_DebugLogging(t *testing.T) {
	_, stderr, err := run(t, "solve", satisfactory, "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, stderr, `"msg":"Loading recipe"`)
	require.Contains(t, stderr, `"msg":"encoded system"`)
}

func TestDot(t *testing.T) {
	out, _, err := run(t, "dot", satisfactory, "--left-to-right")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "digraph \"satisfactory\" {\n  rankdir=LR;\n"))
	require.Equal(t, 23, strings.Count(out, "->"))
}

func TestDot_OutputFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "plan.dot")
	out, _, err := run(t, "dot", satisfactory, "-o", dest)
	require.NoError(t, err)
	require.Contains(t, out, "✔ Wrote "+dest)
	require.NotContains(t, out, "digraph")

	body, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(body), "digraph \"satisfactory\" {\n"))
	require.Equal(t, 23, strings.Count(string(body), "->"))

	_, _, err = run(t, "dot", satisfactory, "-o", filepath.Join(t.TempDir(), "missing", "plan.dot"))
	require.Error(t, err)
}

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments("var", []string{"a=1", " b = x ", "a=2", "c="})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"a": "2", "b": "x", "c": ""}, got)

	_, err = parseAssignments("var", []string{"=1"})
	require.ErrorIs(t, err, errBadAssignment)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger("error", logFormatJSON, &buf)
	require.NoError(t, err)
	l.Warn("hidden")
	l.Error("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	l, err = newLogger("INFO", logFormatText, &buf)
	require.NoError(t, err)
	l.Debug("hidden")
	l.Info("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "level=INFO")

	_, err = newLogger("bogus", logFormatText, &buf)
	require.ErrorIs(t, err, errBadLogSetting)
	_, err = newLogger("info", "xml", &buf)
	require.ErrorIs(t, err, errBadLogSetting)
}

func TestRoot_BadLogSettings(t *testing.T) {
	_, _, err := run(t, "version", "--log-level", "loud")
	require.ErrorIs(t, err, errBadLogSetting)
	_, _, err = run(t, "version", "--log-format", "yaml")
	require.ErrorIs(t, err, errBadLogSetting)
}
