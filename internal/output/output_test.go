package output

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusLines(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, "solved")
	Error(&buf, "singular")
	Info(&buf, "2 targets")

	out := buf.String()
	require.Contains(t, out, "✔ solved")
	require.Contains(t, out, "✘ singular")
	require.Contains(t, out, "2 targets")
	require.Equal(t, 3, strings.Count(out, "\n"))
}

func TestPlan(t *testing.T) {
	var buf bytes.Buffer
	err := Plan(&buf, []Row{
		{Resource: "iron_ore", Units: 17.6, Factories: 18},
		{Resource: "steel_ingot", Units: 16.0 / 3, Factories: 6},
		{Resource: "copper_ore", Units: 0, Factories: 0},
	})
	require.NoError(t, err)

	out := buf.String()
	for _, want := range []string{"RESOURCE", "FACTORIES", "iron_ore", "17.60", "5.33", "copper_ore", "0.00", "total", "24"} {
		require.Contains(t, out, want)
	}
	require.Less(t, strings.Index(out, "iron_ore"), strings.Index(out, "steel_ingot"), "row order is kept")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPlan_WriterError(t *testing.T) {
	require.Error(t, Plan(failWriter{}, nil))
}

// TestTerminalWidth: buffers and regular files are not terminals.
func TestTerminalWidth(t *testing.T) {
	require.Zero(t, terminalWidth(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "plan")
	require.NoError(t, err)
	defer f.Close()
	require.Zero(t, terminalWidth(f))
}
