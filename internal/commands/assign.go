package commands

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/prodnet/solver"
)

var (
	errBadAssignment = errors.New("expected name=value")
	errUnknownFormat = errors.New("unknown output format")
)

// parseAssignments splits repeated name=value flags. Later entries win.
func parseAssignments(flag string, items []string) (map[string]string, error) {
	out := make(map[string]string, len(items))
	for _, item := range items {
		name, value, ok := strings.Cut(item, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("--%s %q: %w", flag, item, errBadAssignment)
		}
		out[name] = strings.TrimSpace(value)
	}

	return out, nil
}

// parseTargets turns --target name=rate flags into solver targets.
func parseTargets(items []string) (solver.Targets[string], error) {
	raw, err := parseAssignments("target", items)
	if err != nil {
		return nil, err
	}
	out := make(solver.Targets[string], len(raw))
	for name, value := range raw {
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
			return nil, fmt.Errorf("--target %s=%s: %w", name, value, solver.ErrBadTarget)
		}
		out[name] = rate
	}

	return out, nil
}
