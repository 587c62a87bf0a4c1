package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/prodnet/core"
	"github.com/katalvlaran/prodnet/internal/ctxlog"
	"github.com/katalvlaran/prodnet/internal/output"
	"github.com/katalvlaran/prodnet/matrix"
	"github.com/katalvlaran/prodnet/recipe"
	"github.com/katalvlaran/prodnet/solver"
)

// Output formats of the solve command.
const (
	formatTable = "table"
	formatJSON  = "json"
)

func newSolveCmd(a *app) *cobra.Command {
	var targets, vars []string

	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Compute the production units needed for the targets",
		Long: `Solve loads a recipe, balances every resource and prints the fractional
number of production units per resource together with the rounded-up count
of factories to build. Targets from the file can be overridden or extended
with --target.`,
		Example: `  prodnet solve factory.hcl
  prodnet solve factory.yaml --target steel_beam=30 --all
  prodnet solve factory.hcl --var frameworks=5 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args[0], targets, vars)
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&targets, "target", "t", nil, "target rate as name=rate (repeatable, overrides the file)")
	f.StringArrayVar(&vars, "var", nil, "recipe variable as name=value (repeatable)")
	f.String(keyFormat, formatTable, "output format: table or json")
	f.Bool(keyAll, false, "list every resource, including idle ones")
	f.Bool(keyPrune, false, "solve only the resources feeding the targets")
	f.Bool(keySummedEdges, false, "sum repeated inputs instead of rejecting them")
	f.Float64(keyPivotTol, matrix.DefaultEpsilon, "relative pivot tolerance of the LU factorization")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, path string, targetFlags, varFlags []string) error {
	logger := ctxlog.FromContext(cmd.Context())

	format := a.v.GetString(keyFormat)
	if format != formatTable && format != formatJSON {
		return fmt.Errorf("%q: %w", format, errUnknownFormat)
	}
	tol := a.v.GetFloat64(keyPivotTol)
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return fmt.Errorf("--%s %g: must be finite and non-negative", keyPivotTol, tol)
	}

	g, book, err := a.loadGraph(cmd, path, varFlags)
	if err != nil {
		return err
	}
	overrides, err := parseTargets(targetFlags)
	if err != nil {
		return err
	}
	targets := recipe.MergeTargets(book.TargetMap(), overrides)
	if len(targets) == 0 {
		logger.Warn("No targets given; every unit count will be zero", "path", path)
	}

	opts := []solver.Option{solver.WithLogger(logger), solver.WithPivotTolerance(tol)}
	if a.v.GetBool(keyPrune) {
		opts = append(opts, solver.WithPruning())
	}
	sol, err := solver.Solve(g, targets, opts...)
	if err != nil {
		var se *solver.SingularSystemError[string]
		if errors.As(err, &se) && se.Column >= 0 {
			return fmt.Errorf("%s: no unique plan, check the rate of %q and cycles through it: %w", path, se.Resource, err)
		}
		return fmt.Errorf("%s: %w", path, err)
	}

	rows := planRows(logger, g, sol, a.v.GetBool(keyAll))
	logger.Info("Solved production network", "path", path, "resources", g.NodeCount(), "targets", len(targets))

	if format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), path, targets, rows)
	}

	output.Info(cmd.OutOrStdout(), fmt.Sprintf("%s: %d resources, %d targets", path, g.NodeCount(), len(targets)))

	return output.Plan(cmd.OutOrStdout(), rows)
}

// loadGraph reads the recipe at path and builds its network.
func (a *app) loadGraph(cmd *cobra.Command, path string, varFlags []string) (*core.Graph[string], *recipe.Book, error) {
	vars, err := parseAssignments("var", varFlags)
	if err != nil {
		return nil, nil, err
	}
	book, err := recipe.LoadFile(cmd.Context(), path, vars)
	if err != nil {
		return nil, nil, err
	}

	var gopts []core.GraphOption
	if a.v.GetBool(keySummedEdges) {
		gopts = append(gopts, core.WithSummedEdges())
	}
	g, err := book.Graph(gopts...)
	if err != nil {
		return nil, nil, err
	}

	return g, book, nil
}

// planRows lists resources raw-materials first when the network is acyclic,
// otherwise in declaration order. Idle resources are skipped unless all.
func planRows(logger *slog.Logger, g *core.Graph[string], sol *solver.Solution[string], all bool) []output.Row {
	order, err := g.TopologicalOrder()
	if err != nil {
		logger.Debug("Network is cyclic, listing in declaration order", "error", err)
		order = g.Resources()
	}

	rows := make([]output.Row, 0, len(order))
	for _, r := range order {
		units, _ := sol.Units(r)
		factories, _ := sol.Factories(r)
		if !all && factories <= 0 {
			continue
		}
		rows = append(rows, output.Row{Resource: r, Units: units, Factories: factories})
	}

	return rows
}

type jsonRow struct {
	Resource  string  `json:"resource"`
	Units     float64 `json:"units"`
	Factories int     `json:"factories"`
}

type jsonPlan struct {
	Source         string             `json:"source"`
	Targets        map[string]float64 `json:"targets"`
	Resources      []jsonRow          `json:"resources"`
	TotalFactories int                `json:"total_factories"`
}

func writeJSON(w io.Writer, path string, targets solver.Targets[string], rows []output.Row) error {
	plan := jsonPlan{
		Source:    path,
		Targets:   targets,
		Resources: make([]jsonRow, 0, len(rows)),
	}
	for _, r := range rows {
		plan.Resources = append(plan.Resources, jsonRow(r))
		if r.Factories > 0 {
			plan.TotalFactories += r.Factories
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(plan)
}
