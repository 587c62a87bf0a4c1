package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/prodnet/core"
	"github.com/katalvlaran/prodnet/dot"
	"github.com/katalvlaran/prodnet/internal/output"
)

func newDotCmd(a *app) *cobra.Command {
	var (
		vars []string
		dest string
	)

	cmd := &cobra.Command{
		Use:   "dot FILE",
		Short: "Print the production network as a Graphviz digraph",
		Example: `  prodnet dot factory.hcl | dot -Tsvg > factory.svg
  prodnet dot factory.hcl -o factory.dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			g, _, err := a.loadGraph(cmd, path, vars)
			if err != nil {
				return err
			}

			opts := []dot.Option[string]{
				dot.WithName[string](strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))),
			}
			if a.v.GetBool(keyLeftToRight) {
				opts = append(opts, dot.WithLeftToRight[string]())
			}

			if dest == "" {
				return dot.Write(cmd.OutOrStdout(), g, opts...)
			}

			return writeDotFile(cmd, dest, g, opts)
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&vars, "var", nil, "recipe variable as name=value (repeatable)")
	f.StringVarP(&dest, "output", "o", "", "write the digraph to this file instead of stdout")
	f.Bool(keyLeftToRight, false, "lay the graph out left to right")
	f.Bool(keySummedEdges, false, "sum repeated inputs instead of rejecting them")

	return cmd
}

// writeDotFile writes the digraph of g to dest and reports the result.
func writeDotFile(cmd *cobra.Command, dest string, g *core.Graph[string], opts []dot.Option[string]) error {
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if err := dot.Write(f, g, opts...); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%s: %w", dest, err)
	}
	output.Success(cmd.OutOrStdout(), fmt.Sprintf("Wrote %s", dest))

	return nil
}
