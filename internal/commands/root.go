// Package commands implements the prodnet command tree.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/prodnet"
	"github.com/katalvlaran/prodnet/internal/ctxlog"
)

// app carries per-invocation state shared by subcommands.
type app struct {
	v *viper.Viper
}

// newRootCmd assembles the command tree. A fresh tree per invocation keeps
// flag state out of package globals.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "prodnet",
		Short: "prodnet - production network requirement solver",
		Long: `prodnet reads a production network (HCL or YAML recipe), solves the
linear system that balances every resource, and reports how many production
units each resource needs to sustain the requested output rates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			a.v = v

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			logger, err := newLogger(v.GetString(keyLogLevel), v.GetString(keyLogFormat), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cmd.SetContext(ctxlog.WithLogger(ctx, logger))
			logger.Debug("Configuration loaded", "config", v.ConfigFileUsed())

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "config file (default ./prodnet.yaml)")
	pf.String(keyLogLevel, defaultLogLevel, "log level: debug, info, warn, error")
	pf.String(keyLogFormat, logFormatText, "log format: text or json")

	root.AddCommand(newSolveCmd(a), newDotCmd(a), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "prodnet v%s\n", prodnet.Version)
		},
	}
}

// Execute runs the root command.
func Execute(ctx context.Context, args []string) error {
	root := newRootCmd()
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}
