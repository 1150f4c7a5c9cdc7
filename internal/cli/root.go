package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"lifeviz/internal/app"
	"lifeviz/internal/core"
	_ "lifeviz/pkg/life"
)

// Execute runs the lifeviz CLI.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)
	cfg := app.NewConfig()

	root := &cobra.Command{
		Use:          "lifeviz",
		Short:        "Interactive Game of Life viewer with 2D and 3D presentations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
			if configPath != "" {
				if err := cfg.LoadFile(configPath, cmd.Flags()); err != nil {
					return err
				}
			}
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd.Context(), cfg)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML file with default settings")
	cfg.Bind(root.PersistentFlags())

	root.AddCommand(newSnapshotCmd(cfg))
	root.AddCommand(newEnginesCmd())
	return root
}

func newEnginesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "List registered automaton engines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(core.Engines()))
			for name := range core.Engines() {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

// newUniverse builds the configured engine and seeds it when supported.
func newUniverse(cfg *app.Config) (core.Universe, error) {
	u, err := core.NewUniverse(cfg.Engine, cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	if s, ok := u.(core.Seeder); ok {
		s.Seed(cfg.Seed)
	}
	return u, nil
}
