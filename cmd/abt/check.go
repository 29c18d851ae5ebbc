package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vito/abt/pkg/abt"
	"github.com/vito/abt/pkg/ioctx"
	"github.com/vito/abt/pkg/scenario"
)

func checkCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Run the checks in scenario documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := ioctx.LoggerFromContext(ctx)
			stdout := ioctx.StdoutFromContext(ctx)

			failed := 0
			for _, path := range args {
				doc, err := scenario.Load(path)
				if err != nil {
					return err
				}
				engine, err := doc.Engine(cfg.Freshen, abt.WithLogger(logger))
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				logger.Debug("running scenario", "file", path, "checks", len(doc.Checks))
				results, err := scenario.Run(ctx, doc, engine)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				n, err := scenario.Report(stdout, filepath.Base(path), results, scenario.ReportOptions{
					Color:   !cfg.NoColor,
					Verbose: cfg.Verbose,
				})
				if err != nil {
					return err
				}
				failed += n
			}
			if failed > 0 {
				return fmt.Errorf("%d checks failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Dump the full definition of failing checks")
	cmd.Flags().BoolVar(&cfg.NoColor, "no-color", false, "Disable styled output")
	return cmd
}
