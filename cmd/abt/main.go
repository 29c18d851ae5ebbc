package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/vito/abt/pkg/ioctx"
)

// Config holds the application configuration
type Config struct {
	Debug   bool
	Freshen string
	Verbose bool
	NoColor bool
}

func main() {
	ctx := context.Background()
	ctx = ioctx.StdoutToContext(ctx, os.Stdout)
	ctx = ioctx.StderrToContext(ctx, os.Stderr)

	if err := fang.Execute(ctx, rootCmd(),
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var cfg Config

	cmd := &cobra.Command{
		Use:   "abt",
		Short: "Inspect abstract binding trees",
		Long: `abt runs scenario documents against the abstract binding tree engine,
checking printing, alpha-equivalence, free variables and substitution.`,
		Example: `  # Check a scenario document
  abt check lambda.toml

  # Check with primed names instead of numbered ones
  abt check --freshen primes lambda.toml

  # Show the name chosen for x when x and x1 are taken
  abt fresh --used x,x1 x`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(setupLogging(cmd.Context(), cfg))
		},
	}

	cmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfg.Freshen, "freshen", "", "Freshening strategy (digits or primes)")

	cmd.AddCommand(checkCmd(&cfg))
	cmd.AddCommand(freshCmd(&cfg))
	return cmd
}

func setupLogging(ctx context.Context, cfg Config) context.Context {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(ioctx.StderrFromContext(ctx), &slog.HandlerOptions{
		Level: level,
	})
	return ioctx.LoggerToContext(ctx, slog.New(handler))
}
