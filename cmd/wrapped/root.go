package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"card-wrapped/internal/config"
	"card-wrapped/internal/domain"
	"card-wrapped/internal/gateway"
	"card-wrapped/internal/logger"
	"card-wrapped/internal/usecase"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app holds what every subcommand shares once flags are parsed.
type app struct {
	cfgFile string
	verbose bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "wrapped",
		Short: "Card Wrapped - a year-in-review of your credit card statement",
		Long: `Card Wrapped reads a credit card statement CSV export, recognises which
issuer produced it, and summarises where the money went.

Supported exports:
  amex-uk       American Express UK (DD/MM/YYYY dates, GBP)
  isracard-he   Isracard Hebrew export (Hebrew month names, ILS)

Example Usage:
  wrapped stats activity.csv                       # Headline figures in the terminal
  wrapped stats activity.csv -f xlsx -o out.xlsx   # Workbook with one sheet per view
  wrapped transactions activity.csv --kind refund  # Enriched refund lines as JSON`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Path to a YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	root.AddCommand(newStatsCmd(a), newTransactionsCmd(a), newVersionCmd())
	return root
}

// setup loads the configuration and puts a logger into the command context.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Level()
	if a.verbose {
		level = zerolog.DebugLevel
	}
	log := logger.New(level, cfg.LogFormat)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.WithContext(ctx, log))
	return nil
}

func (a *app) wrap(ctx context.Context, path string) (*domain.WrappedReport, error) {
	csvRepo := gateway.NewCSVStatementRepository()
	wrappedUseCase := usecase.NewWrappedUseCase(csvRepo)
	return wrappedUseCase.Wrap(ctx, path)
}

// writeOutput runs write against stdout, or against a new file at path when one is given.
func writeOutput(stdout io.Writer, path string, write func(w io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file %s: %w", path, err)
	}
	return nil
}
