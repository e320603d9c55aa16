package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"card-wrapped/internal/export"
	"card-wrapped/internal/logger"

	"github.com/spf13/cobra"
)

var errBinaryToTerminal = errors.New("xlsx output needs --output")

func newStatsCmd(a *app) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "stats <statement.csv>",
		Short: "Summarise a statement",
		Long: fmt.Sprintf(`Parse the statement, aggregate it and print the report.

Formats: %s. The default comes from the configuration (text unless set).`, strings.Join(export.Formats(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.OutputFormat
			}
			writer, err := export.New(format)
			if err != nil {
				return err
			}
			if _, ok := writer.(export.XLSXWriter); ok && output == "" {
				return errBinaryToTerminal
			}

			report, err := a.wrap(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			log := logger.FromContext(cmd.Context())
			log.Debug().Str("format", format).Str("output", output).Msg("writing report")

			return writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
				return writer.Write(w, report)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: "+strings.Join(export.Formats(), "|"))
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}
