package main

import (
	"fmt"
	"io"

	"card-wrapped/internal/domain"
	"card-wrapped/internal/export"

	"github.com/spf13/cobra"
)

func newTransactionsCmd(a *app) *cobra.Command {
	var format, output, kind string

	cmd := &cobra.Command{
		Use:   "transactions <statement.csv>",
		Short: "List the enriched transactions of a statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder, err := export.NewEncoder(format)
			if err != nil {
				return err
			}

			filter, err := kindFilter(kind)
			if err != nil {
				return err
			}

			report, err := a.wrap(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			selected := make([]domain.Transaction, 0, len(report.Transactions))
			for _, tx := range report.Transactions {
				if filter(tx) {
					selected = append(selected, tx)
				}
			}

			return writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
				return encoder.Encode(w, selected)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", export.FormatJSON, "Output format: json|yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVar(&kind, "kind", "", "Only list purchase, refund or payment lines")
	return cmd
}

func kindFilter(kind string) (func(domain.Transaction) bool, error) {
	switch domain.TransactionKind(kind) {
	case "":
		return func(domain.Transaction) bool { return true }, nil
	case domain.KindPurchase, domain.KindRefund, domain.KindPayment:
		want := domain.TransactionKind(kind)
		return func(tx domain.Transaction) bool { return tx.Kind == want }, nil
	}
	return nil, fmt.Errorf("unknown transaction kind '%s'", kind)
}
