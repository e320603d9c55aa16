package export

import (
	"fmt"
	"io"
	"text/tabwriter"

	"card-wrapped/internal/domain"
	"card-wrapped/internal/money"
)

// TextWriter prints a human readable summary in the report's own currency and locale.
type TextWriter struct{}

func (TextWriter) Write(w io.Writer, report *domain.WrappedReport) error {
	f, err := money.ParseFormatter(report.Currency, report.Locale)
	if err != nil {
		return fmt.Errorf("failed to build formatter: %w", err)
	}
	s := report.Statistics

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Card Wrapped\t%s (%s)\n", report.Dialect, f.Currency())
	if s.DateRange.Start != nil && s.DateRange.End != nil {
		fmt.Fprintf(tw, "Period\t%s to %s\n", s.DateRange.Start.Format(dateLayout), s.DateRange.End.Format(dateLayout))
	}
	fmt.Fprintf(tw, "Total spent\t%s\n", f.Format(s.TotalSpent))
	fmt.Fprintf(tw, "Refunded\t%s\n", f.Format(s.TotalRefunded))
	fmt.Fprintf(tw, "Net spending\t%s\n", f.Format(s.NetSpending))
	fmt.Fprintf(tw, "Transactions\t%d\n", s.TransactionCount)
	fmt.Fprintf(tw, "Average purchase\t%s\n", f.Format(s.AverageTransaction))
	fmt.Fprintf(tw, "Unique merchants\t%d\n", s.UniqueMerchants)
	if s.BiggestPurchase != nil {
		fmt.Fprintf(tw, "Biggest purchase\t%s, %s on %s\n",
			s.BiggestPurchase.Merchant, f.Format(s.BiggestPurchase.Magnitude), s.BiggestPurchase.ParsedDate.Format(dateLayout))
	}
	if s.MostFrequentMerchant != nil {
		fmt.Fprintf(tw, "Most visited\t%s, %d visits\n", s.MostFrequentMerchant.Merchant, s.MostFrequentMerchant.Visits)
	}

	if len(s.CategoryTotals) > 0 {
		fmt.Fprintln(tw, "\nTop categories")
		for _, c := range s.CategoryTotals {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", c.Category, f.Format(c.Total), f.Percent(c.Percentage))
		}
	}
	if len(s.MerchantTotals) > 0 {
		fmt.Fprintln(tw, "\nTop merchants")
		for _, m := range s.MerchantTotals {
			fmt.Fprintf(tw, "  %s\t%s\t%d visits\n", m.Merchant, f.Format(m.Total), m.Visits)
		}
	}
	if len(s.MonthlyTotals) > 0 {
		fmt.Fprintln(tw, "\nBy month")
		for _, m := range s.MonthlyTotals {
			fmt.Fprintf(tw, "  %s\t%s\n", m.Month, f.Format(m.Total))
		}
	}
	if s.ForeignSpend.Count > 0 {
		fmt.Fprintln(tw, "\nForeign spend")
		for _, c := range s.ForeignSpend.ByCurrency {
			fmt.Fprintf(tw, "  %s\t%.2f %s\t%s\n", c.CurrencyName, c.ForeignTotal, c.CurrencyCode, f.Format(c.HomeTotal))
		}
		fmt.Fprintf(tw, "  Commission\t\t%s\n", f.Format(s.ForeignSpend.TotalCommission))
	}

	return tw.Flush()
}
