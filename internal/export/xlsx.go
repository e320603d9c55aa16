package export

import (
	"fmt"
	"io"

	"card-wrapped/internal/domain"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook, in tab order.
const (
	SheetSummary      = "Summary"
	SheetCategories   = "Categories"
	SheetMerchants    = "Merchants"
	SheetMonthly      = "Monthly"
	SheetForeign      = "Foreign"
	SheetTransactions = "Transactions"
)

const dateLayout = "2006-01-02"

// XLSXWriter renders the report as a workbook with one sheet per view.
type XLSXWriter struct{}

func (XLSXWriter) Write(w io.Writer, report *domain.WrappedReport) error {
	f := excelize.NewFile()
	defer f.Close()

	stats := report.Statistics
	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{SheetSummary, summaryRows(report)},
		{SheetCategories, categoryRows(stats.CategoryTotals)},
		{SheetMerchants, merchantRows(stats.MerchantTotals)},
		{SheetMonthly, monthlyRows(stats.MonthlyTotals)},
		{SheetForeign, foreignRows(stats.ForeignSpend)},
		{SheetTransactions, transactionRows(report.Transactions)},
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.name); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", sheet.name, err)
			}
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet.name, err)
		}
		if err := writeRows(f, sheet.name, sheet.rows); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func summaryRows(report *domain.WrappedReport) [][]interface{} {
	s := report.Statistics
	rows := [][]interface{}{
		{"Field", "Value"},
		{"Run ID", report.RunID},
		{"Dialect", string(report.Dialect)},
		{"Currency", report.Currency},
		{"Total spent", s.TotalSpent},
		{"Total refunded", s.TotalRefunded},
		{"Net spending", s.NetSpending},
		{"Transactions", s.TransactionCount},
		{"Average transaction", s.AverageTransaction},
		{"Unique merchants", s.UniqueMerchants},
	}
	if s.DateRange.Start != nil && s.DateRange.End != nil {
		rows = append(rows,
			[]interface{}{"First transaction", s.DateRange.Start.Format(dateLayout)},
			[]interface{}{"Last transaction", s.DateRange.End.Format(dateLayout)},
		)
	}
	if s.BiggestPurchase != nil {
		rows = append(rows,
			[]interface{}{"Biggest purchase", s.BiggestPurchase.Merchant},
			[]interface{}{"Biggest purchase amount", s.BiggestPurchase.Magnitude},
		)
	}
	if s.MostFrequentMerchant != nil {
		rows = append(rows,
			[]interface{}{"Most frequent merchant", s.MostFrequentMerchant.Merchant},
			[]interface{}{"Most frequent merchant visits", s.MostFrequentMerchant.Visits},
		)
	}
	return rows
}

func categoryRows(totals []domain.CategoryTotal) [][]interface{} {
	rows := [][]interface{}{{"Category", "Total", "Count", "Percentage"}}
	for _, c := range totals {
		rows = append(rows, []interface{}{c.Category, c.Total, c.Count, c.Percentage})
	}
	return rows
}

func merchantRows(totals []domain.MerchantTotal) [][]interface{} {
	rows := [][]interface{}{{"Merchant", "Total", "Visits", "Average"}}
	for _, m := range totals {
		rows = append(rows, []interface{}{m.Merchant, m.Total, m.Visits, m.Average})
	}
	return rows
}

func monthlyRows(totals []domain.MonthlyTotal) [][]interface{} {
	rows := [][]interface{}{{"Month", "Total"}}
	for _, m := range totals {
		rows = append(rows, []interface{}{m.Month, m.Total})
	}
	return rows
}

func foreignRows(summary domain.ForeignSpendSummary) [][]interface{} {
	rows := [][]interface{}{{"Currency", "Name", "Foreign total", "Home total", "Count"}}
	for _, c := range summary.ByCurrency {
		rows = append(rows, []interface{}{c.CurrencyCode, c.CurrencyName, c.ForeignTotal, c.HomeTotal, c.Count})
	}
	rows = append(rows, []interface{}{"Total", "", "", summary.TotalHome, summary.Count})
	rows = append(rows, []interface{}{"Commission", "", "", summary.TotalCommission, ""})
	return rows
}

func transactionRows(txs []domain.Transaction) [][]interface{} {
	rows := [][]interface{}{{"ID", "Date", "Description", "Merchant", "Kind", "Amount", "Category", "Subcategory"}}
	for _, tx := range txs {
		rows = append(rows, []interface{}{
			tx.ID,
			tx.ParsedDate.Format(dateLayout),
			tx.Description,
			tx.Merchant,
			string(tx.Kind),
			tx.Amount,
			tx.TopCategory,
			tx.SubCategory,
		})
	}
	return rows
}
