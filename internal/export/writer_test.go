package export_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"card-wrapped/internal/domain"
	"card-wrapped/internal/export"
	"card-wrapped/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

func sampleReport() *domain.WrappedReport {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	txs := []domain.Transaction{
		{
			ID:          "AT1",
			RawRecord:   domain.RawRecord{Date: "10/03/2025", Description: "ZARA UK", Amount: 10},
			ParsedDate:  day,
			Magnitude:   10,
			Kind:        domain.KindPurchase,
			TopCategory: "Shopping",
			SubCategory: "Clothing",
			Merchant:    "ZARA UK",
		},
		{
			ID:          "AT2",
			RawRecord:   domain.RawRecord{Date: "11/03/2025", Description: "ZARA UK", Amount: 20},
			ParsedDate:  day.AddDate(0, 0, 1),
			Magnitude:   20,
			Kind:        domain.KindPurchase,
			TopCategory: "Shopping",
			SubCategory: "Clothing",
			Merchant:    "ZARA UK",
		},
		{
			ID:          "AT3",
			RawRecord:   domain.RawRecord{Date: "12/03/2025", Description: "ZARA UK", Amount: -5},
			ParsedDate:  day.AddDate(0, 0, 2),
			Magnitude:   5,
			Kind:        domain.KindRefund,
			TopCategory: "Shopping",
			SubCategory: "Clothing",
			Merchant:    "ZARA UK",
		},
		{
			ID: "AT4",
			RawRecord: domain.RawRecord{
				Date:            "13/03/2025",
				Description:     "CAFE DE FLORE",
				Amount:          8.98,
				ExtendedDetails: "Foreign Spend Amount: 10.50 EURO Commission Amount: 0.25",
			},
			ParsedDate:  day.AddDate(0, 0, 3),
			Magnitude:   8.98,
			Kind:        domain.KindPurchase,
			TopCategory: "Restaurants",
			SubCategory: "Dining",
			Merchant:    "CAFE DE FLORE",
			Foreign:     &domain.ForeignCurrencyDetail{ForeignAmount: 10.50, CurrencyName: "EURO", CurrencyCode: "EUR", Commission: 0.25},
		},
	}
	return &domain.WrappedReport{
		RunID:        "5f0c6a2e-0d0b-4a8e-9d43-0c8b1f3f2a10",
		Dialect:      domain.DialectAmexUK,
		Currency:     "GBP",
		Locale:       "en-GB",
		Transactions: txs,
		Statistics:   usecase.Aggregate(txs),
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		want    export.Writer
		wantErr bool
	}{
		{format: "json", want: export.JSONWriter{}},
		{format: " YAML ", want: export.YAMLWriter{}},
		{format: "yml", want: export.YAMLWriter{}},
		{format: "xlsx", want: export.XLSXWriter{}},
		{format: "text", want: export.TextWriter{}},
		{format: "pdf", wantErr: true},
		{format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := export.New(tt.format)
			if tt.wantErr {
				assert.True(t, errors.Is(err, export.ErrUnknownFormat))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewEncoder(t *testing.T) {
	_, err := export.NewEncoder("json")
	assert.NoError(t, err)
	_, err = export.NewEncoder("yaml")
	assert.NoError(t, err)
	_, err = export.NewEncoder("xlsx")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.JSONWriter{}.Write(&buf, sampleReport()))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "GBP", got["currency"])
	assert.Equal(t, "amex-uk", got["dialect"])

	stats := got["statistics"].(map[string]interface{})
	assert.Equal(t, 38.98, stats["totalSpent"])
	assert.Equal(t, 5.0, stats["totalRefunded"])

	txs := got["transactions"].([]interface{})
	require.Len(t, txs, 4)
	first := txs[0].(map[string]interface{})
	// raw record fields sit beside the derived ones
	assert.Equal(t, "ZARA UK", first["description"])
	assert.Equal(t, "purchase", first["kind"])
	assert.NotContains(t, first, "foreign")
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.YAMLWriter{}.Write(&buf, sampleReport()))

	var got struct {
		Currency     string                   `yaml:"currency"`
		Transactions []map[string]interface{} `yaml:"transactions"`
		Statistics   struct {
			NetSpending    float64 `yaml:"netSpending"`
			CategoryTotals []struct {
				Category string  `yaml:"category"`
				Total    float64 `yaml:"total"`
			} `yaml:"categoryTotals"`
		} `yaml:"statistics"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "GBP", got.Currency)
	assert.Equal(t, 33.98, got.Statistics.NetSpending)
	require.Len(t, got.Statistics.CategoryTotals, 2)
	assert.Equal(t, "Shopping", got.Statistics.CategoryTotals[0].Category)
	assert.Equal(t, 25.0, got.Statistics.CategoryTotals[0].Total)
	require.Len(t, got.Transactions, 4)
	assert.Equal(t, "ZARA UK", got.Transactions[0]["description"])
}

func TestXLSXWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.XLSXWriter{}.Write(&buf, sampleReport()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		export.SheetSummary,
		export.SheetCategories,
		export.SheetMerchants,
		export.SheetMonthly,
		export.SheetForeign,
		export.SheetTransactions,
	}, f.GetSheetList())

	raw := excelize.Options{RawCellValue: true}

	categories, err := f.GetRows(export.SheetCategories, raw)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, []string{"Category", "Total", "Count", "Percentage"}, categories[0])
	assert.Equal(t, "Shopping", categories[1][0])
	assert.Equal(t, "25", categories[1][1])
	assert.Equal(t, "3", categories[1][2])

	monthly, err := f.GetRows(export.SheetMonthly, raw)
	require.NoError(t, err)
	require.Len(t, monthly, 2)
	assert.Equal(t, []string{"2025-03", "33.98"}, monthly[1])

	foreign, err := f.GetRows(export.SheetForeign, raw)
	require.NoError(t, err)
	assert.Equal(t, "EUR", foreign[1][0])

	txs, err := f.GetRows(export.SheetTransactions, raw)
	require.NoError(t, err)
	assert.Len(t, txs, 5)
	assert.Equal(t, "refund", txs[3][4])

	summary, err := f.GetRows(export.SheetSummary, raw)
	require.NoError(t, err)
	assert.Contains(t, summary, []string{"Currency", "GBP"})
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.TextWriter{}.Write(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Net spending")
	assert.Contains(t, out, "33.98")
	assert.Contains(t, out, "Top categories")
	assert.Contains(t, out, "Shopping")
	assert.Contains(t, out, "Foreign spend")
	assert.Contains(t, out, "2025-03-10 to 2025-03-13")
}

func TestTextWriter_InvalidCurrency(t *testing.T) {
	report := sampleReport()
	report.Currency = "??"

	err := export.TextWriter{}.Write(&bytes.Buffer{}, report)
	assert.Error(t, err)
}
