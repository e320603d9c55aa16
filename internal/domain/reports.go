package domain

import "time"

// CategoryTotal is the net spend of one top-level category.
type CategoryTotal struct {
	Category   string  `json:"category" yaml:"category"`
	Total      float64 `json:"total" yaml:"total"`
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// MerchantTotal is the net spend at one cleaned merchant name.
type MerchantTotal struct {
	Merchant string  `json:"merchant" yaml:"merchant"`
	Total    float64 `json:"total" yaml:"total"`
	Visits   int     `json:"visits" yaml:"visits"`
	Average  float64 `json:"average" yaml:"average"`
}

// MonthlyTotal is the net spend of one calendar month, keyed "YYYY-MM".
type MonthlyTotal struct {
	Month string  `json:"month" yaml:"month"`
	Total float64 `json:"total" yaml:"total"`
}

// CurrencyTotal breaks foreign spend down by settlement currency.
type CurrencyTotal struct {
	CurrencyCode string  `json:"currencyCode" yaml:"currencyCode"`
	CurrencyName string  `json:"currencyName" yaml:"currencyName"`
	ForeignTotal float64 `json:"foreignTotal" yaml:"foreignTotal"`
	HomeTotal    float64 `json:"homeTotal" yaml:"homeTotal"`
	Count        int     `json:"count" yaml:"count"`
}

// ForeignSpendSummary covers purchases carrying foreign-currency detail.
type ForeignSpendSummary struct {
	TotalHome       float64         `json:"totalHome" yaml:"totalHome"`
	TotalCommission float64         `json:"totalCommission" yaml:"totalCommission"`
	Count           int             `json:"count" yaml:"count"`
	ByCurrency      []CurrencyTotal `json:"byCurrency" yaml:"byCurrency"`
}

// DateRange spans every transaction in the statement, payments included.
// Both ends are nil for an empty statement.
type DateRange struct {
	Start *time.Time `json:"start" yaml:"start"`
	End   *time.Time `json:"end" yaml:"end"`
}

// WrappedStatistics is the immutable snapshot every view is rendered from.
type WrappedStatistics struct {
	TotalSpent           float64             `json:"totalSpent" yaml:"totalSpent"`
	TotalRefunded        float64             `json:"totalRefunded" yaml:"totalRefunded"`
	NetSpending          float64             `json:"netSpending" yaml:"netSpending"`
	TransactionCount     int                 `json:"transactionCount" yaml:"transactionCount"`
	AverageTransaction   float64             `json:"averageTransaction" yaml:"averageTransaction"`
	BiggestPurchase      *Transaction        `json:"biggestPurchase" yaml:"biggestPurchase"`
	MostFrequentMerchant *MerchantTotal      `json:"mostFrequentMerchant" yaml:"mostFrequentMerchant"`
	CategoryTotals       []CategoryTotal     `json:"categoryTotals" yaml:"categoryTotals"`
	MerchantTotals       []MerchantTotal     `json:"merchantTotals" yaml:"merchantTotals"`
	MonthlyTotals        []MonthlyTotal      `json:"monthlyTotals" yaml:"monthlyTotals"`
	UniqueMerchants      int                 `json:"uniqueMerchants" yaml:"uniqueMerchants"`
	DateRange            DateRange           `json:"dateRange" yaml:"dateRange"`
	ForeignSpend         ForeignSpendSummary `json:"foreignSpend" yaml:"foreignSpend"`
}

// WrappedReport is the single replace-only result of one uploaded statement.
type WrappedReport struct {
	RunID        string            `json:"runId" yaml:"runId"`
	Dialect      Dialect           `json:"dialect" yaml:"dialect"`
	Currency     string            `json:"currency" yaml:"currency"`
	Locale       string            `json:"locale" yaml:"locale"`
	Transactions []Transaction     `json:"transactions" yaml:"transactions"`
	Statistics   WrappedStatistics `json:"statistics" yaml:"statistics"`
}
