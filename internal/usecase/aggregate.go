package usecase

import (
	"sort"
	"time"

	"card-wrapped/internal/domain"
	"card-wrapped/internal/money"
)

// topN caps the category and merchant rankings.
const topN = 10

// monthKeyLayout formats the calendar month a transaction is grouped under.
const monthKeyLayout = "2006-01"

type categoryAccumulator struct {
	name  string
	net   float64
	count int
}

type merchantAccumulator struct {
	name   string
	net    float64
	visits int
}

type monthAccumulator struct {
	key string
	net float64
}

type currencyAccumulator struct {
	code, name    string
	foreign, home float64
	count         int
}

// aggregation collects every group in one pass. Groups remember the order in
// which they were first seen so that ties sort deterministically.
type aggregation struct {
	charged, refunded  float64
	purchases, refunds int
	biggest            *domain.Transaction
	start, end         time.Time
	dated              bool

	foreignHome       float64
	foreignCommission float64
	foreignCount      int

	categories    map[string]*categoryAccumulator
	categoryOrder []*categoryAccumulator
	merchants     map[string]*merchantAccumulator
	merchantOrder []*merchantAccumulator
	months        map[string]*monthAccumulator
	monthOrder    []*monthAccumulator
	currencies    map[string]*currencyAccumulator
	currencyOrder []*currencyAccumulator
}

// Aggregate computes the statistics snapshot for a list of transactions.
// It does not modify its input and never fails; an empty list yields a
// zero-valued snapshot.
func Aggregate(transactions []domain.Transaction) domain.WrappedStatistics {
	a := &aggregation{
		categories: make(map[string]*categoryAccumulator),
		merchants:  make(map[string]*merchantAccumulator),
		months:     make(map[string]*monthAccumulator),
		currencies: make(map[string]*currencyAccumulator),
	}
	for i := range transactions {
		a.add(&transactions[i])
	}
	return a.snapshot()
}

func (a *aggregation) add(tx *domain.Transaction) {
	// The date range describes the statement period, so payments count here.
	if !a.dated || tx.ParsedDate.Before(a.start) {
		a.start = tx.ParsedDate
	}
	if !a.dated || tx.ParsedDate.After(a.end) {
		a.end = tx.ParsedDate
	}
	a.dated = true

	if tx.IsPayment() {
		return
	}

	signed := tx.Magnitude
	if tx.IsRefund() {
		signed = -tx.Magnitude
		a.refunded += tx.Magnitude
		a.refunds++
	} else {
		a.charged += tx.Magnitude
		a.purchases++
		if a.biggest == nil || tx.Magnitude > a.biggest.Magnitude {
			a.biggest = tx
		}
		if tx.Foreign != nil {
			a.addForeign(tx)
		}
	}

	c, ok := a.categories[tx.TopCategory]
	if !ok {
		c = &categoryAccumulator{name: tx.TopCategory}
		a.categories[tx.TopCategory] = c
		a.categoryOrder = append(a.categoryOrder, c)
	}
	c.net += signed
	c.count++

	m, ok := a.merchants[tx.Merchant]
	if !ok {
		m = &merchantAccumulator{name: tx.Merchant}
		a.merchants[tx.Merchant] = m
		a.merchantOrder = append(a.merchantOrder, m)
	}
	m.net += signed
	if tx.IsPurchase() {
		m.visits++
	}

	key := tx.ParsedDate.Format(monthKeyLayout)
	mo, ok := a.months[key]
	if !ok {
		mo = &monthAccumulator{key: key}
		a.months[key] = mo
		a.monthOrder = append(a.monthOrder, mo)
	}
	mo.net += signed
}

func (a *aggregation) addForeign(tx *domain.Transaction) {
	a.foreignHome += tx.Magnitude
	a.foreignCommission += tx.Foreign.Commission
	a.foreignCount++

	code := tx.Foreign.CurrencyCode
	cur, ok := a.currencies[code]
	if !ok {
		cur = &currencyAccumulator{code: code, name: tx.Foreign.CurrencyName}
		a.currencies[code] = cur
		a.currencyOrder = append(a.currencyOrder, cur)
	}
	cur.foreign += tx.Foreign.ForeignAmount
	cur.home += tx.Magnitude
	cur.count++
}

// snapshot applies filtering, sorting and rounding. Nothing is rounded before this point.
func (a *aggregation) snapshot() domain.WrappedStatistics {
	stats := domain.WrappedStatistics{
		TotalSpent:       money.Round2(a.charged),
		TotalRefunded:    money.Round2(a.refunded),
		NetSpending:      money.Round2(a.charged - a.refunded),
		TransactionCount: a.purchases + a.refunds,
		UniqueMerchants:  len(a.merchants),
		CategoryTotals:   a.categoryTotals(),
		MonthlyTotals:    a.monthlyTotals(),
		ForeignSpend:     a.foreignSummary(),
	}
	if a.purchases > 0 {
		stats.AverageTransaction = money.Round2(a.charged / float64(a.purchases))
	}
	if a.biggest != nil {
		biggest := *a.biggest
		stats.BiggestPurchase = &biggest
	}
	if a.dated {
		start, end := a.start, a.end
		stats.DateRange = domain.DateRange{Start: &start, End: &end}
	}

	merchants := a.merchantTotals()
	if len(merchants) > 0 {
		frequent := merchants[0]
		for _, m := range merchants[1:] {
			if m.Visits > frequent.Visits {
				frequent = m
			}
		}
		stats.MostFrequentMerchant = &frequent
	}
	if len(merchants) > topN {
		merchants = merchants[:topN]
	}
	stats.MerchantTotals = merchants

	return stats
}

func (a *aggregation) categoryTotals() []domain.CategoryTotal {
	positive := make([]*categoryAccumulator, 0, len(a.categoryOrder))
	var denominator float64
	for _, c := range a.categoryOrder {
		if c.net > 0 {
			positive = append(positive, c)
			denominator += c.net
		}
	}
	sort.SliceStable(positive, func(i, j int) bool { return positive[i].net > positive[j].net })
	if len(positive) > topN {
		positive = positive[:topN]
	}

	totals := make([]domain.CategoryTotal, 0, len(positive))
	for _, c := range positive {
		var pct float64
		if denominator > 0 {
			pct = c.net / denominator * 100
		}
		totals = append(totals, domain.CategoryTotal{
			Category:   c.name,
			Total:      money.Round2(c.net),
			Count:      c.count,
			Percentage: money.Round1(pct),
		})
	}
	return totals
}

// merchantTotals returns every merchant with positive net spend, ranked.
// The caller truncates after picking the most frequent merchant.
func (a *aggregation) merchantTotals() []domain.MerchantTotal {
	positive := make([]*merchantAccumulator, 0, len(a.merchantOrder))
	for _, m := range a.merchantOrder {
		if m.net > 0 {
			positive = append(positive, m)
		}
	}
	sort.SliceStable(positive, func(i, j int) bool { return positive[i].net > positive[j].net })

	totals := make([]domain.MerchantTotal, 0, len(positive))
	for _, m := range positive {
		var avg float64
		if m.visits > 0 {
			avg = m.net / float64(m.visits)
		}
		totals = append(totals, domain.MerchantTotal{
			Merchant: m.name,
			Total:    money.Round2(m.net),
			Visits:   m.visits,
			Average:  money.Round2(avg),
		})
	}
	return totals
}

func (a *aggregation) monthlyTotals() []domain.MonthlyTotal {
	months := make([]*monthAccumulator, len(a.monthOrder))
	copy(months, a.monthOrder)
	sort.Slice(months, func(i, j int) bool { return months[i].key < months[j].key })

	totals := make([]domain.MonthlyTotal, 0, len(months))
	for _, m := range months {
		net := m.net
		if net < 0 {
			net = 0
		}
		totals = append(totals, domain.MonthlyTotal{Month: m.key, Total: money.Round2(net)})
	}
	return totals
}

func (a *aggregation) foreignSummary() domain.ForeignSpendSummary {
	currencies := make([]*currencyAccumulator, len(a.currencyOrder))
	copy(currencies, a.currencyOrder)
	sort.SliceStable(currencies, func(i, j int) bool { return currencies[i].home > currencies[j].home })

	byCurrency := make([]domain.CurrencyTotal, 0, len(currencies))
	for _, c := range currencies {
		byCurrency = append(byCurrency, domain.CurrencyTotal{
			CurrencyCode: c.code,
			CurrencyName: c.name,
			ForeignTotal: money.Round2(c.foreign),
			HomeTotal:    money.Round2(c.home),
			Count:        c.count,
		})
	}
	return domain.ForeignSpendSummary{
		TotalHome:       money.Round2(a.foreignHome),
		TotalCommission: money.Round2(a.foreignCommission),
		Count:           a.foreignCount,
		ByCurrency:      byCurrency,
	}
}
