package domain

import "time"

// Dialect identifies which statement export format a file was recognised as.
type Dialect string

const (
	// DialectAmexUK has numeric DD/MM/YYYY dates, an explicit Category column
	// and an Extended Details blob.
	DialectAmexUK Dialect = "amex-uk"
	// DialectIsracardHE has "D <month name> YYYY" Hebrew dates and no category column.
	DialectIsracardHE Dialect = "isracard-he"
)

// TransactionKind is the three-way classification of a statement line.
type TransactionKind string

const (
	KindPurchase TransactionKind = "purchase"
	KindRefund   TransactionKind = "refund"
	KindPayment  TransactionKind = "payment"
)

// OtherCategory is used whenever a category label is missing or unusable.
const OtherCategory = "Other"

// RawRecord is one statement row as it appears in the file, before interpretation.
type RawRecord struct {
	Date            string  `json:"date" yaml:"date"`
	Description     string  `json:"description" yaml:"description"`
	Amount          float64 `json:"amount" yaml:"amount"` // negative for refunds and payments
	ExtendedDetails string  `json:"extendedDetails,omitempty" yaml:"extendedDetails,omitempty"`
	StatementAs     string  `json:"appearsOnStatementAs,omitempty" yaml:"appearsOnStatementAs,omitempty"`
	Address         string  `json:"address,omitempty" yaml:"address,omitempty"`
	Reference       string  `json:"reference,omitempty" yaml:"reference,omitempty"`
	Category        string  `json:"category,omitempty" yaml:"category,omitempty"`
}

// ForeignCurrencyDetail describes a transaction settled in a non-home currency.
type ForeignCurrencyDetail struct {
	ForeignAmount float64 `json:"foreignAmount" yaml:"foreignAmount"`
	CurrencyName  string  `json:"currencyName" yaml:"currencyName"`
	CurrencyCode  string  `json:"currencyCode" yaml:"currencyCode"`
	Commission    float64 `json:"commission" yaml:"commission"`
	ExchangeRate  float64 `json:"exchangeRate" yaml:"exchangeRate"`
}

// TravelDetail holds airline ticket metadata found in the extended details.
type TravelDetail struct {
	PassengerName string `json:"passengerName,omitempty" yaml:"passengerName,omitempty"`
	TicketNumber  string `json:"ticketNumber,omitempty" yaml:"ticketNumber,omitempty"`
	DepartureDate string `json:"departureDate,omitempty" yaml:"departureDate,omitempty"`
	Route         string `json:"route,omitempty" yaml:"route,omitempty"`
	Airline       string `json:"airline,omitempty" yaml:"airline,omitempty"`
}

// Transaction is the normalized unit every summary is computed from.
type Transaction struct {
	ID        string `json:"id" yaml:"id"`
	RawRecord `yaml:",inline"`

	ParsedDate  time.Time       `json:"parsedDate" yaml:"parsedDate"`
	Magnitude   float64         `json:"magnitude" yaml:"magnitude"`
	Kind        TransactionKind `json:"kind" yaml:"kind"`
	TopCategory string          `json:"topCategory" yaml:"topCategory"`
	SubCategory string          `json:"subCategory" yaml:"subCategory"`
	Merchant    string          `json:"merchant" yaml:"merchant"`

	Foreign *ForeignCurrencyDetail `json:"foreign,omitempty" yaml:"foreign,omitempty"`
	Travel  *TravelDetail          `json:"travel,omitempty" yaml:"travel,omitempty"`
}

func (t Transaction) IsPurchase() bool { return t.Kind == KindPurchase }
func (t Transaction) IsRefund() bool   { return t.Kind == KindRefund }
func (t Transaction) IsPayment() bool  { return t.Kind == KindPayment }
