package parser

import (
	"regexp"

	"card-wrapped/internal/domain"
)

// paymentPatterns recognise balance settlements in either statement language.
var paymentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)payment\s+received`),
	regexp.MustCompile(`(?i)payment\s*[-–—]\s*thank\s+you`),
	regexp.MustCompile(`(?i)direct\s+debit\s+payment`),
	regexp.MustCompile(`תשלום\s+התקבל|התקבל\s+תשלום`),
}

// Classify decides purchase, refund or payment. The payment check runs first,
// so a negative settlement line is a payment, never a refund.
func Classify(description string, amount float64) domain.TransactionKind {
	for _, p := range paymentPatterns {
		if p.MatchString(description) {
			return domain.KindPayment
		}
	}
	if amount < 0 {
		return domain.KindRefund
	}
	return domain.KindPurchase
}
