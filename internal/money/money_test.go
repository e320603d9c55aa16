package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "plain", input: "59.25", want: 59.25},
		{name: "negative", input: "-5.00", want: -5},
		{name: "grouping comma", input: "1,234.50", want: 1234.5},
		{name: "surrounding space", input: "  12.00 ", want: 12},
		{name: "currency symbol", input: "£7.99", want: 7.99},
		{name: "shekel symbol", input: "₪ 120.90", want: 120.9},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount_DefaultsToZero(t *testing.T) {
	assert.Equal(t, 0.0, ParseAmount(""))
	assert.Equal(t, 0.0, ParseAmount("n/a"))
	assert.Equal(t, -12.5, ParseAmount("-12.50"))
}

func TestRound2_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 2.68, Round2(2.675))
	assert.Equal(t, -2.68, Round2(-2.675))
	assert.Equal(t, 0.3, Round2(0.1+0.2))
	assert.Equal(t, 10.0, Round2(9.995))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 33.3, Round1(100.0/3.0))
	assert.Equal(t, 66.7, Round1(200.0/3.0))
	assert.Equal(t, 0.0, Round1(0))
}

func TestFormatter(t *testing.T) {
	f := NewFormatter(currency.GBP, language.BritishEnglish)

	assert.Equal(t, "GBP", f.Currency())
	assert.Contains(t, f.Format(1234.5), "1,234.50")
	assert.Contains(t, f.Percent(12.34), "12.3")
}

func TestParseFormatter(t *testing.T) {
	f, err := ParseFormatter("ILS", "he-IL")
	require.NoError(t, err)
	assert.Equal(t, "ILS", f.Currency())
	assert.Contains(t, f.Format(99.9), "99.90")

	_, err = ParseFormatter("XXXX", "en-GB")
	assert.Error(t, err)

	_, err = ParseFormatter("GBP", "not a locale")
	assert.Error(t, err)
}
