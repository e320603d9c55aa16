// Package parser turns a credit-card statement export into enriched transactions.
//
// The dialect is fixed once from the header row. Each data row is projected
// into a domain.RawRecord with explicit defaults and then enriched. Rows whose
// date cannot be read are skipped; every other field degrades to a default.
package parser

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"card-wrapped/internal/domain"
	"card-wrapped/internal/logger"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Result is everything one parse produces. Callers replace their previous
// Result wholesale; it is never merged.
type Result struct {
	Dialect      domain.Dialect
	Currency     currency.Unit
	Locale       language.Tag
	Transactions []domain.Transaction

	RowsRead    int
	RowsSkipped int
}

// ParseString parses statement text that is already in memory.
func ParseString(ctx context.Context, text string) (*Result, error) {
	return Parse(ctx, strings.NewReader(text))
}

// Parse reads a whole statement from r in a single pass.
func Parse(ctx context.Context, r io.Reader) (*Result, error) {
	log := logger.FromContext(ctx)

	reader := csv.NewReader(skipBOM(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", domain.ErrFormatNotRecognized)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	d := detectDialect(header)
	if d == nil {
		return nil, fmt.Errorf("%w: headers %q", domain.ErrFormatNotRecognized, header)
	}
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = normalizeHeader(h)
	}
	log.Debug().Str("dialect", string(d.name)).Int("columns", len(columns)).Msg("statement dialect detected")

	result := &Result{
		Dialect:      d.name,
		Currency:     d.currency,
		Locale:       d.locale,
		Transactions: make([]domain.Transaction, 0),
	}

	for index := 0; ; index++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		result.RowsRead++

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			result.RowsSkipped++
			log.Debug().Err(err).Int("row", index).Msg("skipping malformed row")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record %d: %w", index, err)
		}

		tx, err := d.enrich(project(columns, record), index)
		if err != nil {
			result.RowsSkipped++
			log.Debug().Err(err).Int("row", index).Msg("skipping row with unparseable date")
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}

	if len(result.Transactions) == 0 {
		return nil, fmt.Errorf("%w: %d rows read, %d skipped", domain.ErrNoTransactions, result.RowsRead, result.RowsSkipped)
	}

	log.Info().
		Str("dialect", string(result.Dialect)).
		Int("transactions", len(result.Transactions)).
		Int("skipped", result.RowsSkipped).
		Msg("statement parsed")
	return result, nil
}

// project keys a record by header. The first occurrence of a duplicated
// header wins and short records leave trailing columns empty.
func project(columns, record []string) row {
	r := make(row, len(columns))
	for i, c := range columns {
		if _, seen := r[c]; seen {
			continue
		}
		if i < len(record) {
			r[c] = record[i]
		} else {
			r[c] = ""
		}
	}
	return r
}

// enrich derives every normalized field of a transaction from its raw row.
func (d *dialect) enrich(r row, index int) (domain.Transaction, error) {
	raw := d.project(r)

	date, err := d.parseDate(raw.Date)
	if err != nil {
		return domain.Transaction{}, err
	}

	top, sub := SplitCategory(d.category(raw))
	tx := domain.Transaction{
		ID:          transactionID(raw, index),
		RawRecord:   raw,
		ParsedDate:  date,
		Magnitude:   math.Abs(raw.Amount),
		Kind:        Classify(raw.Description, raw.Amount),
		TopCategory: top,
		SubCategory: sub,
		Merchant:    CleanMerchant(raw.Description),
	}
	if d.foreign && raw.ExtendedDetails != "" {
		tx.Foreign = ExtractForeignCurrency(raw.ExtendedDetails)
		tx.Travel = ExtractTravel(raw.ExtendedDetails)
	}
	return tx, nil
}

// transactionID prefers the statement reference and otherwise combines the
// date with the row's position in the source file.
func transactionID(raw domain.RawRecord, index int) string {
	if ref := strings.TrimSpace(strings.ReplaceAll(raw.Reference, "'", "")); ref != "" {
		return ref
	}
	return raw.Date + "-" + strconv.Itoa(index)
}

func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && string(b) == "\xef\xbb\xbf" {
		br.Discard(3)
	}
	return br
}
