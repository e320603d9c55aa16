package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// hebrewMonths is the fixed month-name table for month-name dates.
var hebrewMonths = map[string]time.Month{
	"ינואר":   time.January,
	"פברואר":  time.February,
	"מרץ":     time.March,
	"אפריל":   time.April,
	"מאי":     time.May,
	"יוני":    time.June,
	"יולי":    time.July,
	"אוגוסט":  time.August,
	"ספטמבר":  time.September,
	"אוקטובר": time.October,
	"נובמבר":  time.November,
	"דצמבר":   time.December,
}

// parseNumericDate parses "DD/MM/YYYY".
func parseNumericDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("date '%s': expected day/month/year", s)
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, fmt.Errorf("date '%s': invalid day: %w", s, err)
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, fmt.Errorf("date '%s': invalid month: %w", s, err)
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, fmt.Errorf("date '%s': invalid year: %w", s, err)
	}
	return calendarDate(s, year, time.Month(month), day)
}

// parseMonthNameDate parses "D <month name> YYYY".
func parseMonthNameDate(s string) (time.Time, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return time.Time{}, fmt.Errorf("date '%s': expected day monthname year", s)
	}
	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("date '%s': invalid day: %w", s, err)
	}
	month, ok := hebrewMonths[fields[1]]
	if !ok {
		return time.Time{}, fmt.Errorf("date '%s': unknown month '%s'", s, fields[1])
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("date '%s': invalid year: %w", s, err)
	}
	return calendarDate(s, year, month, day)
}

// calendarDate rejects values time.Date would silently normalize, such as 31/02.
func calendarDate(s string, year int, month time.Month, day int) (time.Time, error) {
	if month < time.January || month > time.December || day < 1 {
		return time.Time{}, fmt.Errorf("date '%s': out of range", s)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, fmt.Errorf("date '%s': no such day", s)
	}
	return t, nil
}
