package contract

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/dustin/go-humanize"
)

// ParseDate parses free-text date input in the varied formats operators type
// (ISO, slashed, month names). Returns nil on empty or unparseable input,
// never an error.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return nil
	}
	return &t
}

// ParseAmount parses a stored text value as a decimal amount.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatCurrency renders a stored amount as "$ 1,234,567", truncating
// decimals toward zero. Empty input stays empty; unparseable input is
// returned unchanged.
func FormatCurrency(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	v, ok := ParseAmount(s)
	if !ok {
		return s
	}
	return "$ " + humanize.Comma(int64(v))
}

// FormatInteger renders a stored amount as a plain integer, same
// truncation and passthrough rules as FormatCurrency.
func FormatInteger(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	v, ok := ParseAmount(s)
	if !ok {
		return s
	}
	return strconv.FormatInt(int64(v), 10)
}

// FormatDateOnly renders only the date portion of a stored date value as
// YYYY-MM-DD. Empty stays empty, unparseable is returned unchanged.
func FormatDateOnly(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	t := ParseDate(s)
	if t == nil {
		return s
	}
	return t.Format("2006-01-02")
}

// DisplayValues renders every field of a record in its display form, keyed
// by field key: currency for the monetary fields, bare integers for the
// integer-labeled ones, date-only for dates, raw text otherwise.
func DisplayValues(r *Record) map[string]string {
	out := make(map[string]string, len(Fields))
	for _, spec := range Fields {
		raw := spec.Get(r)
		switch {
		case spec.Kind == KindDate:
			out[spec.Key] = FormatDateOnly(raw)
		case spec.Kind == KindNumeric:
			out[spec.Key] = FormatCurrency(raw)
		case spec.ExportNumber:
			out[spec.Key] = FormatInteger(raw)
		default:
			out[spec.Key] = raw
		}
	}
	return out
}
