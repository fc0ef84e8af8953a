package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234567.89", "$ 1,234,567"},
		{"1500.75", "$ 1,500"},
		{"0", "$ 0"},
		{"", ""},
		{"   ", ""},
		{"abc", "abc"},
		{"-2500.9", "$ -2,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.in), "input %q", tt.in)
	}
}

func TestFormatInteger(t *testing.T) {
	assert.Equal(t, "2024", FormatInteger("2024.0"))
	assert.Equal(t, "1500", FormatInteger("1500.75"))
	assert.Equal(t, "", FormatInteger(""))
	assert.Equal(t, "CTO-117", FormatInteger("CTO-117"))
}

func TestFormatDateOnly(t *testing.T) {
	assert.Equal(t, "2024-03-05", FormatDateOnly("2024-3-5"))
	assert.Equal(t, "2024-03-05", FormatDateOnly("2024-03-05 10:30:00"))
	assert.Equal(t, "", FormatDateOnly(""))
	assert.Equal(t, "por definir", FormatDateOnly("por definir"))
}

func TestParseDateLenient(t *testing.T) {
	for _, in := range []string{"2024-03-05", "2024-3-5", "03/05/2024", "March 5, 2024"} {
		d := ParseDate(in)
		require.NotNil(t, d, "input %q", in)
		assert.Equal(t, "2024-03-05", d.Format("2006-01-02"), "input %q", in)
	}

	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("  "))
	assert.Nil(t, ParseDate("sin fecha"))
}

func TestParseAmount(t *testing.T) {
	v, ok := ParseAmount("1500.75")
	assert.True(t, ok)
	assert.Equal(t, 1500.75, v)

	_, ok = ParseAmount("")
	assert.False(t, ok)
	_, ok = ParseAmount("N/A")
	assert.False(t, ok)
}

func TestDisplayValues(t *testing.T) {
	r := Record{
		ProcessCode:    "BYS-001",
		EstimatedValue: "1234567.89",
		EndDate:        "2026-1-7",
		ContractNumber: "117.0",
		AlertSent:      "no",
	}
	display := DisplayValues(&r)
	assert.Equal(t, "BYS-001", display["process_code"])
	assert.Equal(t, "$ 1,234,567", display["estimated_value"])
	assert.Equal(t, "2026-01-07", display["end_date"])
	assert.Equal(t, "117", display["contract_number"])
	assert.Equal(t, "no", display["alert_sent"])
	assert.Len(t, display, len(Fields))
}
