package contract

import (
	"strings"
	"time"
)

// Status is the traffic-light state of a contract. Sent and Safe render the
// same green indicator but stay distinct so reports can tell a manually
// acknowledged alert from a contract that is simply far from expiring.
type Status string

const (
	StatusUnknown  Status = "unknown"
	StatusCritical Status = "critical"
	StatusWarning  Status = "warning"
	StatusSafe     Status = "safe"
	StatusSent     Status = "sent"
)

const (
	criticalHorizonDays = 30
	warningHorizonDays  = 90
)

// affirmative values of the manually entered "Alerta Enviada" field.
var affirmative = map[string]struct{}{
	"si": {}, "sí": {}, "s": {}, "true": {}, "1": {},
}

// Evaluate computes the traffic-light status of a record against the given
// reference date. A marked-sent alert wins over any date arithmetic; a
// missing or unparseable end date degrades to Unknown.
func Evaluate(r *Record, today time.Time) Status {
	if _, ok := affirmative[strings.ToLower(strings.TrimSpace(r.AlertSent))]; ok {
		return StatusSent
	}
	end := ParseDate(r.EndDate)
	if end == nil {
		return StatusUnknown
	}
	// Already-expired contracts (negative days) stay Critical.
	switch days := DaysBetween(today, *end); {
	case days <= criticalHorizonDays:
		return StatusCritical
	case days <= warningHorizonDays:
		return StatusWarning
	default:
		return StatusSafe
	}
}

// DaysRemaining returns the calendar days between the reference date and the
// record's end date, or false when the end date cannot be parsed.
func DaysRemaining(r *Record, today time.Time) (int, bool) {
	end := ParseDate(r.EndDate)
	if end == nil {
		return 0, false
	}
	return DaysBetween(today, *end), true
}

// DaysBetween counts calendar days from one date to another, ignoring the
// time-of-day portion of both.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// Indicator renders the status as the colored dot shown in tables and
// charts. Sent and Safe collapse to the same green here.
func (s Status) Indicator() string {
	switch s {
	case StatusSent, StatusSafe:
		return "🟢"
	case StatusWarning:
		return "🟡"
	case StatusCritical:
		return "🔴"
	default:
		return "⚪"
	}
}
