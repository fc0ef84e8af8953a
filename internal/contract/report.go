package contract

import (
	"sort"
	"time"
)

// StatusCounts tallies records per traffic-light state. Green adds Sent and
// Safe together, matching how the two states collapse on screen.
type StatusCounts struct {
	Sent     int `json:"sent"`
	Safe     int `json:"safe"`
	Warning  int `json:"warning"`
	Critical int `json:"critical"`
	Unknown  int `json:"unknown"`
	Green    int `json:"green"`
}

// CategoryCount is one bar of a frequency chart.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// MonthCount is one point of the starts-per-month series.
type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// Dashboard is the aggregate view behind the control-board page: status
// tallies, value sums and the chart series.
type Dashboard struct {
	ProcessCode     string          `json:"process_code"`
	Total           int             `json:"total"`
	Statuses        StatusCounts    `json:"statuses"`
	EstimatedTotal  float64         `json:"estimated_total"`
	ContractedTotal float64         `json:"contracted_total"`
	ByStatus        []CategoryCount `json:"by_status"`
	ByFundingSource []CategoryCount `json:"by_funding_source"`
	ByModality      []CategoryCount `json:"by_modality"`
	StartsByMonth   []MonthCount    `json:"starts_by_month"`
}

// BuildDashboard aggregates the record set for the control board. A
// non-empty processCode other than "all" narrows the view to that process.
// Value sums treat unparseable amounts as zero; records whose start date
// cannot be parsed are left out of the monthly series entirely.
func BuildDashboard(records []Record, processCode string, today time.Time) Dashboard {
	d := Dashboard{ProcessCode: processCode}
	if processCode != "" && processCode != "all" {
		narrowed := make([]Record, 0, len(records))
		for i := range records {
			if records[i].ProcessCode == processCode {
				narrowed = append(narrowed, records[i])
			}
		}
		records = narrowed
	}
	d.Total = len(records)

	starts := make(map[string]int)
	for i := range records {
		r := &records[i]
		switch Evaluate(r, today) {
		case StatusSent:
			d.Statuses.Sent++
		case StatusSafe:
			d.Statuses.Safe++
		case StatusWarning:
			d.Statuses.Warning++
		case StatusCritical:
			d.Statuses.Critical++
		default:
			d.Statuses.Unknown++
		}
		if v, ok := ParseAmount(r.EstimatedValue); ok {
			d.EstimatedTotal += v
		}
		if v, ok := ParseAmount(r.ContractedValue); ok {
			d.ContractedTotal += v
		}
		if t := ParseDate(r.StartDate); t != nil {
			starts[t.Format("2006-01")]++
		}
	}
	d.Statuses.Green = d.Statuses.Sent + d.Statuses.Safe

	d.ByStatus = frequency(records, "process_status")
	d.ByFundingSource = frequency(records, "funding_source")
	d.ByModality = frequency(records, "selection_modality")

	d.StartsByMonth = make([]MonthCount, 0, len(starts))
	for m, n := range starts {
		d.StartsByMonth = append(d.StartsByMonth, MonthCount{Month: m, Count: n})
	}
	sort.Slice(d.StartsByMonth, func(i, j int) bool {
		return d.StartsByMonth[i].Month < d.StartsByMonth[j].Month
	})
	return d
}

// frequency counts records per observed value of a field, most frequent
// first, ties broken by value.
func frequency(records []Record, field string) []CategoryCount {
	spec, ok := FieldByKey(field)
	if !ok {
		return nil
	}
	counts := make(map[string]int)
	for i := range records {
		counts[spec.Get(&records[i])]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, CategoryCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// ExpiringContract is one row of the expiration alert listing.
type ExpiringContract struct {
	ID            int64  `json:"id"`
	Status        Status `json:"status"`
	Indicator     string `json:"indicator"`
	DaysRemaining int    `json:"days_remaining"`
	EndDate       string `json:"end_date"`
	ProcessCode   string `json:"process_code"`
	ProcessName   string `json:"process_name"`
	Provider      string `json:"provider"`
	Supervisor    string `json:"supervisor"`
}

// ExpiringContracts lists the records in Critical or Warning state, most
// urgent first.
func ExpiringContracts(records []Record, today time.Time) []ExpiringContract {
	out := []ExpiringContract{}
	for i := range records {
		r := &records[i]
		status := Evaluate(r, today)
		if status != StatusCritical && status != StatusWarning {
			continue
		}
		days, _ := DaysRemaining(r, today)
		out = append(out, ExpiringContract{
			ID:            r.ID,
			Status:        status,
			Indicator:     status.Indicator(),
			DaysRemaining: days,
			EndDate:       FormatDateOnly(r.EndDate),
			ProcessCode:   r.ProcessCode,
			ProcessName:   r.ProcessName,
			Provider:      r.Provider,
			Supervisor:    r.Supervisor,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DaysRemaining < out[j].DaysRemaining })
	return out
}
