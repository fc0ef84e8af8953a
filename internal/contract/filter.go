package contract

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Condition is one per-field predicate. Which members apply depends on the
// field's kind in the catalog:
//
//	date        From/To, inclusive range, lenient parsing of the bounds
//	numeric     Min/Max, inclusive range
//	categorical AnyOf, set membership over observed values
//	text        Contains, case-insensitive substring
//
// Zero-valued members leave that side of a range open; a fully zero
// condition matches everything.
type Condition struct {
	Field    string   `json:"field"`
	From     string   `json:"from,omitempty"`
	To       string   `json:"to,omitempty"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	AnyOf    []string `json:"any_of,omitempty"`
	Contains string   `json:"contains,omitempty"`
}

// Apply filters records by the conjunction of all conditions. An empty
// condition list returns the input unchanged. Evaluation order never
// affects the result. Records whose date or numeric value cannot be parsed
// never match a bounded range condition.
func Apply(records []Record, conditions []Condition) ([]Record, error) {
	if len(conditions) == 0 {
		return records, nil
	}

	matchers := make([]func(*Record) bool, 0, len(conditions))
	for _, c := range conditions {
		m, err := matcher(c)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}

	out := make([]Record, 0, len(records))
	for i := range records {
		keep := true
		for _, m := range matchers {
			if !m(&records[i]) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, records[i])
		}
	}
	return out, nil
}

func matcher(c Condition) (func(*Record) bool, error) {
	spec, ok := FieldByKey(c.Field)
	if !ok {
		return nil, fmt.Errorf("unknown filter field %q", c.Field)
	}

	switch spec.Kind {
	case KindDate:
		from, err := parseBound(c.From)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", c.Field, err)
		}
		to, err := parseBound(c.To)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", c.Field, err)
		}
		return func(r *Record) bool {
			if from == nil && to == nil {
				return true
			}
			d := ParseDate(spec.Get(r))
			if d == nil {
				return false
			}
			if from != nil && DaysBetween(*from, *d) < 0 {
				return false
			}
			if to != nil && DaysBetween(*d, *to) < 0 {
				return false
			}
			return true
		}, nil

	case KindNumeric:
		return func(r *Record) bool {
			if c.Min == nil && c.Max == nil {
				return true
			}
			v, ok := ParseAmount(spec.Get(r))
			if !ok {
				return false
			}
			if c.Min != nil && v < *c.Min {
				return false
			}
			if c.Max != nil && v > *c.Max {
				return false
			}
			return true
		}, nil

	case KindCategorical:
		if len(c.AnyOf) == 0 {
			return func(*Record) bool { return true }, nil
		}
		set := make(map[string]struct{}, len(c.AnyOf))
		for _, v := range c.AnyOf {
			set[v] = struct{}{}
		}
		return func(r *Record) bool {
			_, ok := set[spec.Get(r)]
			return ok
		}, nil

	default:
		term := strings.ToLower(c.Contains)
		return func(r *Record) bool {
			if term == "" {
				return true
			}
			return strings.Contains(strings.ToLower(spec.Get(r)), term)
		}, nil
	}
}

// parseBound parses a range bound leniently; an empty bound is open, an
// unparseable non-empty bound is a caller error rather than a silent
// match-nothing.
func parseBound(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t := ParseDate(s)
	if t == nil {
		return nil, fmt.Errorf("unparseable date bound %q", s)
	}
	return t, nil
}

// DistinctValues returns the sorted distinct non-empty values of a field,
// the option set offered for categorical filters.
func DistinctValues(records []Record, field string) []string {
	spec, ok := FieldByKey(field)
	if !ok {
		return nil
	}
	seen := make(map[string]struct{})
	for i := range records {
		if v := spec.Get(&records[i]); v != "" {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
