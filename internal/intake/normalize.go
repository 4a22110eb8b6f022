// Package intake loads raw lead records and normalizes them into complete
// model.Lead values.
package intake

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/sells-group/leadrank/internal/model"
)

const unknown = "unknown"

// Normalize maps a raw record to a complete Lead. It never fails: absent
// or null fields take their default, values of another JSON type are
// coerced.
func Normalize(raw model.RawLead) model.Lead {
	return model.Lead{
		ID:              stringField(raw, "", "id"),
		Name:            stringField(raw, "", "name"),
		Company:         stringField(raw, "", "company"),
		Position:        stringField(raw, "", "position"),
		Email:           stringField(raw, "", "email"),
		Phone:           stringField(raw, "", "phone"),
		Source:          stringField(raw, unknown, "source"),
		LastInteraction: stringField(raw, "", "last_interaction"),
		Interactions:    listField(raw, "interactions"),
		CompanySize:     stringField(raw, unknown, "company_size"),
		Industry:        stringField(raw, unknown, "industry"),
		BudgetInfo:      stringField(raw, "", "budget_info"),
		DecisionMaker:   boolField(raw, "is_decision_maker", "decision_maker"),
		Needs:           stringField(raw, "", "needs"),
		Timeline:        stringField(raw, "", "timeline"),
		AdditionalNotes: stringField(raw, "", "notes", "additional_notes"),
	}
}

// lookup returns the first non-null value among keys.
func lookup(raw model.RawLead, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(raw model.RawLead, def string, keys ...string) string {
	v, ok := lookup(raw, keys...)
	if !ok {
		return def
	}
	return norm.NFC.String(toString(v))
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		// YAML timestamps.
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}

func listField(raw model.RawLead, key string) []string {
	out := []string{}
	v, ok := lookup(raw, key)
	if !ok {
		return out
	}

	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if item == nil {
				continue
			}
			out = append(out, norm.NFC.String(toString(item)))
		}
	case []string:
		for _, item := range t {
			out = append(out, norm.NFC.String(item))
		}
	case string:
		// Spreadsheet cells carry the history as one ";"-separated value.
		for _, part := range strings.Split(t, ";") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, norm.NFC.String(p))
			}
		}
	}
	return out
}

var truthy = map[string]bool{
	"true": true, "yes": true, "y": true, "1": true, "sim": true, "s": true,
}

func boolField(raw model.RawLead, keys ...string) bool {
	v, ok := lookup(raw, keys...)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return truthy[strings.ToLower(strings.TrimSpace(t))]
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return false
	}
}
