package notification

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NotAvailable is rendered in place of any missing value.
const NotAvailable = "N/A"

// Record is one form submission as decoded from JSON: field name to value.
// Every key is optional.
type Record map[string]any

// Has reports whether key holds a non-missing value.
// Missing means absent, nil, or an empty string.
func (r Record) Has(key string) bool {
	_, ok := formatValue(r[key])
	return ok
}

// Text returns the display form of key, or NotAvailable when it is missing.
func (r Record) Text(key string) string {
	if s, ok := formatValue(r[key]); ok {
		return s
	}
	return NotAvailable
}

// First returns the display form of the first non-missing key, or NotAvailable.
func (r Record) First(keys ...string) string {
	for _, key := range keys {
		if s, ok := formatValue(r[key]); ok {
			return s
		}
	}
	return NotAvailable
}

// Truthy reports whether key holds a truthy value. nil, false, "", zero
// numbers and empty lists or maps are falsy.
func (r Record) Truthy(key string) bool {
	switch v := r[key].(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case []any:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

// YesNo renders key as "Yes" when truthy, "No" otherwise.
func (r Record) YesNo(key string) string {
	if r.Truthy(key) {
		return "Yes"
	}
	return "No"
}

// List returns key as a list of display strings, skipping missing entries.
// A single string is treated as a one-element list.
func (r Record) List(key string) []string {
	return listOf(r[key])
}

func listOf(v any) []string {
	switch v := v.(type) {
	case []string:
		out := make([]string, 0, len(v))
		for _, s := range v {
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := formatValue(item); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

func formatValue(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, x != ""
	case bool:
		if x {
			return "Yes", true
		}
		return "No", true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case json.Number:
		return x.String(), true
	case []string, []any:
		items := listOf(x)
		if len(items) == 0 {
			return "", false
		}
		return strings.Join(items, ", "), true
	default:
		return fmt.Sprint(x), true
	}
}
