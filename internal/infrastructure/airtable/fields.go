package airtable

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Field decoding helpers. Airtable fields are loosely typed; a column hand
// edited in the UI can hold a string where a number is expected, or a single
// value where the schema says list. Decoding is therefore lenient: a field
// that cannot be read yields its zero value, never an error.

func stringField(fields map[string]json.RawMessage, name string) string {
	raw, ok := fields[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	// linked-record and multi-select columns come back as arrays
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0]
	}
	return ""
}

func decimalField(fields map[string]json.RawMessage, name string) decimal.Decimal {
	raw, ok := fields[name]
	if !ok {
		return decimal.Zero
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return decimal.NewFromFloat(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if d, err := decimal.NewFromString(s); err == nil {
			return d
		}
	}
	return decimal.Zero
}

func intField(fields map[string]json.RawMessage, name string) int {
	raw, ok := fields[name]
	if !ok {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}
	return 0
}

// stringsField reads a column that may hold a single string or a list
func stringsField(fields map[string]json.RawMessage, name string) []string {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return []string{s}
	}
	return nil
}

func attachmentURLs(fields map[string]json.RawMessage, name string) []string {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	var list []attachment
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	urls := make([]string, 0, len(list))
	for _, a := range list {
		if a.URL != "" {
			urls = append(urls, a.URL)
		}
	}
	return urls
}
