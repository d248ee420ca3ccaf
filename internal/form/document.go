// Package form holds the two sides of the trust boundary: Document, the
// untrusted key/value structure a model call produces, and ProductForm,
// the reconciled record the rest of the system may rely on. Everything
// crossing from the first to the second goes through Reconcile.
package form

import "encoding/json"

// Document is an untrusted JSON-like structure. Values may be missing,
// null, mistyped, or invented; nothing downstream trusts it directly.
type Document map[string]any

// String returns the value under key when it is a string, else "".
func (d Document) String(key string) string {
	if s, ok := d[key].(string); ok {
		return s
	}
	return ""
}

// Map returns the value under key when it is a nested object, else nil.
func (d Document) Map(key string) map[string]any {
	if m, ok := d[key].(map[string]any); ok {
		return m
	}
	return nil
}

// StringMap returns the value under key as a string-to-string map,
// keeping only string values.
func (d Document) StringMap(key string) map[string]string {
	src := d.Map(key)
	if src == nil {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Number reports the numeric value under key, if any. Accepts
// json.Number, float64 and integer types; bools and strings are not
// numbers.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// IsInteger reports whether v is an integer-valued number. A
// json.Number with a fractional part is not an integer.
func IsInteger(v any) bool {
	switch n := v.(type) {
	case json.Number:
		_, err := n.Int64()
		return err == nil
	case int, int32, int64:
		return true
	case float64:
		return n == float64(int64(n))
	}
	return false
}
