package unified

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// Record is one business object in the upstream unified schema. It is
// treated as immutable input: mappers read it and build a fresh
// Payload, they never write back into it.
type Record map[string]interface{}

// Payload is the nested structure shaped for the remote record API.
type Payload map[string]interface{}

func (r Record) Has(key string) bool {
	_, ok := r[key]

	return ok
}

// String returns the value under key rendered as a string. Numeric ids
// arrive as either strings or JSON numbers depending on the upstream
// producer, so both are accepted.
func (r Record) String(key string) string {
	return StringValue(r[key])
}

// StringValue renders one scalar as a string under the same rules as
// Record.String. Shared by list helpers so numeric ids inside
// reference lists convert the same way as top level fields.
func StringValue(val interface{}) string {
	if val == nil {
		return ""
	}

	switch typed := val.(type) {
	case string:
		return typed
	case float64:
		return decimal.NewFromFloat(typed).String()
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case json.Number:
		return typed.String()
	default:
		return ""
	}
}

func (r Record) Bool(key string) (bool, bool) {
	val, ok := r[key]
	if !ok {
		return false, false
	}

	typed, ok := val.(bool)

	return typed, ok
}

func (r Record) Decimal(key string) (decimal.Decimal, error) {
	val, ok := r[key]
	if !ok || val == nil {
		return decimal.Zero, errors.Newf("field %s is not present", key)
	}

	switch typed := val.(type) {
	case float64:
		return decimal.NewFromFloat(typed), nil
	case string:
		return decimal.NewFromString(typed)
	case int:
		return decimal.NewFromInt(int64(typed)), nil
	case int64:
		return decimal.NewFromInt(typed), nil
	case json.Number:
		return decimal.NewFromString(typed.String())
	default:
		return decimal.Zero, errors.Newf("field %s has unsupported type %T", key, val)
	}
}

// List returns the child records under key (e.g. lineItems, expenses).
func (r Record) List(key string) []Record {
	val, ok := r[key]
	if !ok {
		return nil
	}

	switch typed := val.(type) {
	case []Record:
		return typed
	case []interface{}:
		out := make([]Record, 0, len(typed))

		for _, item := range typed {
			if rec, recOk := item.(map[string]interface{}); recOk {
				out = append(out, Record(rec))
			}
		}

		return out
	default:
		return nil
	}
}

// Strings collects the string values under key across every record,
// skipping empties. Used when building batch-scoped lookup filters.
func Strings(records []Record, key string) []string {
	var out []string

	for _, rec := range records {
		if val := rec.String(key); val != "" {
			out = append(out, val)
		}
	}

	return out
}

// LineStrings collects the string values under lineKey.childKey across
// every record's child list.
func LineStrings(records []Record, lineKey, childKey string) []string {
	var out []string

	for _, rec := range records {
		for _, line := range rec.List(lineKey) {
			if val := line.String(childKey); val != "" {
				out = append(out, val)
			}
		}
	}

	return out
}

// CanonicalJSON renders the record with sorted keys so that the same
// content always hashes to the same value regardless of upstream key
// ordering.
func (r Record) CanonicalJSON() ([]byte, error) {
	canonical, err := canonicalize(map[string]interface{}(r))
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(canonical)

	return b, errors.WithStack(err)
}

func canonicalize(val interface{}) (interface{}, error) {
	switch typed := val.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(typed))
		for k := range typed {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		ordered := make([]interface{}, 0, len(keys)*2)
		for _, k := range keys {
			child, err := canonicalize(typed[k])
			if err != nil {
				return nil, err
			}
			ordered = append(ordered, k, child)
		}

		return ordered, nil
	case []interface{}:
		out := make([]interface{}, len(typed))
		for i, item := range typed {
			child, err := canonicalize(item)
			if err != nil {
				return nil, err
			}
			out[i] = child
		}

		return out, nil
	default:
		return val, nil
	}
}
