package validation

import (
	"encoding/json"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Source is the part of the request a rule reads from
type Source int

const (
	SourceBody Source = iota
	SourceQuery
	SourcePath
)

func (s Source) String() string {
	switch s {
	case SourceQuery:
		return "query"
	case SourcePath:
		return "path"
	default:
		return "body"
	}
}

// Input is the raw request data rules are evaluated against. Body values come
// from a JSON object decoded with UseNumber, so numbers arrive as json.Number.
type Input struct {
	Body  map[string]any
	Query url.Values
	Path  map[string]string
}

// Lookup returns the raw value of field. Missing keys, JSON null and blank
// strings all count as absent.
func (in Input) Lookup(src Source, field string) (any, bool) {
	var (
		v  any
		ok bool
	)

	switch src {
	case SourceQuery:
		if in.Query != nil && in.Query.Has(field) {
			v, ok = in.Query.Get(field), true
		}
	case SourcePath:
		if in.Path != nil {
			v, ok = in.Path[field]
		}
	default:
		if in.Body != nil {
			v, ok = in.Body[field]
		}
	}

	if !ok || v == nil {
		return nil, false
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return nil, false
	}
	return v, true
}

// String returns field as text when present and scalar
func (in Input) String(src Source, field string) (string, bool) {
	v, ok := in.Lookup(src, field)
	if !ok {
		return "", false
	}
	return toString(v)
}

// Int returns field as an integer when present and integral
func (in Input) Int(src Source, field string) (int64, bool) {
	v, ok := in.Lookup(src, field)
	if !ok {
		return 0, false
	}
	return toInt(v, src)
}

// Float converts a raw body value to a number
func Float(v any) (float64, bool) {
	return toFloat(v, SourceBody)
}

func toString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case int:
		return strconv.Itoa(t), true
	default:
		return "", false
	}
}

// toInt accepts JSON numbers in the body and decimal strings elsewhere. A
// quoted number in a JSON body is rejected so the typed DTO binding that runs
// after validation cannot fail on it.
func toInt(v any, src Source) (int64, bool) {
	switch t := v.(type) {
	case json.Number:
		n, err := t.Int64()
		return n, err == nil
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return int64(t), true
	case int64:
		return t, true
	case int:
		return int64(t), true
	case string:
		if src == SourceBody {
			return 0, false
		}
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func toFloat(v any, src Source) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	case string:
		if src == SourceBody {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return 0, false
	}
}
