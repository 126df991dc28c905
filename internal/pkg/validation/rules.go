package validation

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

// MaxEmailLength matches the width of every correo column
const MaxEmailLength = 100

var validate = validator.New()

// Common patterns. A telefono is at most 15 characters including the "+".
var (
	CedulaPattern   = regexp.MustCompile(`^\d{10}$`)
	TelefonoPattern = regexp.MustCompile(`^(\+\d{6,14}|\d{7,15})$`)
)

// LookupFunc answers an existence question against the database. value is
// normalized: int64 for rules declared Int/ID, string otherwise.
type LookupFunc func(ctx context.Context, value any, in Input) (bool, error)

type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindNumber
)

type check struct {
	message string
	test    func(v any, in Input) bool
}

type lookup struct {
	fn         LookupFunc
	wantExists bool
	message    string
}

// Rule describes how one field of one request source is validated. Rules are
// built once when routes are registered and are safe for concurrent use.
type Rule struct {
	field           string
	source          Source
	optional        bool
	requiredWith    string
	requiredValue   string
	requiredMessage string
	kind            valueKind
	checks          []check
	lookups         []lookup
}

// Body starts a rule for a JSON body field
func Body(field string) *Rule { return newRule(field, SourceBody) }

// Query starts a rule for a query string parameter
func Query(field string) *Rule { return newRule(field, SourceQuery) }

// Path starts a rule for a path parameter
func Path(field string) *Rule { return newRule(field, SourcePath) }

func newRule(field string, src Source) *Rule {
	return &Rule{
		field:           field,
		source:          src,
		requiredMessage: "El campo es obligatorio",
	}
}

// Field returns the field name
func (r *Rule) Field() string { return r.field }

// Optional skips every check when the field is absent
func (r *Rule) Optional() *Rule {
	r.optional = true
	return r
}

// RequiredWith makes the field optional unless other is present in the same source
func (r *Rule) RequiredWith(other string) *Rule {
	r.optional = true
	r.requiredWith = other
	return r
}

// RequiredIf makes the field optional unless other holds value
func (r *Rule) RequiredIf(other, value string) *Rule {
	r.optional = true
	r.requiredWith = other
	r.requiredValue = value
	return r
}

// WithMessage replaces the message of the most recently added check or lookup
func (r *Rule) WithMessage(msg string) *Rule {
	switch {
	case len(r.lookups) > 0:
		r.lookups[len(r.lookups)-1].message = msg
	case len(r.checks) > 0:
		r.checks[len(r.checks)-1].message = msg
	default:
		r.requiredMessage = msg
	}
	return r
}

func (r *Rule) add(msg string, test func(v any, in Input) bool) *Rule {
	r.checks = append(r.checks, check{message: msg, test: test})
	return r
}

// Text requires a JSON string
func (r *Rule) Text() *Rule {
	return r.add("Debe ser texto", func(v any, _ Input) bool {
		_, ok := v.(string)
		return ok
	})
}

// Length bounds the number of characters
func (r *Rule) Length(min, max int) *Rule {
	tag := fmt.Sprintf("min=%d,max=%d", min, max)
	return r.add(fmt.Sprintf("Debe tener entre %d y %d caracteres", min, max), func(v any, _ Input) bool {
		s, ok := toString(v)
		return ok && validate.Var(strings.TrimSpace(s), tag) == nil
	})
}

func (r *Rule) Email() *Rule {
	r.add("Debe ser un correo electrónico válido", func(v any, _ Input) bool {
		s, ok := toString(v)
		return ok && validate.Var(s, "required,email") == nil
	})
	return r.add(fmt.Sprintf("Debe tener como máximo %d caracteres", MaxEmailLength), func(v any, _ Input) bool {
		s, ok := toString(v)
		return ok && validate.Var(s, fmt.Sprintf("max=%d", MaxEmailLength)) == nil
	})
}

func (r *Rule) Int() *Rule {
	r.kind = kindInt
	src := r.source
	return r.add("Debe ser un número entero", func(v any, _ Input) bool {
		_, ok := toInt(v, src)
		return ok
	})
}

// ID is a positive integer identifier
func (r *Rule) ID() *Rule {
	r.kind = kindInt
	src := r.source
	return r.add("Debe ser un identificador numérico válido", func(v any, _ Input) bool {
		n, ok := toInt(v, src)
		return ok && n > 0
	})
}

func (r *Rule) IntRange(min, max int64) *Rule {
	r.kind = kindInt
	src := r.source
	tag := fmt.Sprintf("gte=%d,lte=%d", min, max)
	return r.add(fmt.Sprintf("Debe ser un número entero entre %d y %d", min, max), func(v any, _ Input) bool {
		n, ok := toInt(v, src)
		return ok && validate.Var(n, tag) == nil
	})
}

// Number accepts any numeric value within [min, max]
func (r *Rule) Number(min, max float64) *Rule {
	r.kind = kindNumber
	src := r.source
	tag := fmt.Sprintf("gte=%g,lte=%g", min, max)
	return r.add(fmt.Sprintf("Debe ser un número entre %g y %g", min, max), func(v any, _ Input) bool {
		f, ok := toFloat(v, src)
		return ok && validate.Var(f, tag) == nil
	})
}

func (r *Rule) OneOf(values ...string) *Rule {
	tag := "oneof=" + strings.Join(values, " ")
	return r.add("Debe ser uno de: "+strings.Join(values, ", "), func(v any, _ Input) bool {
		s, ok := toString(v)
		return ok && validate.Var(s, tag) == nil
	})
}

// Date requires YYYY-MM-DD
func (r *Rule) Date() *Rule {
	return r.add("Debe ser una fecha con formato AAAA-MM-DD", func(v any, _ Input) bool {
		s, ok := toString(v)
		return ok && validate.Var(s, "datetime="+DateLayout) == nil
	})
}

// DateAfter requires the date to be strictly later than other. When other is
// missing or malformed its own rule reports it.
func (r *Rule) DateAfter(other string) *Rule {
	src := r.source
	return r.add("Debe ser posterior a "+other, func(v any, in Input) bool {
		s, ok := toString(v)
		if !ok {
			return false
		}
		d, err := time.Parse(DateLayout, s)
		if err != nil {
			return false
		}
		o, ok := in.String(src, other)
		if !ok {
			return true
		}
		od, err := time.Parse(DateLayout, o)
		if err != nil {
			return true
		}
		return d.After(od)
	})
}

func (r *Rule) Matches(re *regexp.Regexp, msg string) *Rule {
	return r.add(msg, func(v any, _ Input) bool {
		s, ok := toString(v)
		return ok && re.MatchString(s)
	})
}

// Custom adds an arbitrary synchronous check
func (r *Rule) Custom(msg string, test func(v any, in Input) bool) *Rule {
	return r.add(msg, test)
}

// Exists fails unless fn reports a matching row
func (r *Rule) Exists(fn LookupFunc) *Rule {
	r.lookups = append(r.lookups, lookup{fn: fn, wantExists: true, message: "No existe un registro con ese valor"})
	return r
}

// Unique fails when fn reports a matching row
func (r *Rule) Unique(fn LookupFunc) *Rule {
	r.lookups = append(r.lookups, lookup{fn: fn, wantExists: false, message: "Ya existe un registro con ese valor"})
	return r
}

func (r *Rule) required(in Input) bool {
	if !r.optional {
		return true
	}
	if r.requiredWith == "" {
		return false
	}
	if r.requiredValue == "" {
		_, ok := in.Lookup(r.source, r.requiredWith)
		return ok
	}
	v, ok := in.String(r.source, r.requiredWith)
	return ok && strings.TrimSpace(v) == r.requiredValue
}

// normalize converts the raw value into what lookups receive
func (r *Rule) normalize(v any) any {
	switch r.kind {
	case kindInt:
		if n, ok := toInt(v, r.source); ok {
			return n
		}
	case kindNumber:
		if f, ok := toFloat(v, r.source); ok {
			return f
		}
	}
	if s, ok := toString(v); ok {
		return strings.TrimSpace(s)
	}
	return v
}
