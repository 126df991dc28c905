package validation

import (
	"context"
	"fmt"

	"github.com/yigit/registro-academico/internal/pkg/apperrors"
	"golang.org/x/sync/errgroup"
)

// Validate evaluates every rule against in and returns all failures in rule
// declaration order. It never stops at the first failing field. Within a
// rule the first failing check is reported and later checks of that rule are
// skipped. Database lookups run only for rules whose synchronous checks
// passed; they run concurrently and are all awaited before returning.
//
// A non-nil error means a lookup itself failed (for example the database was
// unreachable) and the request cannot be judged.
func Validate(ctx context.Context, in Input, rules ...*Rule) ([]apperrors.FieldError, error) {
	results := make([]*apperrors.FieldError, len(rules))

	g, gctx := errgroup.WithContext(ctx)
	for i, rule := range rules {
		value, present := in.Lookup(rule.source, rule.field)
		if !present {
			if rule.required(in) {
				results[i] = &apperrors.FieldError{Field: rule.field, Message: rule.requiredMessage}
			}
			continue
		}

		if msg, ok := rule.runChecks(value, in); !ok {
			results[i] = &apperrors.FieldError{Field: rule.field, Message: msg}
			continue
		}

		if len(rule.lookups) == 0 {
			continue
		}

		idx, r, normalized := i, rule, rule.normalize(value)
		g.Go(func() error {
			for _, l := range r.lookups {
				exists, err := l.fn(gctx, normalized, in)
				if err != nil {
					return fmt.Errorf("existence check for %s failed: %w", r.field, err)
				}
				if exists != l.wantExists {
					results[idx] = &apperrors.FieldError{Field: r.field, Message: l.message}
					return nil
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var failures []apperrors.FieldError
	for _, res := range results {
		if res != nil {
			failures = append(failures, *res)
		}
	}
	return failures, nil
}

func (r *Rule) runChecks(value any, in Input) (string, bool) {
	for _, c := range r.checks {
		if !c.test(value, in) {
			return c.message, false
		}
	}
	return "", true
}
