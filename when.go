package formvalidation

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// WhenRule applies one set of validators when a condition holds for the
// value and an optional alternative set (via [WhenRule.Else]) otherwise.
// Use [When] to create one.
type WhenRule[T any] struct {
	cond      func(T) bool
	desc      string
	whenRules []Validator[T]
	elseRules []Validator[T]
}

// When returns a conditional validator. cond is evaluated on every pass.
func When[T any](cond func(T) bool, desc string, validators ...Validator[T]) *WhenRule[T] {
	return &WhenRule[T]{cond: cond, desc: desc, whenRules: validators}
}

// Else returns a copy of r that applies validators when the condition is
// false. r itself is not changed.
func (r *WhenRule[T]) Else(validators ...Validator[T]) *WhenRule[T] {
	c := *r
	c.elseRules = validators
	return &c
}

func (r *WhenRule[T]) Validate(ctx context.Context, value T) Result {
	if r.cond(value) {
		return Sequential(ctx, r.whenRules, value)
	}
	return Sequential(ctx, r.elseRules, value)
}

// Describe documents the conditional rules in the property description
// only; neither branch is applied to the schema constraints.
func (r *WhenRule[T]) Describe(name string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if desc, err := describeSummary(name, r.whenRules); err != nil {
		return err
	} else if desc != "" {
		if r.desc != "" {
			desc = fmt.Sprintf("when %s: %s", r.desc, desc)
		}
		appendDescription(ref, desc)
	}
	if desc, err := describeSummary(name, r.elseRules); err != nil {
		return err
	} else if desc != "" {
		appendDescription(ref, "else: "+desc)
	}
	return nil
}

// describeSummary describes validators on a scratch schema and summarizes
// the resulting constraints.
func describeSummary[T any](name string, validators []Validator[T]) (string, error) {
	if len(validators) == 0 {
		return "", nil
	}
	schema := openapi3.NewSchema()
	ref := &openapi3.SchemaRef{Value: openapi3.NewSchema()}
	if err := Describe(name, schema, ref, validators...); err != nil {
		return "", err
	}
	return summarize(schema, ref), nil
}
