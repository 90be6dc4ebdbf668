package formvalidation

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
)

type normalizeRule[T any] struct {
	fn         func(T) T
	validators []Validator[T]
}

// Normalize returns a validator that applies fn to the value before running
// validators sequentially. The field value itself is not changed.
// The transform package provides common normalizers.
func Normalize[T any](fn func(T) T, validators ...Validator[T]) Validator[T] {
	return normalizeRule[T]{fn: fn, validators: validators}
}

func (r normalizeRule[T]) Validate(ctx context.Context, value T) Result {
	return Sequential(ctx, r.validators, r.fn(value))
}

func (r normalizeRule[T]) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	return Describe(name, schema, ref, r.validators...)
}
