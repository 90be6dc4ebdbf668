package formvalidation

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// Validator maps a value to a Result. Implementations must be safe for
	// concurrent use on different values and must not share mutable state
	// between invocations.
	Validator[T any] interface {
		Validate(ctx context.Context, value T) Result
	}

	// Func adapts a plain function into a Validator.
	Func[T any] func(ctx context.Context, value T) Result

	// Describer is implemented by validators that can document themselves on
	// an OpenAPI schema. name is the property name, schema the enclosing
	// object schema and ref the property schema.
	Describer interface {
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}
)

// Validate calls f.
func (f Func[T]) Validate(ctx context.Context, value T) Result {
	return f(ctx, value)
}

// appendDescription adds desc to the property description, space separated.
func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if desc == "" {
		return
	}
	if ref.Value.Description != "" && ref.Value.Description[len(ref.Value.Description)-1] != ' ' {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}

// Describe documents every validator in vs that implements [Describer].
func Describe[T any](name string, schema *openapi3.Schema, ref *openapi3.SchemaRef, vs ...Validator[T]) error {
	for _, v := range vs {
		d, ok := v.(Describer)
		if !ok {
			continue
		}
		if err := d.Describe(name, schema, ref); err != nil {
			return err
		}
	}
	return nil
}
