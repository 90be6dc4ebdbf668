package formvalidation

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MessageRequired is the message key of [RequiredField] errors.
const MessageRequired = "isRequired"

type requiredRule[T any] struct {
	name string
}

// RequiredField returns a validator that fails with an error when the value
// is absent (nil pointer, nil interface, invalid driver.Valuer), an empty
// string or an empty collection. Any other value, including numeric zero,
// is valid. name is carried as the message argument.
func RequiredField[T any](name string) Validator[T] {
	return requiredRule[T]{name: name}
}

func (r requiredRule[T]) Validate(_ context.Context, value T) Result {
	v, isNil := validation.Indirect(value)
	if isNil {
		return Error(MessageRequired, r.name)
	}
	if n, err := validation.LengthOfValue(v); err == nil && n == 0 {
		return Error(MessageRequired, r.name)
	}
	return Valid
}

func (r requiredRule[T]) Describe(name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	for _, req := range schema.Required {
		if req == name {
			return nil
		}
	}
	schema.Required = append(schema.Required, name)
	return nil
}
