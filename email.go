package formvalidation

import (
	"context"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
)

// MessageInvalidEmail is the message key of [EmailAddress] errors.
const MessageInvalidEmail = "invalidEmailAddress"

type emailRule[T any] struct{}

// EmailAddress returns a validator that fails with an error when a non-empty
// string is not a syntactically valid email address. The empty string is
// valid only so that EmailAddress composes with [RequiredField], which
// reports the missing value; use both on a mandatory email field.
func EmailAddress[T any]() Validator[T] {
	return emailRule[T]{}
}

func (emailRule[T]) Validate(_ context.Context, value T) Result {
	s, ok := stringValue(value)
	if !ok || s == "" {
		return Valid
	}
	if !govalidator.IsEmail(s) {
		return Error(MessageInvalidEmail)
	}
	return Valid
}

func (emailRule[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = "email"
	return nil
}
