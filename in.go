package formvalidation

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MessageNotInChoices is the message key of [In] errors. Args are the
// rejected value and the allowed values joined with ", ".
const MessageNotInChoices = "notInChoices"

type inRule[T comparable] struct {
	validation.InRule
	values []T
	want   string
}

// In returns a validator that fails when a value is not one of values,
// e.g. a picker whose value no longer exists in its option list. The empty
// string is valid so that In composes with [RequiredField]; numeric zero
// and false are values like any other and must be listed to pass.
func In[T comparable](values ...T) Validator[T] {
	elems := make([]any, len(values))
	want := make([]string, len(values))
	for i := range values {
		elems[i] = values[i]
		want[i] = fmt.Sprintf("'%v'", values[i])
	}
	return inRule[T]{
		validation.In(elems...),
		values,
		strings.Join(want, ", "),
	}
}

func (r inRule[T]) Validate(_ context.Context, value T) Result {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.String {
		// String kinds go through ozzo, which skips the empty string.
		if err := r.InRule.Validate(value); err != nil {
			return Error(MessageNotInChoices, value, r.want)
		}
		return Valid
	}
	if !slices.Contains(r.values, value) {
		return Error(MessageNotInChoices, value, r.want)
	}
	return Valid
}

func (r inRule[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	enum := make([]any, len(r.values))
	for i := range r.values {
		enum[i] = r.values[i]
	}
	ref.Value.Enum = enum
	return nil
}
