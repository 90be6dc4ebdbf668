package formvalidation

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MessageCharacterLimit is the message key of [CharacterLimit] errors.
const MessageCharacterLimit = "exceedsCharacterLimit"

type characterLimitRule[T any] struct {
	rule  validation.Rule
	limit int
}

// CharacterLimit returns a validator that fails with an error when a string
// value has more than limit characters (runes). Values that are not strings
// or byte slices are valid. Panics if limit is negative.
func CharacterLimit[T any](limit int) Validator[T] {
	if limit < 0 {
		panic(fmt.Sprintf("formvalidation: character limit must not be negative, got %d", limit))
	}
	var rule validation.Rule = validation.RuneLength(0, limit)
	if limit == 0 {
		// RuneLength treats a zero max as unbounded.
		rule = validation.Empty
	}
	return characterLimitRule[T]{rule: rule, limit: limit}
}

func (r characterLimitRule[T]) Validate(_ context.Context, value T) Result {
	s, ok := stringValue(value)
	if !ok {
		return Valid
	}
	if err := r.rule.Validate(s); err != nil {
		return Error(MessageCharacterLimit, r.limit)
	}
	return Valid
}

func (r characterLimitRule[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	n := uint64(r.limit)
	ref.Value.MaxLength = &n
	return nil
}

// stringValue dereferences value and returns it as a string when it is a
// string kind or a byte slice.
func stringValue(value any) (string, bool) {
	v, isNil := validation.Indirect(value)
	if isNil {
		return "", false
	}
	s, err := validation.EnsureString(v)
	if err != nil {
		return "", false
	}
	return s, true
}
