package formvalidation

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Message keys of the string validators.
const (
	MessageNoMatch     = "doesNotMatch"
	MessageMaxDecimals = "tooManyDecimals"
)

type matchRule[T any] struct {
	validation.MatchRule
	re *regexp.Regexp
}

// RegexMatch returns a validator that fails with an error when a non-empty
// string does not match pattern. The empty string is always valid; compose
// with [RequiredField] to reject it. Panics if pattern does not compile.
func RegexMatch[T any](pattern string) Validator[T] {
	return Match[T](regexp.MustCompile(pattern))
}

// Match is like [RegexMatch] with a precompiled expression.
func Match[T any](re *regexp.Regexp) Validator[T] {
	if re == nil {
		panic("formvalidation: nil regular expression")
	}
	return matchRule[T]{validation.Match(re), re}
}

func (r matchRule[T]) Validate(_ context.Context, value T) Result {
	s, ok := stringValue(value)
	if !ok {
		return Valid
	}
	if err := r.MatchRule.Validate(s); err != nil {
		return Error(MessageNoMatch, r.re.String())
	}
	return Valid
}

func (r matchRule[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Pattern = r.re.String()
	return nil
}

type stringRule[T any] struct {
	validation.StringRule
	result Result
	desc   string
}

// StringRule returns a validator that runs pred on non-empty string values
// and returns failure when pred reports false. desc documents the rule.
func StringRule[T any](pred func(string) bool, failure Result, desc string) Validator[T] {
	return stringRule[T]{
		validation.NewStringRule(pred, desc),
		failure,
		desc,
	}
}

func (r stringRule[T]) Validate(_ context.Context, value T) Result {
	s, ok := stringValue(value)
	if !ok {
		return Valid
	}
	if err := r.StringRule.Validate(s); err != nil {
		return r.result
	}
	return Valid
}

func (r stringRule[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

// DecimalMax returns a validator that fails when a numeric string has more
// than n decimal places.
func DecimalMax[T any](n uint) Validator[T] {
	return StringRule[T](func(s string) bool {
		_, frac, ok := strings.Cut(s, ".")
		if !ok {
			return true
		}
		return len(frac) <= int(n)
	}, Error(MessageMaxDecimals, n), fmt.Sprintf("no more than %d decimals", n))
}
