package formvalidation

import (
	"context"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Message keys of the alphabetic validators.
const (
	MessageNoAlphabetic     = "missingAlphabetic"
	MessageCreditCardNumber = "looksLikeCreditCardNumber"
)

const creditCardNumberLength = 16

type hasAlphabetic[T any] struct {
	isCreditCardNumberCheck bool
}

// HasAlphabetic returns a validator that fails when a non-blank string
// contains no alphabetic character.
func HasAlphabetic[T any]() Validator[T] {
	return hasAlphabetic[T]{}
}

// NonCreditCardNumber returns a validator that rejects free text that looks
// like a credit card number.
func NonCreditCardNumber[T any]() Validator[T] {
	return hasAlphabetic[T]{isCreditCardNumberCheck: true}
}

var (
	alphabeticRegexp = regexp.MustCompile(`[^[:alpha:]]`)
	numberRegexp     = regexp.MustCompile(`\D`)
)

func (r hasAlphabetic[T]) Validate(_ context.Context, value T) Result {
	v, ok := stringValue(value)
	if !ok {
		return Valid
	}
	v = strings.TrimSpace(v)
	if v == "" || alphabeticRegexp.ReplaceAllString(v, "") != "" {
		return Valid
	}
	if !r.isCreditCardNumberCheck {
		return Error(MessageNoAlphabetic)
	}
	if len(numberRegexp.ReplaceAllString(v, "")) != creditCardNumberLength {
		return Valid
	}
	return Error(MessageCreditCardNumber)
}

func (r hasAlphabetic[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.isCreditCardNumberCheck {
		appendDescription(ref, "must not be a credit card number")
		return nil
	}
	appendDescription(ref, "must contain at least one alphabetic character")
	return nil
}
