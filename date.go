package formvalidation

import (
	"context"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Message keys of the date validators.
const (
	MessageInvalidDate = "invalidDate"
	MessageDateBefore  = "isBefore"
	MessageDateAfter   = "isAfter"
)

// DateRule validates that a string value is a date in the given layout,
// optionally within a range. Use [DateLayout] to create one, then chain
// [DateRule.Min] and [DateRule.Max]. A DateRule is a value; Min and Max
// return modified copies and never change a rule already in use.
type DateRule[T any] struct {
	layout   string
	min, max time.Time
}

// DateLayout creates a date validator for text fields holding dates.
// Empty strings are valid.
func DateLayout[T any](layout string) DateRule[T] {
	return DateRule[T]{layout: layout}
}

// Min returns a copy of r with the earliest allowed date (inclusive).
func (r DateRule[T]) Min(t time.Time) DateRule[T] {
	r.min = t
	return r
}

// Max returns a copy of r with the latest allowed date (inclusive).
func (r DateRule[T]) Max(t time.Time) DateRule[T] {
	r.max = t
	return r
}

func (r DateRule[T]) Validate(_ context.Context, value T) Result {
	s, ok := stringValue(value)
	if !ok {
		return Valid
	}
	if err := validation.Date(r.layout).Validate(s); err != nil {
		return Error(MessageInvalidDate, r.layout)
	}
	if s == "" {
		return Valid
	}
	t, _ := time.Parse(r.layout, s)
	return checkDate(t, r.min, r.max)
}

func (r DateRule[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = r.layout
	if !r.min.IsZero() {
		appendDescription(ref, ">= "+r.min.Format(r.layout))
	}
	if !r.max.IsZero() {
		appendDescription(ref, "<= "+r.max.Format(r.layout))
	}
	return nil
}

type dateRangeRule struct {
	min, max time.Time
}

// DateRange returns a validator for date picker values. A zero min or max
// leaves that side open; a zero value is valid.
func DateRange(minDate, maxDate time.Time) Validator[time.Time] {
	if !minDate.IsZero() && !maxDate.IsZero() && minDate.After(maxDate) {
		panic("formvalidation: date range min is after max")
	}
	return dateRangeRule{min: minDate, max: maxDate}
}

func (r dateRangeRule) Validate(_ context.Context, value time.Time) Result {
	if value.IsZero() {
		return Valid
	}
	return checkDate(value, r.min, r.max)
}

func (r dateRangeRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = "date-time"
	if !r.min.IsZero() {
		appendDescription(ref, ">= "+r.min.Format(time.RFC3339))
	}
	if !r.max.IsZero() {
		appendDescription(ref, "<= "+r.max.Format(time.RFC3339))
	}
	return nil
}

func checkDate(t, minDate, maxDate time.Time) Result {
	if !minDate.IsZero() && t.Before(minDate) {
		return Error(MessageDateBefore, t, minDate)
	}
	if !maxDate.IsZero() && t.After(maxDate) {
		return Error(MessageDateAfter, t, maxDate)
	}
	return Valid
}
