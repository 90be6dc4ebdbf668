package formvalidation

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Message keys of [MinMaxRule] results. Args are the value and the bound.
const (
	MessageLessThan    = "isLessThan"
	MessageGreaterThan = "isGreaterThan"
)

// Number is the set of types a [MinMaxRule] can compare.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type bound[N Number] struct {
	v   N
	set bool
}

// MinMaxRule checks a number against an inclusive warning band and an
// inclusive error band. Either band may be open on one or both sides.
// Comparisons use N itself; values are only converted for display.
type MinMaxRule[N Number] struct {
	minWarning, maxWarning bound[N]
	minError, maxError     bound[N]
}

// MinMaxOption sets one bound of a [MinMaxRule].
type MinMaxOption[N Number] func(*MinMaxRule[N])

// WarnBelow warns when the value is less than v.
func WarnBelow[N Number](v N) MinMaxOption[N] {
	return func(r *MinMaxRule[N]) { r.minWarning = bound[N]{v, true} }
}

// WarnAbove warns when the value is greater than v.
func WarnAbove[N Number](v N) MinMaxOption[N] {
	return func(r *MinMaxRule[N]) { r.maxWarning = bound[N]{v, true} }
}

// ErrorBelow fails when the value is less than v.
func ErrorBelow[N Number](v N) MinMaxOption[N] {
	return func(r *MinMaxRule[N]) { r.minError = bound[N]{v, true} }
}

// ErrorAbove fails when the value is greater than v.
func ErrorAbove[N Number](v N) MinMaxOption[N] {
	return func(r *MinMaxRule[N]) { r.maxError = bound[N]{v, true} }
}

// NewMinMax builds a rule from individual bounds.
//
// Panics when a band is inverted or when the warning band is not nested in
// the error band: that is a programming mistake, not bad input.
func NewMinMax[N Number](opts ...MinMaxOption[N]) *MinMaxRule[N] {
	r := &MinMaxRule[N]{}
	for _, opt := range opts {
		opt(r)
	}
	r.check()
	return r
}

// WarningRange warns when the value is outside [lo, hi].
func WarningRange[N Number](lo, hi N) *MinMaxRule[N] {
	return NewMinMax(WarnBelow(lo), WarnAbove(hi))
}

// ErrorRange fails when the value is outside [lo, hi].
func ErrorRange[N Number](lo, hi N) *MinMaxRule[N] {
	return NewMinMax(ErrorBelow(lo), ErrorAbove(hi))
}

// MinMax warns outside [minWarning, maxWarning] and fails outside
// [minError, maxError]. The warning band must lie within the error band.
func MinMax[N Number](minWarning, maxWarning, minError, maxError N) *MinMaxRule[N] {
	return NewMinMax(WarnBelow(minWarning), WarnAbove(maxWarning), ErrorBelow(minError), ErrorAbove(maxError))
}

func (r *MinMaxRule[N]) check() {
	if r.minWarning.set && r.maxWarning.set && r.minWarning.v > r.maxWarning.v {
		panic(fmt.Sprintf("formvalidation: min warning %v is greater than max warning %v", r.minWarning.v, r.maxWarning.v))
	}
	if r.minError.set && r.maxError.set && r.minError.v > r.maxError.v {
		panic(fmt.Sprintf("formvalidation: min error %v is greater than max error %v", r.minError.v, r.maxError.v))
	}
	if r.minWarning.set && r.minError.set && r.minWarning.v < r.minError.v {
		panic(fmt.Sprintf("formvalidation: min warning %v is outside the error band (min %v)", r.minWarning.v, r.minError.v))
	}
	if r.maxWarning.set && r.maxError.set && r.maxWarning.v > r.maxError.v {
		panic(fmt.Sprintf("formvalidation: max warning %v is outside the error band (max %v)", r.maxWarning.v, r.maxError.v))
	}
}

// Validate applies the error band before the warning band, lower bound
// before upper bound.
func (r *MinMaxRule[N]) Validate(_ context.Context, value N) Result {
	switch {
	case r.minError.set && value < r.minError.v:
		return Error(MessageLessThan, value, r.minError.v)
	case r.maxError.set && value > r.maxError.v:
		return Error(MessageGreaterThan, value, r.maxError.v)
	case r.minWarning.set && value < r.minWarning.v:
		return Warning(MessageLessThan, value, r.minWarning.v)
	case r.maxWarning.set && value > r.maxWarning.v:
		return Warning(MessageGreaterThan, value, r.maxWarning.v)
	}
	return Valid
}

func (r *MinMaxRule[N]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.minError.set {
		f := float64(r.minError.v)
		ref.Value.Min = &f
	}
	if r.maxError.set {
		f := float64(r.maxError.v)
		ref.Value.Max = &f
	}
	if r.minWarning.set {
		appendDescription(ref, fmt.Sprintf("warns below %v", r.minWarning.v))
	}
	if r.maxWarning.set {
		appendDescription(ref, fmt.Sprintf("warns above %v", r.maxWarning.v))
	}
	return nil
}
