package formvalidation

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/rs/zerolog"
)

// MessageValidationFailed is the message key used when a fallible validator
// returns an error under [FailAsError].
const MessageValidationFailed = "validationFailed"

// FailurePolicy decides what a failed fallible validator contributes.
type FailurePolicy uint8

const (
	// FailAsError turns the failure into an Error result.
	FailAsError FailurePolicy = iota
	// FailAsSkip treats the validator as not applicable and returns Valid.
	FailAsSkip
)

type custom[T any] struct {
	f    func(T) error
	desc string
}

// Custom returns a validator that fails with an error carrying err.Error()
// as message key whenever f returns a non-nil error. desc documents it.
func Custom[T any](f func(T) error, desc string) Validator[T] {
	return custom[T]{f: f, desc: desc}
}

func (r custom[T]) Validate(_ context.Context, value T) Result {
	if err := r.f(value); err != nil {
		return Error(err.Error())
	}
	return Valid
}

func (r custom[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

// RemoteFunc performs a check that can itself fail, e.g. a uniqueness query
// against a server.
type RemoteFunc[T any] func(ctx context.Context, value T) (Result, error)

type remote[T any] struct {
	f      RemoteFunc[T]
	policy FailurePolicy
	logger zerolog.Logger
}

// Remote adapts a fallible check into a Validator. When f returns an error
// the policy decides the result; the error is logged at warn level.
func Remote[T any](f RemoteFunc[T], policy FailurePolicy, logger zerolog.Logger) Validator[T] {
	return remote[T]{f: f, policy: policy, logger: logger}
}

func (r remote[T]) Validate(ctx context.Context, value T) Result {
	res, err := r.f(ctx, value)
	if err == nil {
		return res
	}
	r.logger.Warn().Err(err).Str("policy", r.policy.String()).Msg("remote validator failed")
	if r.policy == FailAsSkip {
		return Valid
	}
	return Error(MessageValidationFailed, err.Error())
}

func (p FailurePolicy) String() string {
	if p == FailAsSkip {
		return "skip"
	}
	return "error"
}

type anyRule[T any] struct {
	v Validator[T]
}

// AsAny adapts v for fields holding heterogeneous values. A value that is
// not a T makes the validator inapplicable and yields Valid.
func AsAny[T any](v Validator[T]) Validator[any] {
	return anyRule[T]{v: v}
}

func (r anyRule[T]) Validate(ctx context.Context, value any) Result {
	t, ok := value.(T)
	if !ok {
		return Valid
	}
	return r.v.Validate(ctx, t)
}

func (r anyRule[T]) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	return Describe(name, schema, ref, r.v)
}
