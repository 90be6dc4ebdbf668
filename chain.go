package formvalidation

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ChainPolicy selects how a chain of validators is evaluated. Both policies
// return the same result; they differ only in latency.
type ChainPolicy uint8

const (
	// PolicyConcurrent runs every validator at once, waits for all of them
	// and reduces the results in declaration order.
	PolicyConcurrent ChainPolicy = iota
	// PolicySequential runs validators in declaration order and stops at
	// the first non-valid result.
	PolicySequential
)

func (p ChainPolicy) String() string {
	if p == PolicySequential {
		return "sequential"
	}
	return "concurrent"
}

// Chain is an ordered list of validators reduced to a single result.
type Chain[T any] []Validator[T]

// Validate evaluates c sequentially.
func (c Chain[T]) Validate(ctx context.Context, value T) Result {
	return Sequential(ctx, c, value)
}

// Run evaluates c with the given policy. limit bounds the number of
// validators running at once under PolicyConcurrent; zero or less means no
// bound.
func (c Chain[T]) Run(ctx context.Context, policy ChainPolicy, limit int, value T) Result {
	if policy == PolicySequential {
		return Sequential(ctx, c, value)
	}
	return ConcurrentLimit(ctx, c, limit, value)
}

// Sequential returns the first non-valid result in declaration order, or
// Valid. An empty list is Valid.
func Sequential[T any](ctx context.Context, validators []Validator[T], value T) Result {
	for _, v := range validators {
		if r := v.Validate(ctx, value); !r.SameKind(Valid) {
			return r
		}
	}
	return Valid
}

// Concurrent runs all validators at once and waits for every one of them
// before reducing. The winner is chosen by declaration order, never by
// completion order, so the result equals [Sequential].
func Concurrent[T any](ctx context.Context, validators []Validator[T], value T) Result {
	return ConcurrentLimit(ctx, validators, 0, value)
}

// ConcurrentLimit is like [Concurrent] with at most limit validators in
// flight. Zero or less means no limit.
func ConcurrentLimit[T any](ctx context.Context, validators []Validator[T], limit int, value T) Result {
	switch len(validators) {
	case 0:
		return Valid
	case 1:
		return validators[0].Validate(ctx, value)
	}

	results := make([]Result, len(validators))
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, v := range validators {
		g.Go(func() error {
			results[i] = v.Validate(ctx, value)
			return nil
		})
	}
	_ = g.Wait()
	return Reduce(results)
}

// Reduce returns the first non-valid result, or Valid.
func Reduce(results []Result) Result {
	for _, r := range results {
		if !r.SameKind(Valid) {
			return r
		}
	}
	return Valid
}
