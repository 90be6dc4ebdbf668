package formvalidation

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
)

// MessageNotUnique is the message key of [Unique] errors. The arg is the
// first duplicated key.
const MessageNotUnique = "notUnique"

type uniqueRule[E any, K comparable] struct {
	key  func(E) K
	desc string
}

// Unique returns a validator that fails when two elements of a collection
// share the same key, e.g. duplicate chips in a chip selector.
func Unique[E any, K comparable](key func(E) K, desc string) Validator[[]E] {
	return uniqueRule[E, K]{key: key, desc: desc}
}

func (r uniqueRule[E, K]) Validate(_ context.Context, value []E) Result {
	seen := make(map[K]struct{}, len(value))
	for _, e := range value {
		k := r.key(e)
		if _, dup := seen[k]; dup {
			return Error(MessageNotUnique, k)
		}
		seen[k] = struct{}{}
	}
	return Valid
}

func (r uniqueRule[E, K]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.UniqueItems = true
	appendDescription(ref, r.desc)
	return nil
}

// Identity is a key function for [Unique] over comparable elements.
func Identity[E comparable](e E) E { return e }
