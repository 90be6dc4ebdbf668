package formvalidation

import (
	"context"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
)

type eachRule[E any] struct {
	validators []Validator[E]
}

// Each returns a validator that applies validators to every element of a
// collection in order. The first non-valid element result wins; its message
// is prefixed with the element index as "[i] key".
func Each[E any](validators ...Validator[E]) Validator[[]E] {
	return eachRule[E]{validators: validators}
}

func (r eachRule[E]) Validate(ctx context.Context, value []E) Result {
	for i, e := range value {
		res := Sequential(ctx, r.validators, e)
		if res.IsValid() {
			continue
		}
		msg := res.Message()
		msg.Key = "[" + strconv.Itoa(i) + "] " + msg.Key
		return Result{kind: res.Kind(), msg: msg}
	}
	return Valid
}

func (r eachRule[E]) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Items == nil {
		ref.Value.Items = openapi3.NewSchemaRef("", openapi3.NewSchema())
	}
	return Describe(name, schema, ref.Value.Items, r.validators...)
}
