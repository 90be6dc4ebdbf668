package openapi

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// Describable is a form field that can add itself to an object schema.
// [formvalidation.Field] implements it.
type Describable interface {
	Key() string
	DescribeInto(schema *openapi3.Schema) error
}

// Schema builds an object schema with one property per field.
func Schema(fields ...Describable) (*openapi3.SchemaRef, error) {
	schema := openapi3.NewObjectSchema()
	for _, f := range fields {
		if err := f.DescribeInto(schema); err != nil {
			return nil, err
		}
	}
	return openapi3.NewSchemaRef("", schema), nil
}

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(fields ...Describable) *openapi3.RequestBodyRef {
	r, err := NewRequest(fields...)
	if err != nil {
		panic(err)
	}
	return r
}

// NewRequest builds a JSON request body from the fields' schema.
func NewRequest(fields ...Describable) (*openapi3.RequestBodyRef, error) {
	if len(fields) == 0 {
		return nil, errors.New("no fields given")
	}
	schema, err := Schema(fields...)
	if err != nil {
		return nil, err
	}
	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithJSONSchemaRef(schema),
	}, nil
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(title, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       title,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddForm registers a POST operation at path whose request body is the
// fields' schema. A 422 response is documented for submissions the fields
// would reject.
func AddForm(doc *openapi3.T, path, operationID string, fields ...Describable) error {
	body, err := NewRequest(fields...)
	if err != nil {
		return err
	}
	ok := "OK"
	invalid := "form validation failed"
	op := &openapi3.Operation{
		OperationID: operationID,
		RequestBody: body,
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
				Value: &openapi3.Response{Description: &ok},
			}),
			openapi3.WithStatus(http.StatusUnprocessableEntity, &openapi3.ResponseRef{
				Value: &openapi3.Response{Description: &invalid},
			}),
		),
	}
	AddPath(doc, path, http.MethodPost, op)
	return nil
}

// AddPath adds an operation to doc at the given path and method.
func AddPath(doc *openapi3.T, path, method string, op *openapi3.Operation) {
	p := doc.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}
	p.SetOperation(method, op)
	doc.Paths.Set(path, p)
}
