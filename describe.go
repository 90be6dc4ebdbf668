package formvalidation

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// summarize renders the constraints collected on a scratch schema as a
// human readable, comma separated list.
func summarize(schema *openapi3.Schema, ref *openapi3.SchemaRef) string {
	var parts []string

	if ref.Value.Description != "" {
		parts = append(parts, ref.Value.Description)
	}
	if len(schema.Required) > 0 {
		parts = append(parts, "required")
	}
	if ref.Value.Min != nil {
		parts = append(parts, fmt.Sprintf("min %g", *ref.Value.Min))
	}
	if ref.Value.Max != nil {
		parts = append(parts, fmt.Sprintf("max %g", *ref.Value.Max))
	}
	if ref.Value.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("max length %d", *ref.Value.MaxLength))
	}
	if ref.Value.Pattern != "" {
		parts = append(parts, "pattern "+ref.Value.Pattern)
	}
	if ref.Value.Format != "" {
		parts = append(parts, "format "+ref.Value.Format)
	}
	if len(ref.Value.Enum) > 0 {
		vals := make([]string, len(ref.Value.Enum))
		for i, v := range ref.Value.Enum {
			vals[i] = fmt.Sprint(v)
		}
		parts = append(parts, "one of ["+strings.Join(vals, ", ")+"]")
	}
	if ref.Value.UniqueItems {
		parts = append(parts, "unique")
	}

	return strings.Join(parts, ", ")
}
