// Package formvalidation provides live, debounced validation for form fields.
//
// A field binds a value to an ordered list of validators. Every value change
// is debounced, the validators run (concurrently by default) and the first
// non-valid result in declaration order becomes the field's result:
//
//	email := fv.NewField("email", "",
//	    []fv.Validator[string]{fv.EmailAddress[string]()},
//	    fv.WithLabel("Email"),
//	    fv.WithRequired(true),
//	    fv.WithDebounce(300*time.Millisecond),
//	)
//	defer email.Close()
//
//	email.SetValue("alice@")   // debounced
//	email.Validate()           // immediate, e.g. on submit
//
// Validation failures are values, not errors: a [Result] is [Valid] or
// carries an info, warning or error [Message]. Hosts render whatever the
// field publishes.
//
// Fields can publish into a [Form], which keeps the last result per field
// key and answers whether the whole form may be submitted:
//
//	form := fv.NewForm()
//	name := fv.Attach(form, "name", "", nil, fv.WithRequired(true))
//	form.Submit()
//	ok := form.IsValid()
//
// Sub-packages:
//   - openapi – OpenAPI schema generation for a set of fields
//   - transform – value normalizers applied before validation
package formvalidation
