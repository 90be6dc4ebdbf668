// Package openapi documents a set of form fields as an OpenAPI 3 object
// schema, so the endpoint that receives the submitted form can publish the
// same constraints the fields enforce.
//
// Use [DocBase] to create a base document and register the submission
// endpoint with [AddForm]:
//
//	doc := openapi.DocBase("signup", "Sign-up form", "1.0")
//	err := openapi.AddForm(doc, "/signup", "submitSignup", name, email, age)
package openapi
