package openapi_test

import (
	"fmt"

	fv "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/openapi"
)

func ExampleAddForm() {
	doc := openapi.DocBase("Shop API", "Example API", "1.0.0")

	name := fv.NewField("name", "", nil, fv.WithRequired(true), fv.WithMaxCharacters(200))
	price := fv.NewField("price", 0.0, []fv.Validator[float64]{fv.ErrorRange(0.01, 10000)})
	defer name.Close()
	defer price.Close()

	if err := openapi.AddForm(doc, "/items", "createItem", name, price); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(doc.Paths.Value("/items").Post.OperationID)
	// Output: createItem
}

func ExampleDocBase() {
	doc := openapi.DocBase("My Service", "A cool service", "0.1.0")
	fmt.Println(doc.Info.Title)
	fmt.Println(doc.OpenAPI)
	// Output:
	// My Service
	// 3.0.3
}

func ExampleSchema() {
	email := fv.NewField("email", "", []fv.Validator[string]{fv.EmailAddress[string]()}, fv.WithRequired(true))
	defer email.Close()

	ref, err := openapi.Schema(email)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ref.Value.Required)
	fmt.Println(ref.Value.Properties["email"].Value.Format)
	// Output:
	// [email]
	// email
}
