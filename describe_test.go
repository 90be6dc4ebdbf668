package formvalidation

import (
	"context"
	"testing"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper to create a fresh schema + ref for each test
func newTestSchemaRef() (*openapi3.Schema, *openapi3.SchemaRef) {
	schema := openapi3.NewSchema()
	ref := &openapi3.SchemaRef{
		Value: openapi3.NewSchema(),
	}
	return schema, ref
}

func describeOne[T any](t *testing.T, name string, v Validator[T]) (*openapi3.Schema, *openapi3.SchemaRef) {
	t.Helper()
	schema, ref := newTestSchemaRef()
	require.NoError(t, Describe(name, schema, ref, v))
	return schema, ref
}

func TestDescribe_Required(t *testing.T) {
	schema, _ := describeOne(t, "name", RequiredField[string]("Name"))

	assert.Equal(t, []string{"name"}, schema.Required)
}

func TestDescribe_Required_NoDuplicates(t *testing.T) {
	schema, ref := newTestSchemaRef()

	err := Describe("name", schema, ref, RequiredField[string]("Name"), RequiredField[string]("Name"))
	require.NoError(t, err)

	assert.Equal(t, []string{"name"}, schema.Required)
}

func TestDescribe_CharacterLimit(t *testing.T) {
	_, ref := describeOne(t, "bio", CharacterLimit[string](140))

	require.NotNil(t, ref.Value.MaxLength)
	assert.Equal(t, uint64(140), *ref.Value.MaxLength)
}

func TestDescribe_MinMax(t *testing.T) {
	_, ref := describeOne[int](t, "age", MinMax(18, 65, 0, 130))

	require.NotNil(t, ref.Value.Min)
	require.NotNil(t, ref.Value.Max)
	assert.Equal(t, float64(0), *ref.Value.Min)
	assert.Equal(t, float64(130), *ref.Value.Max)
	assert.Equal(t, "warns below 18 warns above 65", ref.Value.Description)
}

func TestDescribe_WarningRangeOnly(t *testing.T) {
	_, ref := describeOne[float64](t, "temp", WarningRange(-10.5, 40.0))

	assert.Nil(t, ref.Value.Min)
	assert.Nil(t, ref.Value.Max)
	assert.Equal(t, "warns below -10.5 warns above 40", ref.Value.Description)
}

func TestDescribe_RegexAndEmail(t *testing.T) {
	_, ref := describeOne(t, "zip", RegexMatch[string](`^[0-9]+$`))
	assert.Equal(t, `^[0-9]+$`, ref.Value.Pattern)

	_, ref = describeOne(t, "email", EmailAddress[string]())
	assert.Equal(t, "email", ref.Value.Format)
}

func TestDescribe_In(t *testing.T) {
	_, ref := describeOne(t, "status", In("a", "b", "c"))

	assert.Equal(t, []any{"a", "b", "c"}, ref.Value.Enum)
}

func TestDescribe_Each(t *testing.T) {
	_, ref := describeOne(t, "tags", Each(In("x", "y"), CharacterLimit[string](10)))

	require.NotNil(t, ref.Value.Items)
	assert.Equal(t, []any{"x", "y"}, ref.Value.Items.Value.Enum)
	require.NotNil(t, ref.Value.Items.Value.MaxLength)
	assert.Equal(t, uint64(10), *ref.Value.Items.Value.MaxLength)
}

func TestDescribe_Unique(t *testing.T) {
	_, ref := describeOne(t, "chips", Unique(Identity[string], "no duplicate chips"))

	assert.True(t, ref.Value.UniqueItems)
	assert.Equal(t, "no duplicate chips", ref.Value.Description)
}

func TestDescribe_Date_WithMinMax(t *testing.T) {
	minTime := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	maxTime := time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)

	_, ref := describeOne[string](t, "eventDate", DateLayout[string]("2006-01-02").Min(minTime).Max(maxTime))

	assert.Equal(t, "2006-01-02", ref.Value.Format)
	assert.Equal(t, ">= 2020-01-01 <= 2030-12-31", ref.Value.Description)
}

func TestDescribe_When_WithRules(t *testing.T) {
	isAdmin := func(string) bool { return true }
	_, ref := describeOne[string](t, "role", When(isAdmin, "is admin", RequiredField[string]("Role")))

	assert.Equal(t, "when is admin: required", ref.Value.Description)
}

func TestDescribe_When_WithElse(t *testing.T) {
	isAdmin := func(string) bool { return true }
	w := When(isAdmin, "is admin", RequiredField[string]("Role")).Else(In("guest", "viewer"))

	_, ref := describeOne[string](t, "role", w)

	assert.Equal(t, "when is admin: required else: one of [guest, viewer]", ref.Value.Description)
}

func TestDescribe_When_EmptyDesc(t *testing.T) {
	always := func(float64) bool { return true }
	_, ref := describeOne[float64](t, "amount", When(always, "", Validator[float64](ErrorRange(0.0, 10.0))))

	assert.Equal(t, "min 0, max 10", ref.Value.Description)
}

func TestDescribe_SkipsPlainFuncs(t *testing.T) {
	f := Func[string](func(_ context.Context, _ string) Result { return Valid })
	_, ref := describeOne[string](t, "x", f)

	assert.Empty(t, ref.Value.Description)
}
