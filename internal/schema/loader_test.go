package schema

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	model, err := LoadFile(filepath.Join("testdata", "model.md"))
	require.NoError(t, err)
	require.NotNil(t, model)

	// The document title wins over the front matter name.
	assert.Equal(t, "Test", model.Name)

	require.Len(t, model.Objects, 2)
	require.Len(t, model.Enums, 1)

	obj := model.Objects[0]
	assert.Equal(t, "Object", obj.Name)
	require.Len(t, obj.Attributes, 8)

	byName := make(map[string]AttributeDef, len(obj.Attributes))
	for _, attr := range obj.Attributes {
		byName[attr.Name] = attr
	}

	assert.Equal(t, []string{"string"}, byName["string_value"].Dtypes)
	assert.False(t, byName["string_value"].Required)
	assert.False(t, byName["string_value"].IsArray)

	assert.Equal(t, []string{"integer"}, byName["integer_value"].Dtypes)
	assert.Equal(t, []string{"boolean"}, byName["boolean_value"].Dtypes)

	// [] suffix marks an array
	multi := byName["multiple_values"]
	assert.Equal(t, []string{"float"}, multi.Dtypes)
	assert.True(t, multi.IsArray)

	// bold marks required; "Multiple: true" marks an array
	nestedArr := byName["multiple_nested_objects"]
	assert.True(t, nestedArr.Required)
	assert.True(t, nestedArr.IsArray)
	assert.Equal(t, []string{"Nested"}, nestedArr.Dtypes)

	assert.Equal(t, []string{"SomeEnum"}, byName["enum_value"].Dtypes)

	// An attribute without a Type option defaults to string
	nested := model.Objects[1]
	assert.Equal(t, "Nested", nested.Name)
	require.Len(t, nested.Attributes, 1)
	assert.Equal(t, []string{"string"}, nested.Attributes[0].Dtypes)

	enum := model.Enums[0]
	assert.Equal(t, "SomeEnum", enum.Name)
	assert.Equal(t, map[string]string{
		"value": "value",
		"other": "something else",
	}, enum.Mappings)
	assert.Equal(t, []string{"other", "value"}, enum.SortedKeys())
}

func TestParseFrontMatterName(t *testing.T) {
	doc := `---
name: From Front Matter
---

### Thing
- value
`

	model, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "From Front Matter", model.Name)
	require.Len(t, model.Objects, 1)
}

func TestParseNoName(t *testing.T) {
	doc := `### Thing
- value
`

	model, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Empty(t, model.Name)
}

func TestParseMultipleDtypes(t *testing.T) {
	doc := `# Model

### Thing
- id
  - Type: integer, string
`

	model, err := Parse([]byte(doc))
	require.NoError(t, err)

	require.Len(t, model.Objects, 1)
	require.Len(t, model.Objects[0].Attributes, 1)
	assert.Equal(t, []string{"integer", "string"}, model.Objects[0].Attributes[0].Dtypes)
}

func TestParseDuplicateEnumKey(t *testing.T) {
	doc := `# Model

### Status
- open = OPEN
- open = AGAIN
`

	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate variant key")
}

func TestParseMalformedEnumItem(t *testing.T) {
	doc := `# Model

### Status
- open = OPEN
- closed
`

	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected KEY = value")
}

func TestParseOptionWithoutAttribute(t *testing.T) {
	doc := `# Model

### Thing
  - Type: string
`

	_, err := Parse([]byte(doc))
	require.Error(t, err)
}

func TestParseUnterminatedFrontMatter(t *testing.T) {
	doc := `---
name: Broken
`

	_, err := Parse([]byte(doc))
	require.Error(t, err)
}

func TestParseEmptyDocument(t *testing.T) {
	model, err := Parse(nil)
	require.NoError(t, err)

	assert.Empty(t, model.Name)
	assert.Empty(t, model.Objects)
	assert.Empty(t, model.Enums)
}
