package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldline/internal/diagnostic"
)

func codes(d *diagnostic.Diagnostics) []string {
	out := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		out = append(out, e.Code)
	}

	return out
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		yaml  string
		codes []string
	}{
		{
			name: "valid",
			yaml: `
mappings:
  - name: A
    121: {ID: id}
    fields:
      - source: Items[]
        fields:
          - source: SKU
`,
			codes: []string{},
		},
		{
			name: "duplicate mapping",
			yaml: `
mappings:
  - name: A
  - name: A
`,
			codes: []string{"duplicate_mapping"},
		},
		{
			name: "missing name",
			yaml: `
mappings:
  - target: a
`,
			codes: []string{"missing_name"},
		},
		{
			name: "duplicate target across 121 and fields",
			yaml: `
mappings:
  - name: A
    121: {ID: id}
    fields:
      - source: Key
        target: id
`,
			codes: []string{"duplicate_target"},
		},
		{
			name: "duplicate target by naming style",
			yaml: `
naming: snake
mappings:
  - name: A
    fields:
      - source: Shipping
        fields:
          - source: ZipCode
          - source: zip_code
`,
			codes: []string{"duplicate_target"},
		},
		{
			name: "invalid paths",
			yaml: `
mappings:
  - name: A
    fields:
      - source: A..B
      - target: x
      - source: A[].B[]
`,
			codes: []string{"invalid_source_path", "missing_source", "nested_slice"},
		},
		{
			name: "leaf options on object",
			yaml: `
mappings:
  - name: A
    fields:
      - source: Shipping
        transform: upper
        fields:
          - source: City
`,
			codes: []string{"leaf_option_on_object"},
		},
		{
			name: "unknown naming",
			yaml: `
naming: snaek
mappings:
  - name: A
`,
			codes: []string{"invalid_naming"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mf, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			assert.Equal(t, tt.codes, codes(Validate(mf, nil)))
		})
	}
}

func TestValidateSuggestsTransforms(t *testing.T) {
	t.Parallel()

	mf, err := Parse([]byte(`
mappings:
  - name: Person
    fields:
      - source: Name
        transform: [trim, uper]
`))
	require.NoError(t, err)

	res := Validate(mf, NewRegistry())
	require.Len(t, res.Errors, 1)

	e := res.Errors[0]
	assert.Equal(t, "unknown_transform", e.Code)
	assert.Equal(t, "Person", e.Mapping)
	assert.Equal(t, "Name", e.Path)
	assert.Equal(t, []string{"upper"}, e.Suggestions)
	assert.EqualError(t, res.Err(), `[Person] Name: [unknown_transform] unknown transform "uper" (did you mean upper?)`)
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	res := Validate(nil, nil)
	assert.Equal(t, []string{"mapping_is_nil"}, codes(res))
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	assert.Equal(t, []string{"lower", "text", "trim", "upper"}, r.Names())
	assert.True(t, r.Has("trim"))
	assert.Nil(t, r.Get("nope"))

	v, err := r.Get("upper")("abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", v)

	v, err = r.Get("lower")(42)
	require.NoError(t, err)
	assert.Equal(t, "42", v)

	_, err = r.Get("trim")(struct{}{})
	require.Error(t, err)

	assert.Equal(t, []string{"lower"}, r.Suggest("lowr"))
	assert.Empty(t, r.Suggest("zzzzzz"))
}
