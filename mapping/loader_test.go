package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	yaml := `
naming: camel
mappings:
  - name: Order
    target: order
    121:
      OrderID: id
      CustomerName: customer
    fields:
      - source: Status
        default: "pending"
      - source: Price
        target: amount
        transform: text
        omit_empty: true
      - source: Name
        transform: [trim, upper]
        private: true
        filter: true
        description: Display name
      - source: Items[]
        fields:
          - source: ProductID
`

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, mf)

	assert.Equal(t, "1", mf.Version)
	assert.Equal(t, "camel", mf.Naming)
	require.Len(t, mf.Mappings, 1)

	m := mf.Mappings[0]
	assert.Equal(t, "Order", m.Name)
	assert.Equal(t, "order", m.Target)

	// Check 121 shorthand
	assert.Len(t, m.OneToOne, 2)
	assert.Equal(t, "id", m.OneToOne["OrderID"])

	require.Len(t, m.Fields, 4)

	// Field with default
	assert.Equal(t, "pending", m.Fields[0].Default)

	// Field with a single transform
	assert.Equal(t, StringOrArray{"text"}, m.Fields[1].Transform)
	assert.True(t, m.Fields[1].OmitEmpty)

	// Field with a transform chain and flags
	assert.Equal(t, StringOrArray{"trim", "upper"}, m.Fields[2].Transform)
	assert.True(t, m.Fields[2].Private)
	assert.True(t, m.Fields[2].Filter)
	assert.Equal(t, "Display name", m.Fields[2].Description)

	// Sequence with element fields
	require.Len(t, m.Fields[3].Fields, 1)
	assert.Equal(t, "ProductID", m.Fields[3].Fields[0].Source)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("mappings: ["))
	require.Error(t, err)

	_, err = Parse([]byte("mappings:\n  - name: A\n    fields:\n      - source: X\n        transform: {a: b}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected string or array")
}

func TestNormalizeFile(t *testing.T) {
	t.Parallel()

	mf := &File{Mappings: []Mapping{{
		Name:     "Order",
		OneToOne: map[string]string{"B": "b", "A": "a"},
		Fields:   []FieldMapping{{Source: "C"}},
	}}}

	NormalizeFile(mf)

	assert.Equal(t, "1", mf.Version)
	assert.Equal(t, "same", mf.Naming)
	assert.Nil(t, mf.Mappings[0].OneToOne)
	assert.Equal(t, []FieldMapping{
		{Source: "A", Target: "a"},
		{Source: "B", Target: "b"},
		{Source: "C"},
	}, mf.Mappings[0].Fields)
}

func TestWriteAndLoadFile(t *testing.T) {
	t.Parallel()

	mf, err := LoadFile(filepath.Join("testdata", "order.yaml"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(mf, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "transform: lower\n")

	again, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, mf, again)

	_, err = LoadFile(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

func TestParsePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    []PathSegment
		wantErr bool
	}{
		{path: "Name", want: []PathSegment{{Name: "Name"}}},
		{path: "Customer.Name", want: []PathSegment{{Name: "Customer"}, {Name: "Name"}}},
		{path: "Items[]", want: []PathSegment{{Name: "Items", IsSlice: true}}},
		{path: "Items[].ProductID", want: []PathSegment{{Name: "Items", IsSlice: true}, {Name: "ProductID"}}},
		{path: "", wantErr: true},
		{path: "A..B", wantErr: true},
		{path: "[]", wantErr: true},
		{path: "1abc", wantErr: true},
		{path: "zip-code", wantErr: true},
		{path: "Items[][]", wantErr: true},
		{path: "_größe.x1", want: []PathSegment{{Name: "_größe"}, {Name: "x1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			fp, err := ParsePath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, fp.Segments)
			assert.Equal(t, tt.path, fp.String())
		})
	}
}

func TestSplitAtSlice(t *testing.T) {
	t.Parallel()

	fp, err := ParsePath("Orders[].Items[].SKU")
	require.NoError(t, err)
	assert.Equal(t, 2, fp.SliceCount())

	head, tail, ok := fp.SplitAtSlice()
	require.True(t, ok)
	assert.Equal(t, "Orders[]", head.String())
	assert.Equal(t, "Items[].SKU", tail.String())

	fp, err = ParsePath("A.B")
	require.NoError(t, err)

	_, _, ok = fp.SplitAtSlice()
	assert.False(t, ok)
}
