package node_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldline/field"
	"fieldline/node"
)

type wrapper struct {
	inner record
}

func TestBuilderRetyping(t *testing.T) {
	t.Parallel()

	root := field.Of("root")

	// any -> *person via OfSourceType and a source map.
	b := node.OfSourceType[any](node.Of[*person, record](root))
	typed := node.MapSource(b, func(v any) (*person, error) {
		p, _ := v.(*person)
		return p, nil
	})

	id := field.Of("id")
	n := typed.Field(node.Extract(id, func(p *person) int { return p.ID }, put[int](id))).Build()

	out, err := node.Run(node.Node[any, record](n), any(&person{ID: 5}), newRecord)
	require.NoError(t, err)
	assert.Equal(t, record{"id": 5}, out)

	out, err = node.Run(node.Node[any, record](n), any("not a person"), newRecord)
	require.NoError(t, err)
	assert.Empty(t, out, "a nil *person is absent for the children")
}

func TestBuilderContextMapF(t *testing.T) {
	t.Parallel()

	f := field.OfNames("meta", "metadata")

	b := node.OfContextType[*wrapper](node.Of[int, record](f))
	bb := node.WithContextMapF(b, func(f field.Field, w *wrapper) (record, error) {
		child := record{}
		w.inner[f.ExternalName()] = child

		return child, nil
	})
	bbb := node.MapContextF(bb, func(f field.Field, c record) (record, error) {
		c["field"] = f.InternalName()
		return c, nil
	})

	n := bbb.Field(node.NewSimple(field.Of("n"), func(s int, c record) error {
		c["n"] = strconv.Itoa(s)
		return nil
	})).Build()

	convert := node.BiFunc[int, *wrapper](n)

	w, err := convert(3, &wrapper{inner: record{}})
	require.NoError(t, err)
	assert.Equal(t, record{"metadata": record{"field": "meta", "n": "3"}}, w.inner)
}

func TestKindIsLeaf(t *testing.T) {
	t.Parallel()

	for k := node.KindSimple; int(k) < node.KindTotal; k++ {
		leaf := k == node.KindSimple || k == node.KindExtracting || k == node.KindUntyped
		assert.Equal(t, leaf, k.IsLeaf(), k.String())
	}
}
