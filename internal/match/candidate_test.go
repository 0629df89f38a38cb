package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankNames(t *testing.T) {
	t.Parallel()

	ranked := RankNames("uper", []string{"lower", "upper", "trim"})
	require.Len(t, ranked, 3)

	best := ranked.Best()
	require.NotNil(t, best)
	assert.Equal(t, "upper", best.Name)
	assert.Equal(t, []string{"upper", "lower", "trim"}, ranked.Names())

	suggested := ranked.AboveThreshold(DefaultSuggestThreshold)
	assert.Equal(t, []string{"upper"}, suggested.Top(2).Names())
}

func TestRankNames_SuffixStrip(t *testing.T) {
	t.Parallel()

	ranked := RankNames("CustomerID", []string{"customer", "costumes"})
	require.NotEmpty(t, ranked)
	assert.Equal(t, "customer", ranked.Best().Name)
	assert.InDelta(t, 1.0, ranked.Best().Score, 1e-9)
}

func TestRankNames_Empty(t *testing.T) {
	t.Parallel()

	ranked := RankNames("x", nil)
	assert.Nil(t, ranked.Best())
	assert.Empty(t, ranked.Top(3))
}

func TestFindIdent(t *testing.T) {
	t.Parallel()

	name, ok := FindIdent("order_id", []string{"Name", "OrderID"})
	assert.True(t, ok)
	assert.Equal(t, "OrderID", name)

	_, ok = FindIdent("missing", []string{"Name"})
	assert.False(t, ok)
}
