package diagnostic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldline/internal/diagnostic"
)

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	var d diagnostic.Diagnostics

	require.False(t, d.HasErrors())
	require.NoError(t, d.Err())

	d.Suggest("ignored")
	d.Warnf(diagnostic.At("Order", ""), "empty_mapping", "mapping %s has no fields", "Order")
	assert.False(t, d.HasErrors())

	d.Errorf(diagnostic.At("Order", "Name"), "unknown_transform", "unknown transform %q", "uper")
	d.Suggest("upper")
	d.Errorf(diagnostic.Location{}, "invalid_path", "empty path")

	assert.True(t, d.HasErrors())
	assert.Equal(t, diagnostic.SeverityWarning, d.Warnings[0].Severity)
	assert.Equal(t, "[Order]: [empty_mapping] mapping Order has no fields", d.Warnings[0].String())
	assert.EqualError(t, d.Err(),
		`[Order] Name: [unknown_transform] unknown transform "uper" (did you mean upper?); [invalid_path] empty path`)

	var other diagnostic.Diagnostics
	other.Infof(diagnostic.At("", "Items[]"), "note", "sequence")
	d.Merge(&other)
	require.Len(t, d.Infos, 1)
	assert.Equal(t, "Items[]: [note] sequence", d.Infos[0].String())
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info", diagnostic.SeverityInfo.String())
	assert.Equal(t, "error", diagnostic.SeverityError.String())
	assert.Equal(t, "unknown", diagnostic.Severity(9).String())
}
