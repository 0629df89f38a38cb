package primitive_test

import (
	"math/big"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldline/primitive"
)

type color int

func (c color) String() string { return [...]string{"red", "green"}[c] }

type level uint8

type celsius float64

func TestFormat(t *testing.T) {
	t.Parallel()

	name := "ann"
	stamp := time.Date(2024, 3, 1, 12, 30, 0, 500, time.UTC)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"int", -42, "-42"},
		{"uint64", uint64(42), "42"},
		{"float32", float32(0.1), "0.1"},
		{"float64", 2.5, "2.5"},
		{"bool", true, "true"},
		{"string", "x", "x"},
		{"pointer", &name, "ann"},
		{"time", stamp, "2024-03-01T12:30:00.0000005Z"},
		{"duration", 2*time.Hour + 45*time.Minute, "2h45m0s"},
		{"stringer enum", color(1), "green"},
		{"plain enum", level(3), "3"},
		{"text marshaler", netip.MustParseAddr("10.0.0.1"), "10.0.0.1"},
		{"pointer text marshaler", big.NewInt(42), "42"},
		{"float enum", celsius(21.5), "21.5"},
		{"negative float enum", celsius(-0.25), "-0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := primitive.Format(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatRejects(t *testing.T) {
	t.Parallel()

	var nilPtr *int

	for _, in := range []any{nil, nilPtr, struct{}{}, []int{1}} {
		_, err := primitive.Format(in)
		assert.ErrorIs(t, err, primitive.ErrNotPrimitive, "%#v", in)
	}
}
