package primitive

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// ErrNotPrimitive is returned by Format for values with no text form.
var ErrNotPrimitive = errors.New("not a primitive value")

// Format renders v as text. Pointers are followed, and a pointer level
// implementing encoding.TextMarshaler is marshaled. Times use RFC3339Nano,
// durations and enums with a String method use it, other values implementing
// encoding.TextMarshaler are marshaled.
func Format(v any) (string, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		if m, ok := rv.Interface().(encoding.TextMarshaler); ok {
			return marshalText(m)
		}

		rv = rv.Elem()
	}

	if !rv.IsValid() || rv.Kind() == reflect.Pointer {
		return "", fmt.Errorf("%w: <nil>", ErrNotPrimitive)
	}

	v = rv.Interface()

	switch k := FromReflectType(rv.Type()); {
	case k == KindTime:
		return v.(time.Time).Format(time.RFC3339Nano), nil
	case k == KindDuration:
		return v.(time.Duration).String(), nil
	case k == KindPrimitiveEnum:
		return formatEnum(rv), nil
	case k != 0:
		return formatScalar(rv), nil
	}

	if m, ok := v.(encoding.TextMarshaler); ok {
		return marshalText(m)
	}

	return "", fmt.Errorf("%w: %T", ErrNotPrimitive, v)
}

func marshalText(m encoding.TextMarshaler) (string, error) {
	text, err := m.MarshalText()
	if err != nil {
		return "", fmt.Errorf("marshal %T: %w", m, err)
	}

	return string(text), nil
}

func formatEnum(rv reflect.Value) string {
	if s, ok := rv.Interface().(fmt.Stringer); ok {
		return s.String()
	}

	return formatScalar(rv)
}

// formatScalar renders rv by its underlying kind.
func formatScalar(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	default:
		return rv.String()
	}
}
