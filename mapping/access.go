package mapping

import (
	"errors"
	"fmt"
	"iter"
	"reflect"

	lru "github.com/hashicorp/golang-lru"

	"fieldline/internal/match"
)

// ErrNotSequence is returned when a path segment marked [] does not hold a
// slice or an array.
var ErrNotSequence = errors.New("value is not a sequence")

const fieldNameCacheSize = 512

// exportedNames caches the exported field names of struct types.
var exportedNames = mustCache(fieldNameCacheSize)

func mustCache(size int) *lru.Cache {
	c, err := lru.New(size)
	if err != nil {
		panic(err)
	}

	return c
}

// resolve follows segs from v. ok is false when a segment cannot be found or
// a nil pointer, map or interface is crossed before the last segment.
func resolve(v any, segs []PathSegment) (any, bool) {
	rv := reflect.ValueOf(v)

	for _, seg := range segs {
		var ok bool

		rv, ok = lookup(rv, seg.Name)
		if !ok {
			return nil, false
		}
	}

	if !rv.IsValid() || !rv.CanInterface() {
		return nil, false
	}

	return rv.Interface(), true
}

// lookup returns the field or the string-keyed map entry called name. Names
// are matched exactly first and then by normalized identifier, so "order_id"
// finds OrderID.
func lookup(rv reflect.Value, name string) (reflect.Value, bool) {
	rv, ok := indirect(rv)
	if !ok {
		return reflect.Value{}, false
	}

	switch rv.Kind() {
	case reflect.Struct:
		if sf, found := rv.Type().FieldByName(name); found && sf.IsExported() {
			return structField(rv, sf)
		}

		actual, ok := match.FindIdent(name, fieldNames(rv.Type()))
		if !ok {
			return reflect.Value{}, false
		}

		sf, _ := rv.Type().FieldByName(actual)

		return structField(rv, sf)

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, false
		}

		key := reflect.ValueOf(name).Convert(rv.Type().Key())
		if val := rv.MapIndex(key); val.IsValid() {
			return val, true
		}

		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}

		actual, ok := match.FindIdent(name, keys)
		if !ok {
			return reflect.Value{}, false
		}

		return rv.MapIndex(reflect.ValueOf(actual).Convert(rv.Type().Key())), true

	default:
		return reflect.Value{}, false
	}
}

// structField fails instead of panicking on a nil embedded pointer.
func structField(rv reflect.Value, sf reflect.StructField) (reflect.Value, bool) {
	fv, err := rv.FieldByIndexErr(sf.Index)
	if err != nil {
		return reflect.Value{}, false
	}

	return fv, true
}

// indirect dereferences pointers and interfaces. ok is false for nil.
func indirect(rv reflect.Value) (reflect.Value, bool) {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}, false
		}

		rv = rv.Elem()
	}

	return rv, rv.IsValid()
}

func fieldNames(t reflect.Type) []string {
	if cached, ok := exportedNames.Get(t); ok {
		return cached.([]string)
	}

	names := make([]string, 0, t.NumField())

	for i := range t.NumField() {
		if sf := t.Field(i); sf.IsExported() {
			names = append(names, sf.Name)
		}
	}

	exportedNames.Add(t, names)

	return names
}

// isSequence reports whether v holds a slice or an array.
func isSequence(v any) bool {
	rv, ok := indirect(reflect.ValueOf(v))
	return ok && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array)
}

// elements returns the elements of a slice or array held by v.
func elements(v any) (iter.Seq[any], error) {
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return nil, nil
	}

	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %s", ErrNotSequence, rv.Type())
	}

	return func(yield func(any) bool) {
		for i := range rv.Len() {
			if !yield(rv.Index(i).Interface()) {
				return
			}
		}
	}, nil
}

// isEmpty reports whether v is a zero value or an empty collection.
func isEmpty(v any) bool {
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return true
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return rv.Len() == 0
	default:
		return rv.IsZero()
	}
}
