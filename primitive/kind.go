package primitive

import (
	"reflect"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies values a leaf can write as a single piece of text.
// The zero value means "not primitive".
type KindEnum int

const (
	_ KindEnum = iota

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindTime
	KindDuration
	KindPrimitiveEnum // named type over a number, boolean or string

	KindTotal = int(iota)
)

var builtin = map[reflect.Type]KindEnum{
	reflect.TypeFor[int]():           KindInt,
	reflect.TypeFor[int8]():          KindInt8,
	reflect.TypeFor[int16]():         KindInt16,
	reflect.TypeFor[int32]():         KindInt32,
	reflect.TypeFor[int64]():         KindInt64,
	reflect.TypeFor[uint]():          KindUint,
	reflect.TypeFor[uint8]():         KindUint8,
	reflect.TypeFor[uint16]():        KindUint16,
	reflect.TypeFor[uint32]():        KindUint32,
	reflect.TypeFor[uint64]():        KindUint64,
	reflect.TypeFor[float32]():       KindFloat32,
	reflect.TypeFor[float64]():       KindFloat64,
	reflect.TypeFor[bool]():          KindBool,
	reflect.TypeFor[string]():        KindString,
	reflect.TypeFor[time.Time]():     KindTime,
	reflect.TypeFor[time.Duration](): KindDuration,
}

// IsSigned reports whether k is a builtin signed integer kind.
func (k KindEnum) IsSigned() bool { return k >= KindInt && k <= KindInt64 }

// IsUnsigned reports whether k is a builtin unsigned integer kind.
func (k KindEnum) IsUnsigned() bool { return k >= KindUint && k <= KindUint64 }

// IsFloat reports whether k is a builtin floating point kind.
func (k KindEnum) IsFloat() bool { return k == KindFloat32 || k == KindFloat64 }

// IsNumber reports whether k is any builtin numeric kind.
func (k KindEnum) IsNumber() bool { return k.IsSigned() || k.IsUnsigned() || k.IsFloat() }

// FromReflectType returns the kind of values of rtype, or 0 when rtype is not
// a primitive type.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	if k, ok := builtin[rtype]; ok {
		return k
	}

	switch rtype.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Bool, reflect.String:
		return KindPrimitiveEnum
	default:
		return 0
	}
}

// Of returns the kind of the dynamic value of v. Pointers are not followed.
func Of(v any) KindEnum {
	if v == nil {
		return 0
	}

	return FromReflectType(reflect.TypeOf(v))
}
