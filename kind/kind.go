package kind

import (
	"fmt"
	"math/bits"
	"reflect"
)

// Signed is the set of signed integer element types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer element types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is the set of integer element types.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Scalar is the set of arithmetic element types accepted by Complex,
// Quaternion and Vector.
type Scalar interface {
	Integer | Float
}

// Kind tags an arithmetic element type.
type Kind uint8

const (
	Invalid Kind = iota
	Int8
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Float32
	Float64
)

var names = [...]string{
	Invalid: "invalid",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Int:     "int",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Uint:    "uint",
	Float32: "float32",
	Float64: "float64",
}

func (k Kind) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k names an arithmetic kind.
func (k Kind) Valid() bool {
	return k > Invalid && k <= Float64
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// IsInteger reports whether k is an integer kind.
func (k Kind) IsInteger() bool {
	return k >= Int8 && k <= Uint
}

// IsSigned reports whether k can hold negative values.
func (k Kind) IsSigned() bool {
	return (k >= Int8 && k <= Int) || k.IsFloat()
}

// Bits returns the storage width of k in bits.
func (k Kind) Bits() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64:
		return 64
	case Int, Uint:
		return bits.UintSize
	default:
		return 0
	}
}

// precision returns the number of magnitude bits k represents exactly.
func (k Kind) precision() int {
	switch {
	case k == Float32:
		return 24
	case k == Float64:
		return 53
	case k.IsSigned():
		return k.Bits() - 1
	default:
		return k.Bits()
	}
}

// Of returns the kind of T. Named types resolve to their underlying kind.
func Of[T Scalar]() Kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Int:
		return Int
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Uint:
		return Uint
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	default:
		return Invalid
	}
}
