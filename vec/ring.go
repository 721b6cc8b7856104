package vec

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"github.com/hupe1980/hypernum"
	"github.com/hupe1980/hypernum/kind"
)

// algebraic is the method set shared by cplx.Complex and quat.Quaternion.
type algebraic[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) (T, error)
	Neg() T
	Inverse() (T, error)
	ScaleReal(float64) T
	Modulus() float64
	Equal(T) bool
	String() string
}

// ring is the element arithmetic a Vector is built on.
type ring[T any] interface {
	add(a, b T) T
	sub(a, b T) T
	mul(a, b T) T
	div(a, b T) (T, error)
	neg(a T) T
	inv(a T) (T, error)
	scaleReal(a T, f float64) T
	modulus(a T) float64
	equal(a, b T) bool
	format(a T) string
	// elemKind is kind.Invalid for non-scalar elements.
	elemKind() kind.Kind
}

type scalarRing[T kind.Scalar] struct {
	k kind.Kind
}

func newScalarRing[T kind.Scalar]() ring[T] {
	return scalarRing[T]{k: kind.Of[T]()}
}

func (scalarRing[T]) add(a, b T) T { return a + b }
func (scalarRing[T]) sub(a, b T) T { return a - b }
func (scalarRing[T]) mul(a, b T) T { return a * b }
func (scalarRing[T]) neg(a T) T    { return -a }

func (r scalarRing[T]) div(a, b T) (T, error) {
	if b == 0 && r.k.IsInteger() {
		return 0, hypernum.ErrDegenerateDivisor
	}
	return a / b, nil
}

func (r scalarRing[T]) inv(a T) (T, error) { return r.div(1, a) }

func (scalarRing[T]) scaleReal(a T, f float64) T { return T(float64(a) * f) }
func (scalarRing[T]) modulus(a T) float64        { return math.Abs(float64(a)) }
func (scalarRing[T]) equal(a, b T) bool          { return hypernum.Near(float64(a), float64(b)) }
func (scalarRing[T]) format(a T) string          { return kind.Format(a, -1) }
func (r scalarRing[T]) elemKind() kind.Kind      { return r.k }

type algebraRing[T any] struct{}

func el[T any](a T) algebraic[T] { return any(a).(algebraic[T]) }

func (algebraRing[T]) add(a, b T) T                { return el(a).Add(b) }
func (algebraRing[T]) sub(a, b T) T                { return el(a).Sub(b) }
func (algebraRing[T]) mul(a, b T) T                { return el(a).Mul(b) }
func (algebraRing[T]) div(a, b T) (T, error)       { return el(a).Div(b) }
func (algebraRing[T]) neg(a T) T                   { return el(a).Neg() }
func (algebraRing[T]) inv(a T) (T, error)          { return el(a).Inverse() }
func (algebraRing[T]) scaleReal(a T, f float64) T  { return el(a).ScaleReal(f) }
func (algebraRing[T]) modulus(a T) float64         { return el(a).Modulus() }
func (algebraRing[T]) equal(a, b T) bool           { return el(a).Equal(b) }
func (algebraRing[T]) format(a T) string           { return el(a).String() }
func (algebraRing[T]) elemKind() kind.Kind         { return kind.Invalid }

// namedRing runs the ring of U over a named type T whose underlying type
// is U. T and U share their memory layout.
type namedRing[T any, U kind.Scalar] struct {
	base scalarRing[U]
}

func as[D, S any](x S) D { return *(*D)(unsafe.Pointer(&x)) }

func (r namedRing[T, U]) add(a, b T) T { return as[T](r.base.add(as[U](a), as[U](b))) }
func (r namedRing[T, U]) sub(a, b T) T { return as[T](r.base.sub(as[U](a), as[U](b))) }
func (r namedRing[T, U]) mul(a, b T) T { return as[T](r.base.mul(as[U](a), as[U](b))) }
func (r namedRing[T, U]) neg(a T) T    { return as[T](r.base.neg(as[U](a))) }

func (r namedRing[T, U]) div(a, b T) (T, error) {
	q, err := r.base.div(as[U](a), as[U](b))
	return as[T](q), err
}

func (r namedRing[T, U]) inv(a T) (T, error) {
	q, err := r.base.inv(as[U](a))
	return as[T](q), err
}

func (r namedRing[T, U]) scaleReal(a T, f float64) T { return as[T](r.base.scaleReal(as[U](a), f)) }
func (r namedRing[T, U]) modulus(a T) float64        { return r.base.modulus(as[U](a)) }
func (r namedRing[T, U]) equal(a, b T) bool          { return r.base.equal(as[U](a), as[U](b)) }
func (r namedRing[T, U]) format(a T) string          { return r.base.format(as[U](a)) }
func (r namedRing[T, U]) elemKind() kind.Kind        { return r.base.k }

func named[T any, U kind.Scalar]() ring[T] {
	base := scalarRing[U]{k: kind.Of[U]()}
	if r, ok := any(base).(ring[T]); ok {
		return r
	}
	return namedRing[T, U]{base: base}
}

// resolve returns the ring for T: a scalar ring for the numeric kinds
// (including named types over them) or the element's own arithmetic for
// cplx.Complex and quat.Quaternion. It panics for any other element type.
func resolve[T any]() ring[T] {
	var zero T
	if _, ok := any(zero).(algebraic[T]); ok {
		return algebraRing[T]{}
	}

	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int:
		return named[T, int]()
	case reflect.Int8:
		return named[T, int8]()
	case reflect.Int16:
		return named[T, int16]()
	case reflect.Int32:
		return named[T, int32]()
	case reflect.Int64:
		return named[T, int64]()
	case reflect.Uint:
		return named[T, uint]()
	case reflect.Uint8:
		return named[T, uint8]()
	case reflect.Uint16:
		return named[T, uint16]()
	case reflect.Uint32:
		return named[T, uint32]()
	case reflect.Uint64:
		return named[T, uint64]()
	case reflect.Float32:
		return named[T, float32]()
	case reflect.Float64:
		return named[T, float64]()
	}
	panic(fmt.Sprintf("vec: unsupported element type %T", zero))
}
