package vec

import (
	"context"
	"runtime"
	"strings"

	"github.com/hupe1980/hypernum"
	"github.com/hupe1980/hypernum/cplx"
	"github.com/hupe1980/hypernum/kind"
)

// Vector is an owned, variable-length sequence of elements.
//
// The zero value is an empty vector ready to use. A Vector is not safe for
// concurrent mutation.
type Vector[T any] struct {
	data []T
	ring ring[T]
	opts options

	reserved int64
	cleanup  runtime.Cleanup
	err      error
}

// New returns a vector of n zero elements.
func New[T any](n int, opts ...Option) *Vector[T] {
	v := &Vector[T]{ring: resolve[T](), opts: applyOptions(opts)}
	_ = v.reset(n)
	return v
}

// Allocate is like New but waits for the allocator budget until ctx is done
// and reports allocation failures as an error.
func Allocate[T any](ctx context.Context, n int, opts ...Option) (*Vector[T], error) {
	v := &Vector[T]{ring: resolve[T](), opts: applyOptions(opts)}
	buf, bytes, err := v.allocate(ctx, n, true)
	v.opts.log().WithOp("vec.Allocate").LogAllocation(n, bytes, err)
	if err != nil {
		return nil, err
	}
	v.adopt(buf, bytes)
	return v, nil
}

// Filled returns a vector of n copies of x.
func Filled[T any](n int, x T, opts ...Option) *Vector[T] {
	v := New[T](n, opts...)
	for i := range v.data {
		v.data[i] = x
	}
	return v
}

// Of returns a vector holding elems.
func Of[T any](elems ...T) *Vector[T] {
	return FromSlice(elems)
}

// FromSlice returns a vector holding a copy of s.
func FromSlice[T any](s []T, opts ...Option) *Vector[T] {
	v := New[T](len(s), opts...)
	copy(v.data, s)
	return v
}

// FromComplex returns the two-element vector [real, imag].
func FromComplex[T kind.Scalar](c cplx.Complex[T], opts ...Option) *Vector[T] {
	return FromSlice([]T{c.Real, c.Imag}, opts...)
}

// derive returns an empty vector of n elements sharing v's options.
func (v *Vector[T]) derive(n int) *Vector[T] {
	out := &Vector[T]{ring: v.r(), opts: v.opts}
	_ = out.reset(n)
	return out
}

func (v *Vector[T]) r() ring[T] {
	if v.ring == nil {
		v.ring = resolve[T]()
	}
	return v.ring
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.data)
}

func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= len(v.data) {
		return &hypernum.ErrIndexOutOfRange{Index: i, Size: len(v.data)}
	}
	return nil
}

// slot returns the address of element i. It panics with
// *hypernum.ErrIndexOutOfRange when i is out of range.
func (v *Vector[T]) slot(i int) *T {
	if err := v.checkIndex(i); err != nil {
		panic(err)
	}
	return &v.data[i]
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return v.data[i], nil
}

// Set stores x at index i.
func (v *Vector[T]) Set(i int, x T) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.data[i] = x
	return nil
}

// Slice returns a copy of the elements.
func (v *Vector[T]) Slice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Clone returns an independent copy of v.
func (v *Vector[T]) Clone() *Vector[T] {
	out := v.derive(len(v.data))
	copy(out.data, v.data)
	return out
}

// Equal reports whether v and o have the same length and pairwise equal
// elements within hypernum.Epsilon.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if len(v.data) != len(o.data) {
		return false
	}
	r := v.r()
	for i := range v.data {
		if !r.equal(v.data[i], o.data[i]) {
			return false
		}
	}
	return true
}

// String renders v as "[e0, e1, ...]".
func (v *Vector[T]) String() string {
	r := v.r()
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.format(x))
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON encodes v as a JSON array with the codec set by WithCodec.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	return v.opts.enc().Marshal(v.Slice())
}

// UnmarshalJSON replaces the elements of v with a decoded JSON array.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := v.opts.enc().Unmarshal(data, &elems); err != nil {
		return err
	}
	if err := v.reset(len(elems)); err != nil {
		return err
	}
	copy(v.data, elems)
	return nil
}
