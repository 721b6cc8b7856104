package vec

import "github.com/hupe1980/hypernum"

// Clear empties v and returns its reservation.
func (v *Vector[T]) Clear() {
	v.Release()
	v.err = nil
}

// Append returns a new vector holding v followed by xs.
func (v *Vector[T]) Append(xs ...T) *Vector[T] {
	out := v.derive(v.Len() + len(xs))
	if out.Err() == nil {
		n := copy(out.data, v.data)
		copy(out.data[n:], xs)
	}
	return out
}

// AppendVector returns a new vector holding v followed by o.
func (v *Vector[T]) AppendVector(o *Vector[T]) *Vector[T] {
	return v.Append(o.data...)
}

// Insert returns a new vector with xs inserted before index i.
// i may equal Len to insert at the end.
func (v *Vector[T]) Insert(i int, xs ...T) (*Vector[T], error) {
	if i < 0 || i > v.Len() {
		return nil, &hypernum.ErrIndexOutOfRange{Index: i, Size: v.Len()}
	}
	out := v.derive(v.Len() + len(xs))
	if err := out.Err(); err != nil {
		return nil, err
	}
	copy(out.data, v.data[:i])
	copy(out.data[i:], xs)
	copy(out.data[i+len(xs):], v.data[i:])
	return out, nil
}

// InsertVector returns a new vector with the elements of o inserted before
// index i.
func (v *Vector[T]) InsertVector(i int, o *Vector[T]) (*Vector[T], error) {
	return v.Insert(i, o.data...)
}

// Subvector returns a copy of the elements in [start, end).
func (v *Vector[T]) Subvector(start, end int) (*Vector[T], error) {
	if start < 0 || start > end || end > v.Len() {
		return nil, &hypernum.ErrInvalidRange{Start: start, End: end, Size: v.Len()}
	}
	out := v.derive(end - start)
	if err := out.Err(); err != nil {
		return nil, err
	}
	copy(out.data, v.data[start:end])
	return out, nil
}

// Head returns a copy of the first n elements.
func (v *Vector[T]) Head(n int) (*Vector[T], error) {
	return v.Subvector(0, n)
}
