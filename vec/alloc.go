package vec

import (
	"context"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/hupe1980/hypernum"
)

type reservation struct {
	alloc Allocator
	bytes int64
}

func (r reservation) release() {
	r.alloc.ReleaseMemory(r.bytes)
}

func bufferBytes[T any](n int) int64 {
	var zero T
	return int64(n) * int64(unsafe.Sizeof(zero))
}

// makeBuffer converts a runtime allocation panic into an error.
func makeBuffer[T any](n int) (buf []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return make([]T, n), nil
}

// allocate returns a zeroed buffer of n elements, reserved against the
// vector's allocator. The reservation blocks on ctx only if wait is set.
func (v *Vector[T]) allocate(ctx context.Context, n int, wait bool) ([]T, int64, error) {
	bytes := bufferBytes[T](n)

	if a := v.opts.allocator; a != nil && bytes > 0 {
		var err error
		if wait {
			err = a.AcquireMemory(ctx, bytes)
		} else {
			err = a.TryAcquireMemory(bytes)
		}
		if err != nil {
			return nil, 0, hypernum.NewAllocationError(n, bytes, err)
		}
	}

	buf, err := makeBuffer[T](n)
	if err != nil {
		if a := v.opts.allocator; a != nil && bytes > 0 {
			a.ReleaseMemory(bytes)
		}
		return nil, 0, hypernum.NewAllocationError(n, bytes, err)
	}
	return buf, bytes, nil
}

// reset replaces the buffer with a fresh zeroed buffer of n elements. On
// failure the vector is left empty and the error is recorded and logged.
func (v *Vector[T]) reset(n int) error {
	buf, bytes, err := v.allocate(context.Background(), n, false)
	v.adopt(buf, bytes)
	v.err = err
	v.opts.log().LogAllocation(n, bytes, err)
	return err
}

// adopt installs buf as the backing buffer, returning the previous
// reservation and registering bytes as the new one.
func (v *Vector[T]) adopt(buf []T, bytes int64) {
	v.releaseReservation()
	v.data = buf
	if a := v.opts.allocator; a != nil && bytes > 0 {
		v.reserved = bytes
		v.cleanup = runtime.AddCleanup(v, reservation.release, reservation{alloc: a, bytes: bytes})
	}
}

func (v *Vector[T]) releaseReservation() {
	if v.reserved == 0 {
		return
	}
	v.cleanup.Stop()
	v.opts.allocator.ReleaseMemory(v.reserved)
	v.reserved = 0
}

// Release drops the buffer and returns its reservation to the allocator.
// The vector is empty afterwards and may be reused.
func (v *Vector[T]) Release() {
	v.releaseReservation()
	v.data = nil
}

// Err returns the error of the most recent buffer allocation, if any.
// A vector whose allocation failed is empty.
func (v *Vector[T]) Err() error {
	return v.err
}
