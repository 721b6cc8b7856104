// Package vec implements owned, variable-length vectors over scalar, complex
// or quaternion elements, plus fixed-arity Vec2, Vec3 and Vec4 views.
//
// A Vector owns its backing buffer exclusively. Mutating methods (AddAssign,
// ScaleAssign, Assign, ...) change the buffer in place; every other operation
// returns a new, independently owned Vector.
//
//	a := vec.Of(1.0, 2.0, 3.0)
//	b := vec.Of(4.0, 5.0, 6.0)
//	c, err := a.Cross(b) // [-3, 6, -3]
//
// Element types are the predeclared integer and float types,
// cplx.Complex[S] and quat.Quaternion[S]. Constructing a Vector of any other
// element type panics.
//
// # Mixed element kinds
//
// Functions such as Add, Dot or Scale combine vectors of different scalar
// kinds. Their first type parameter names the result kind, following the
// promotion rules of package kind; conversions away from the natural kind are
// reported through the hypernum advisory channel.
//
// # Allocation
//
// Buffers can be accounted against a memory budget with WithAllocator.
// A *resource.Controller satisfies Allocator:
//
//	budget := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 20})
//	v := vec.New[float64](1024, vec.WithAllocator(budget))
//	if err := v.Err(); err != nil {
//		// v is empty; the failure has been logged.
//	}
//
// Reservations are returned when Release is called or when the Vector is
// garbage collected.
package vec
