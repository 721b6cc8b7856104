package vec

import (
	"context"

	"github.com/hupe1980/hypernum"
	"github.com/hupe1980/hypernum/codec"
)

// Allocator accounts for the memory held by vector buffers.
//
// *resource.Controller implements Allocator.
type Allocator interface {
	// AcquireMemory reserves bytes, blocking until they fit or ctx is done.
	AcquireMemory(ctx context.Context, bytes int64) error
	// TryAcquireMemory reserves bytes without blocking.
	TryAcquireMemory(bytes int64) error
	// ReleaseMemory returns a reservation.
	ReleaseMemory(bytes int64)
}

type options struct {
	allocator Allocator
	logger    *hypernum.Logger
	codec     codec.Codec
}

// Option configures vector construction.
//
// Vectors derived from an existing vector (results of Add, Clone, Append, ...)
// inherit the options of their receiver or first operand.
type Option func(*options)

// WithAllocator accounts every buffer of the vector against a.
// If nil is passed, buffers are not accounted.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

// WithLogger configures the logger used to report allocation outcomes.
//
// If nil is passed, hypernum.DefaultLogger() is used.
func WithLogger(l *hypernum.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCodec sets the codec used by MarshalJSON and UnmarshalJSON.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) log() *hypernum.Logger {
	if o.logger == nil {
		return hypernum.DefaultLogger()
	}
	return o.logger
}

func (o options) enc() codec.Codec {
	if o.codec == nil {
		return codec.Default
	}
	return o.codec
}
