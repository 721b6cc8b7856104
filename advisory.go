package hypernum

import (
	"sync"
	"sync/atomic"

	"github.com/hupe1980/hypernum/kind"
)

// Conversion describes an operation whose result was stored in an element
// kind other than its natural (promoted) kind.
type Conversion struct {
	// Op names the operation, e.g. "cplx.Mul".
	Op string
	// From is the natural result kind according to the promotion table.
	From kind.Kind
	// To is the kind the result was actually stored in.
	To kind.Kind
	// Change classifies the conversion from From to To.
	Change kind.Change
}

// Observer receives conversion advisories. Advisories are notifications,
// the operation that raised one has already succeeded.
//
// Implementations must be safe for concurrent use.
type Observer interface {
	OnConversion(c Conversion)
}

// NoopObserver discards every advisory.
type NoopObserver struct{}

// OnConversion implements Observer.
func (NoopObserver) OnConversion(Conversion) {}

// LogObserver writes every advisory to a Logger at warn level.
type LogObserver struct {
	Logger *Logger
}

// OnConversion implements Observer.
func (o LogObserver) OnConversion(c Conversion) {
	l := o.Logger
	if l == nil {
		l = DefaultLogger()
	}
	l.LogConversion(c)
}

// BasicObserver counts advisories in memory.
// Useful for tests and basic monitoring without external dependencies.
type BasicObserver struct {
	Total     atomic.Int64
	Widening  atomic.Int64
	Narrowing atomic.Int64

	mu   sync.Mutex
	last Conversion
}

// OnConversion implements Observer.
func (b *BasicObserver) OnConversion(c Conversion) {
	b.Total.Add(1)
	switch c.Change {
	case kind.Widening:
		b.Widening.Add(1)
	case kind.Narrowing:
		b.Narrowing.Add(1)
	}
	b.mu.Lock()
	b.last = c
	b.mu.Unlock()
}

// Last returns the most recent advisory.
func (b *BasicObserver) Last() Conversion {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

type observerHolder struct {
	o Observer
}

var current atomic.Pointer[observerHolder]

func init() {
	current.Store(&observerHolder{o: LogObserver{}})
}

// SetObserver installs o as the process-wide advisory observer and returns
// the previous one. A nil o installs NoopObserver.
func SetObserver(o Observer) Observer {
	if o == nil {
		o = NoopObserver{}
	}
	return current.Swap(&observerHolder{o: o}).o
}

// CurrentObserver returns the installed advisory observer.
func CurrentObserver() Observer {
	return current.Load().o
}

// Advise reports a conversion when an operation whose natural result kind is
// natural stores its result as actual. It is a no-op when both kinds match.
func Advise(op string, natural, actual kind.Kind) {
	change := kind.Classify(natural, actual)
	if change == kind.Identity {
		return
	}
	CurrentObserver().OnConversion(Conversion{
		Op:     op,
		From:   natural,
		To:     actual,
		Change: change,
	})
}
