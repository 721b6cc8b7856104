package hypernum

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hypernum/kind"
)

func TestAdvise(t *testing.T) {
	obs := &BasicObserver{}
	prev := SetObserver(obs)
	t.Cleanup(func() { SetObserver(prev) })

	Advise("test.Identity", kind.Float64, kind.Float64)
	assert.Equal(t, int64(0), obs.Total.Load())

	Advise("test.Widen", kind.Int16, kind.Int64)
	Advise("test.Narrow", kind.Float64, kind.Int32)
	Advise("test.Sign", kind.Int8, kind.Uint8)

	assert.Equal(t, int64(3), obs.Total.Load())
	assert.Equal(t, int64(1), obs.Widening.Load())
	assert.Equal(t, int64(2), obs.Narrowing.Load())
	assert.Equal(t, Conversion{
		Op:     "test.Sign",
		From:   kind.Int8,
		To:     kind.Uint8,
		Change: kind.Narrowing,
	}, obs.Last())
}

func TestSetObserver(t *testing.T) {
	prev := SetObserver(nil)
	t.Cleanup(func() { SetObserver(prev) })

	assert.IsType(t, LogObserver{}, prev, "log observer is installed by default")
	assert.IsType(t, NoopObserver{}, CurrentObserver())

	obs := &BasicObserver{}
	assert.IsType(t, NoopObserver{}, SetObserver(obs))
	assert.Same(t, obs, CurrentObserver())
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, nil))

	prev := SetObserver(LogObserver{Logger: logger})
	t.Cleanup(func() { SetObserver(prev) })

	Advise("cplx.Mul", kind.Float64, kind.Int)

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "op=cplx.Mul")
	assert.Contains(t, out, "from=float64")
	assert.Contains(t, out, "to=int")
	assert.Contains(t, out, "change=narrowing")
}

func TestBasicObserverConcurrent(t *testing.T) {
	obs := &BasicObserver{}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				obs.OnConversion(Conversion{Op: "x", Change: kind.Widening})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(800), obs.Total.Load())
	assert.Equal(t, int64(800), obs.Widening.Load())
}
