package fact

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Collect(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add("php_fact_extension_dir", constant("/usr/lib/php/20220829")))
	require.NoError(t, reg.Add("absent_fact", ResolverFunc(func(context.Context) Value { return Absent() })))

	c := NewCollector(reg, 2, zerolog.Nop())

	results, err := c.CollectAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "absent_fact", results[0].Name)
	assert.False(t, results[0].Value.IsPresent())

	assert.Equal(t, "php_fact_extension_dir", results[1].Name)
	assert.Equal(t, Some("/usr/lib/php/20220829"), results[1].Value)
}

func TestCollector_UnknownFact(t *testing.T) {
	var calls atomic.Int32
	reg := NewRegistry()
	require.NoError(t, reg.Add("known", ResolverFunc(func(context.Context) Value {
		calls.Add(1)
		return Some("x")
	})))

	c := NewCollector(reg, 1, zerolog.Nop())

	_, err := c.Collect(context.Background(), []string{"known", "unknown"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown fact "unknown"`)
	assert.Zero(t, calls.Load())
}

func TestCollector_DeduplicatesNames(t *testing.T) {
	var calls atomic.Int32
	reg := NewRegistry()
	require.NoError(t, reg.Add("counted", ResolverFunc(func(context.Context) Value {
		calls.Add(1)
		return Some("x")
	})))

	c := NewCollector(reg, 4, zerolog.Nop())

	results, err := c.Collect(context.Background(), []string{"counted", "counted"})
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCollector_BoundedConcurrency(t *testing.T) {
	var running, peak atomic.Int32
	reg := NewRegistry()

	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		require.NoError(t, reg.Add(name, ResolverFunc(func(context.Context) Value {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			running.Add(-1)
			return Some(name)
		})))
	}

	c := NewCollector(reg, 2, zerolog.Nop())

	results, err := c.CollectAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, results, 6)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestCollector_CancelledContext(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add("slow", constant("x")))

	c := NewCollector(reg, 1, zerolog.Nop())

	// Hold the only slot so the resolver cannot start.
	c.pool.sem <- struct{}{}
	t.Cleanup(func() { <-c.pool.sem })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := c.CollectAll(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Value.IsPresent())
}

func TestNewWorkerPool_DefaultSize(t *testing.T) {
	assert.Equal(t, DefaultWorkers, NewWorkerPool(0).Size())
	assert.Equal(t, 3, NewWorkerPool(3).Size())
}
