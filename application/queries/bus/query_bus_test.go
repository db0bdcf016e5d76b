package bus

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoQuery struct {
	Value   int
	Invalid bool
}

func (q echoQuery) Validate() error {
	if q.Invalid {
		return errors.New("invalid echo")
	}
	return nil
}

type otherQuery struct{}

func (otherQuery) Validate() error { return nil }

func echoHandler(calls *int) QueryHandler {
	return QueryHandlerFunc(func(_ context.Context, query Query) (interface{}, error) {
		*calls++
		q := query.(echoQuery)
		if q.Value < 0 {
			return nil, errors.New("negative")
		}
		return q.Value * 2, nil
	})
}

func TestQueryBus_Ask(t *testing.T) {
	ctx := context.Background()
	calls := 0
	b := NewQueryBus()
	require.NoError(t, b.Register(echoQuery{}, echoHandler(&calls)))

	result, err := b.Ask(ctx, echoQuery{Value: 21})
	require.NoError(t, err)
	assert.Equal(t, 42, result)

	_, err = b.Ask(ctx, echoQuery{Invalid: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query validation failed")
	assert.Equal(t, 1, calls, "invalid queries never reach the handler")

	_, err = b.Ask(ctx, echoQuery{Value: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query handler failed: negative")

	_, err = b.Ask(ctx, otherQuery{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler registered")
}

func TestQueryBus_RegisterTwice(t *testing.T) {
	calls := 0
	b := NewQueryBus()
	require.NoError(t, b.Register(echoQuery{}, echoHandler(&calls)))

	err := b.Register(echoQuery{}, echoHandler(&calls))
	assert.Error(t, err)
}

type mapCache struct {
	mu    sync.Mutex
	items map[string]interface{}
}

func (c *mapCache) Get(_ context.Context, key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	return v, ok
}

func (c *mapCache) Set(_ context.Context, key string, value interface{}, _ int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func TestCachingMiddleware(t *testing.T) {
	ctx := context.Background()
	calls := 0
	cache := &mapCache{items: map[string]interface{}{}}
	handler := NewCachingMiddleware(cache, 60).Wrap(echoHandler(&calls))

	for i := 0; i < 3; i++ {
		result, err := handler.Handle(ctx, echoQuery{Value: 5})
		require.NoError(t, err)
		assert.Equal(t, 10, result)
	}
	assert.Equal(t, 1, calls)

	_, err := handler.Handle(ctx, echoQuery{Value: 6})
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "different query values use different keys")

	_, err = handler.Handle(ctx, echoQuery{Value: -1})
	require.Error(t, err)
	_, err = handler.Handle(ctx, echoQuery{Value: -1})
	require.Error(t, err)
	assert.Equal(t, 4, calls, "errors are not cached")
}

type recordingMetrics struct {
	counts map[string]int
	timers int
}

func (m *recordingMetrics) StartTimer(metric, label string) Timer {
	return timerFunc(func() { m.timers++ })
}

func (m *recordingMetrics) Increment(metric, label string) {
	m.counts[metric+"/"+label]++
}

type timerFunc func()

func (f timerFunc) Stop() { f() }

func TestMetricsMiddleware(t *testing.T) {
	ctx := context.Background()
	calls := 0
	metrics := &recordingMetrics{counts: map[string]int{}}
	handler := NewMetricsMiddleware(metrics).Wrap(echoHandler(&calls))

	_, err := handler.Handle(ctx, echoQuery{Value: 1})
	require.NoError(t, err)
	_, err = handler.Handle(ctx, echoQuery{Value: -1})
	require.Error(t, err)

	assert.Equal(t, 2, metrics.counts["query_count/echoQuery"])
	assert.Equal(t, 1, metrics.counts["query_success/echoQuery"])
	assert.Equal(t, 1, metrics.counts["query_errors/echoQuery"])
	assert.Equal(t, 2, metrics.timers)
}
