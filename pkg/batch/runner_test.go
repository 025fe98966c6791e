package batch

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/casegen/pkg/cache"
	"github.com/matzehuels/casegen/pkg/constraint"
	"github.com/matzehuels/casegen/pkg/errors"
	"github.com/matzehuels/casegen/pkg/gen"
	"github.com/matzehuels/casegen/pkg/observability"
)

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.data[key]
	return d, ok, nil
}

func (m *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	m.sets++
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memCache) Close() error { return nil }

var _ cache.Cache = (*memCache)(nil)

type recordingHooks struct {
	mu                   sync.Mutex
	started, completed   int
	hits, misses, writes int
	lastErr              error
}

func (h *recordingHooks) OnBatchStart(context.Context, int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started++
}

func (h *recordingHooks) OnBatchComplete(_ context.Context, _, _ int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completed++
	h.lastErr = err
}

func (h *recordingHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *recordingHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *recordingHooks) OnCacheSet(context.Context, string, int) { h.writes++ }

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func sampleSet() *constraint.Set {
	return constraint.NewSet().
		Put("n", constraint.Constraint{Type: constraint.TypeInt, Min: constraint.Num(1), Max: constraint.Num(100)}).
		Put("t", constraint.Constraint{Type: constraint.TypeTree, Vertices: constraint.Num(4)})
}

func seed(v int64) *int64 { return &v }

func TestRunSeededIsReproducible(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())

	a, err := r.Run(context.Background(), Request{Constraints: sampleSet(), Count: 3, Seed: seed(12345)})
	require.NoError(t, err)
	b, err := r.Run(context.Background(), Request{Constraints: sampleSet(), Count: 3, Seed: seed(12345)})
	require.NoError(t, err)

	ja, _ := json.Marshal(a.Records)
	jb, _ := json.Marshal(b.Records)
	assert.JSONEq(t, string(ja), string(jb))
	assert.Len(t, a.Records, 3)
	assert.NotEqual(t, a.ID, b.ID)

	first, _ := a.Records[0].Get("n")
	assert.Equal(t, 3, first)
}

func TestRunCountDefaultsAndLimits(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())

	res, err := r.Run(context.Background(), Request{Constraints: sampleSet()})
	require.NoError(t, err)
	assert.Len(t, res.Records, 1)

	for _, n := range []int{-1, MaxCount + 1} {
		_, err := r.Run(context.Background(), Request{Constraints: sampleSet(), Count: n})
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "count=%d", n)
	}
}

func TestRunCachesSeededBatches(t *testing.T) {
	observability.Reset()
	defer observability.Reset()
	hooks := &recordingHooks{}
	observability.SetGenerationHooks(hooks)
	observability.SetCacheHooks(hooks)

	mc := newMemCache()
	r := NewRunner(mc, nil, quietLogger())
	req := Request{Constraints: sampleSet(), Count: 2, Seed: seed(7)}

	first, err := r.Run(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.CacheHit)
	assert.Equal(t, 1, mc.sets)

	second, err := r.Run(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, 1, mc.sets)

	j1, _ := json.Marshal(first.Records)
	j2, _ := json.Marshal(second.Records)
	assert.Equal(t, string(j1), string(j2), "cached records must serialize identically")

	assert.Equal(t, 2, hooks.started)
	assert.Equal(t, 2, hooks.completed)
	assert.Equal(t, 1, hooks.hits)
	assert.Equal(t, 1, hooks.misses)
	assert.Equal(t, 1, hooks.writes)
}

func TestRunRefreshBypassesLookup(t *testing.T) {
	mc := newMemCache()
	r := NewRunner(mc, nil, quietLogger())
	req := Request{Constraints: sampleSet(), Seed: seed(7)}

	_, err := r.Run(context.Background(), req)
	require.NoError(t, err)

	req.Refresh = true
	res, err := r.Run(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, res.CacheHit)
	assert.Equal(t, 2, mc.sets)
}

func TestRunKeyDependsOnSeedCountAndOrder(t *testing.T) {
	mc := newMemCache()
	r := NewRunner(mc, nil, quietLogger())
	ctx := context.Background()

	reversed := constraint.NewSet().
		Put("t", constraint.Constraint{Type: constraint.TypeTree, Vertices: constraint.Num(4)}).
		Put("n", constraint.Constraint{Type: constraint.TypeInt, Min: constraint.Num(1), Max: constraint.Num(100)})

	reqs := []Request{
		{Constraints: sampleSet(), Seed: seed(1)},
		{Constraints: sampleSet(), Seed: seed(2)},
		{Constraints: sampleSet(), Seed: seed(1), Count: 2},
		{Constraints: reversed, Seed: seed(1)},
	}
	for _, req := range reqs {
		res, err := r.Run(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.CacheHit)
	}
	assert.Len(t, mc.data, 4)
}

type recordingKeyer struct {
	cache.Keyer
	opts []cache.BatchKeyOpts
}

func (k *recordingKeyer) BatchKey(hash string, opts cache.BatchKeyOpts) string {
	k.opts = append(k.opts, opts)
	return k.Keyer.BatchKey(hash, opts)
}

func TestRunKeyIncludesGeneratorVersion(t *testing.T) {
	mc := newMemCache()
	keyer := &recordingKeyer{Keyer: cache.NewDefaultKeyer()}
	r := NewRunner(mc, keyer, quietLogger())
	req := Request{Constraints: sampleSet(), Count: 2, Seed: seed(7)}

	// An entry stored under the same request by an older generator.
	data, err := json.Marshal(sampleSet())
	require.NoError(t, err)
	stale := keyer.Keyer.BatchKey(cache.Hash(data), cache.BatchKeyOpts{Version: "0", Seed: 7, Count: 2})
	mc.data[stale] = []byte(`[{"stale":true},{"stale":true}]`)

	res, err := r.Run(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, res.CacheHit)
	require.Len(t, keyer.opts, 1)
	assert.Equal(t, cache.BatchKeyOpts{Version: gen.Version, Seed: 7, Count: 2}, keyer.opts[0])
	assert.Len(t, mc.data, 2)
}

func TestRunUnseededNeverCached(t *testing.T) {
	mc := newMemCache()
	r := NewRunner(mc, nil, quietLogger())

	for range 2 {
		res, err := r.Run(context.Background(), Request{Constraints: sampleSet()})
		require.NoError(t, err)
		assert.False(t, res.CacheHit)
		assert.Nil(t, res.Seed)
	}
	assert.Empty(t, mc.data)
}

func TestRunPropagatesGenerationErrors(t *testing.T) {
	observability.Reset()
	defer observability.Reset()
	hooks := &recordingHooks{}
	observability.SetGenerationHooks(hooks)

	mc := newMemCache()
	r := NewRunner(mc, nil, quietLogger())
	set := constraint.NewSet().
		Put("g", constraint.Constraint{Type: constraint.TypeGraph, Vertices: constraint.Num(3), Edges: constraint.Num(5)})

	_, err := r.Run(context.Background(), Request{Constraints: set, Seed: seed(1)})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeTooManyEdges, errors.GetCode(err))
	assert.Empty(t, mc.data)
	assert.Equal(t, err, hooks.lastErr)
}

func TestRunHonorsCancellation(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, Request{Constraints: sampleSet(), Count: 5})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	assert.IsType(t, &cache.NullCache{}, r.Cache)
	assert.NotNil(t, r.Keyer)
	assert.NotNil(t, r.Logger)
}
