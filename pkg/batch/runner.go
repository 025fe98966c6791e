// Package batch runs the generator one or more times over a constraint set
// and caches seeded results.
//
// Both the CLI and the HTTP server go through [Runner] so that repeat counts,
// cache lookups, logging, and observability events are handled in one place.
package batch

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/casegen/pkg/cache"
	"github.com/matzehuels/casegen/pkg/constraint"
	"github.com/matzehuels/casegen/pkg/errors"
	"github.com/matzehuels/casegen/pkg/gen"
	"github.com/matzehuels/casegen/pkg/observability"
)

// MaxCount is the largest number of records a single request may ask for.
const MaxCount = 1000

// keyType labels cache events for batches.
const keyType = "batch"

// Request describes one batch.
type Request struct {
	Constraints *constraint.Set
	Count       int    // records to generate; 0 means 1
	Seed        *int64 // nil for unseeded output, which is never cached
	Refresh     bool   // bypass the cache lookup but still store the result
}

// Result is a generated batch.
type Result struct {
	ID       string
	Seed     *int64
	Records  []*gen.Record
	CacheHit bool
	Duration time.Duration
}

// Runner executes batches with caching.
//
// The Runner holds no per-request state. Every Run builds its own generator,
// so one Runner can serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Run generates req.Count records.
//
// Records come from a single generator, so with a seed the batch is the
// sequence GenerateTestCase produces on successive calls after one SetSeed.
// The first failing record aborts the batch and its error is returned as is.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	count, err := normalizeCount(req.Count)
	if err != nil {
		return nil, err
	}
	fields := 0
	if req.Constraints != nil {
		fields = req.Constraints.Len()
	}

	start := time.Now()
	hooks := observability.Generation()
	hooks.OnBatchStart(ctx, fields, count)

	res, err := r.run(ctx, req, count)
	duration := time.Since(start)
	hooks.OnBatchComplete(ctx, fields, count, duration, err)
	if err != nil {
		r.Logger.Debug("batch failed", "fields", fields, "count", count, "error", err)
		return nil, err
	}

	res.Duration = duration
	r.Logger.Info("generated test cases",
		"fields", fields,
		"count", count,
		"cached", res.CacheHit,
		"duration", duration)
	return res, nil
}

func (r *Runner) run(ctx context.Context, req Request, count int) (*Result, error) {
	res := &Result{ID: uuid.NewString(), Seed: req.Seed}

	var key string
	if req.Seed != nil {
		k, err := r.cacheKey(req.Constraints, *req.Seed, count)
		if err != nil {
			return nil, err
		}
		key = k
		if !req.Refresh {
			if records, ok := r.lookup(ctx, key); ok {
				res.Records = records
				res.CacheHit = true
				return res, nil
			}
		}
	}

	g := gen.New()
	if req.Seed != nil {
		g.SetSeed(*req.Seed)
	}
	res.Records = make([]*gen.Record, 0, count)
	for range count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := g.GenerateTestCase(req.Constraints)
		if err != nil {
			return nil, err
		}
		res.Records = append(res.Records, rec)
	}

	if key != "" {
		r.store(ctx, key, res.Records)
	}
	return res, nil
}

func normalizeCount(n int) (int, error) {
	switch {
	case n == 0:
		return 1, nil
	case n < 0:
		return 0, errors.New(errors.ErrCodeInvalidInput, "count must be positive, got %d", n)
	case n > MaxCount:
		return 0, errors.New(errors.ErrCodeInvalidInput, "count %d exceeds the maximum of %d", n, MaxCount)
	}
	return n, nil
}

// cacheKey hashes the canonical JSON form of the constraints, which keeps
// field order, together with the generator version, seed and count.
func (r *Runner) cacheKey(set *constraint.Set, seed int64, count int) (string, error) {
	if set == nil {
		set = constraint.NewSet()
	}
	data, err := json.Marshal(set)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode constraints")
	}
	return r.Keyer.BatchKey(cache.Hash(data), cache.BatchKeyOpts{
		Version: gen.Version,
		Seed:    seed,
		Count:   count,
	}), nil
}

// lookup returns cached records. Backend and decode failures count as misses.
func (r *Runner) lookup(ctx context.Context, key string) ([]*gen.Record, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}

	var records []*gen.Record
	if err := json.Unmarshal(data, &records); err != nil {
		r.Logger.Debug("discarding unreadable cache entry", "error", err)
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return records, true
}

// store writes records to the cache. Failures are logged, not returned.
func (r *Runner) store(ctx context.Context, key string, records []*gen.Record) {
	data, err := json.Marshal(records)
	if err != nil {
		r.Logger.Warn("encode batch for cache", "error", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLBatch); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}
