package fact

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/factprobe/internal/core/logging"
)

// DefaultWorkers is the pool size used when none is configured.
const DefaultWorkers = 4

// Result is one resolved fact.
type Result struct {
	Name    string
	Value   Value
	Elapsed time.Duration
}

// Collector resolves registered facts through a bounded worker pool.
type Collector struct {
	registry *Registry
	pool     *WorkerPool
	logger   zerolog.Logger
}

// NewCollector creates a collector over reg running at most workers
// resolvers concurrently.
func NewCollector(reg *Registry, workers int, logger zerolog.Logger) *Collector {
	return &Collector{
		registry: reg,
		pool:     NewWorkerPool(workers),
		logger:   logger,
	}
}

// Registry returns the registry the collector resolves from.
func (c *Collector) Registry() *Registry {
	return c.registry
}

// Collect resolves the named facts and returns results sorted by name.
// Duplicate names are resolved once. An unknown name is an error and no
// resolver runs. Facts that could not start before ctx was cancelled are
// reported as absent.
func (c *Collector) Collect(ctx context.Context, names []string) ([]Result, error) {
	unique := make(map[string]Resolver, len(names))
	for _, name := range names {
		res, ok := c.registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown fact %q", name)
		}
		unique[name] = res
	}

	sorted := make([]string, 0, len(unique))
	for name := range unique {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	results := make([]Result, len(sorted))
	var wg sync.WaitGroup

	for i, name := range sorted {
		results[i].Name = name
		res := unique[name]

		wg.Add(1)
		go func() {
			defer wg.Done()

			fctx := logging.WithFact(ctx, name)
			err := c.pool.RunContext(ctx, func() {
				start := time.Now()
				results[i].Value = res.Resolve(fctx)
				results[i].Elapsed = time.Since(start)
			})
			if err != nil {
				c.logger.Debug().Ctx(fctx).Err(err).Msg("fact skipped")
				return
			}

			c.logger.Debug().Ctx(fctx).
				Bool("present", results[i].Value.IsPresent()).
				Dur("elapsed", results[i].Elapsed).
				Msg("fact resolved")
		}()
	}

	wg.Wait()
	return results, nil
}

// CollectAll resolves every registered fact.
func (c *Collector) CollectAll(ctx context.Context) ([]Result, error) {
	return c.Collect(ctx, c.registry.Names())
}
