package fact

import "context"

// WorkerPool limits how many resolvers run at once. Every resolver may spawn
// a subprocess, so this bounds process-table pressure during a collection.
type WorkerPool struct {
	sem chan struct{}
}

// NewWorkerPool creates a new worker pool with the given size.
func NewWorkerPool(size int) *WorkerPool {
	if size <= 0 {
		size = DefaultWorkers
	}
	return &WorkerPool{
		sem: make(chan struct{}, size),
	}
}

// Size returns the number of slots in the pool.
func (p *WorkerPool) Size() int {
	return cap(p.sem)
}

// RunContext executes fn with pool semaphore held, respecting context cancellation.
// Returns ctx.Err() if context is cancelled while waiting to acquire.
func (p *WorkerPool) RunContext(ctx context.Context, fn func()) error {
	select {
	case p.sem <- struct{}{}:
		defer func() { <-p.sem }()
		fn()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
