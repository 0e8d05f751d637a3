package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Pool bounds the number of concurrent ffmpeg processes
// to prevent resource exhaustion under high load
type Pool struct {
	maxWorkers int
	semaphore  chan struct{}
	active     int
	mu         sync.Mutex
}

const defaultMaxWorkers = 500

// NewPool creates a pool with maximum concurrent invocations
// Default: 500 workers (configurable via FFMPEG_MAX_WORKERS env var)
func NewPool() *Pool {
	maxWorkers := defaultMaxWorkers

	if envMax := os.Getenv("FFMPEG_MAX_WORKERS"); envMax != "" {
		if parsed, err := strconv.Atoi(envMax); err == nil && parsed > 0 {
			maxWorkers = parsed
		}
	}

	return NewPoolWithLimit(maxWorkers)
}

// NewPoolWithLimit creates a pool with specific max workers
func NewPoolWithLimit(maxWorkers int) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}

	return &Pool{
		maxWorkers: maxWorkers,
		semaphore:  make(chan struct{}, maxWorkers),
	}
}

// Acquire blocks until a worker slot is available
func (p *Pool) Acquire(ctx context.Context) error {
	select {
	case p.semaphore <- struct{}{}:
		p.mu.Lock()
		p.active++
		p.mu.Unlock()
		return nil
	case <-ctx.Done():
		return fmt.Errorf("pool acquire cancelled: %w", ctx.Err())
	}
}

// Release frees a worker slot
func (p *Pool) Release() {
	p.mu.Lock()
	p.active--
	p.mu.Unlock()
	<-p.semaphore
}

// ActiveWorkers returns the number of invocations currently holding a slot
func (p *Pool) ActiveWorkers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// MaxWorkers returns the maximum concurrent invocations allowed
func (p *Pool) MaxWorkers() int {
	return p.maxWorkers
}

// AvailableSlots returns the number of available worker slots
func (p *Pool) AvailableSlots() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.maxWorkers - p.active
}

// PooledBridge wraps a Bridge with pool-based concurrency control: each
// operation holds a worker slot for the lifetime of its subprocess.
type PooledBridge struct {
	*Bridge
	pool *Pool
}

// NewPooledBridge creates a bridge whose invocations go through a worker pool
func NewPooledBridge(pool *Pool) *PooledBridge {
	return &PooledBridge{
		Bridge: New(),
		pool:   pool,
	}
}

// WithOptions sets custom invocation options
func (pb *PooledBridge) WithOptions(opts Options) *PooledBridge {
	pb.Bridge.Options = opts
	return pb
}

// Atempo acquires a worker slot, runs the tempo change, and releases the slot
func (pb *PooledBridge) Atempo(ctx context.Context, buf *SampleBuffer, factor float64) (*SampleBuffer, error) {
	if err := pb.pool.Acquire(ctx); err != nil {
		return nil, err
	}
	defer pb.pool.Release()

	return pb.Bridge.AtempoContext(ctx, buf, factor)
}

// Trim acquires a worker slot, runs the trim, and releases the slot
func (pb *PooledBridge) Trim(ctx context.Context, buf *SampleBuffer, start, end float64) (*SampleBuffer, error) {
	if err := pb.pool.Acquire(ctx); err != nil {
		return nil, err
	}
	defer pb.pool.Release()

	return pb.Bridge.TrimContext(ctx, buf, start, end)
}

// Process acquires a worker slot, runs the generic round trip, and releases
// the slot
func (pb *PooledBridge) Process(ctx context.Context, buf *SampleBuffer, beforeInput, afterInput []string) (*SampleBuffer, error) {
	if err := pb.pool.Acquire(ctx); err != nil {
		return nil, err
	}
	defer pb.pool.Release()

	return pb.Bridge.Process(ctx, buf, beforeInput, afterInput)
}
