package resource

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned when a single reservation is larger
// than the configured memory limit and could never be granted.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes caps the position bytes held by in-flight extractions.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// MaxConcurrentExtractions is the maximum number of extractions running at once.
	// If 0, defaults to 1.
	MaxConcurrentExtractions int64

	// VerticesPerSec throttles extraction throughput so bulk indexing does
	// not starve interactive work. If 0, unlimited.
	VerticesPerSec int64
}

// Controller manages extraction resources (memory, concurrency, throughput).
type Controller struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// Concurrency
	extractSem *semaphore.Weighted
	running    atomic.Int64

	// Throughput
	vertexLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentExtractions <= 0 {
		cfg.MaxConcurrentExtractions = 1
	}

	c := &Controller{
		cfg:        cfg,
		extractSem: semaphore.NewWeighted(cfg.MaxConcurrentExtractions),
	}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.VerticesPerSec > 0 {
		c.vertexLimiter = rate.NewLimiter(rate.Limit(cfg.VerticesPerSec), int(cfg.VerticesPerSec))
	}

	return c
}

// Config returns the effective configuration.
func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// AcquireMemory reserves bytes, blocking until they are available or ctx
// is canceled. A request larger than the limit fails with ErrMemoryLimitExceeded.
func (c *Controller) AcquireMemory(ctx context.Context, bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if bytes > c.cfg.MemoryLimitBytes {
			return fmt.Errorf("%w: requested %d bytes, limit %d", ErrMemoryLimitExceeded, bytes, c.cfg.MemoryLimitBytes)
		}
		if err := c.memSem.Acquire(ctx, bytes); err != nil {
			return err
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// TryAcquireMemory attempts to reserve memory without blocking.
// Returns true if acquired, false if limit would be exceeded.
func (c *Controller) TryAcquireMemory(bytes int64) bool {
	if c == nil || bytes <= 0 {
		return true
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(bytes) {
			return false
		}
	}

	c.memUsed.Add(bytes)
	return true
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// AcquireExtraction reserves an extraction slot.
// Blocks if all slots are busy.
func (c *Controller) AcquireExtraction(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if err := c.extractSem.Acquire(ctx, 1); err != nil {
		return err
	}
	c.running.Add(1)
	return nil
}

// TryAcquireExtraction attempts to reserve an extraction slot without blocking.
func (c *Controller) TryAcquireExtraction() bool {
	if c == nil {
		return true
	}
	if !c.extractSem.TryAcquire(1) {
		return false
	}
	c.running.Add(1)
	return true
}

// ReleaseExtraction releases an extraction slot.
func (c *Controller) ReleaseExtraction() {
	if c == nil {
		return
	}
	c.running.Add(-1)
	c.extractSem.Release(1)
}

// RunningExtractions returns the number of held extraction slots.
func (c *Controller) RunningExtractions() int64 {
	if c == nil {
		return 0
	}
	return c.running.Load()
}

// AcquireVertices waits until the throughput limit allows processing n vertices.
// Requests larger than one second of budget are spread over several waits.
func (c *Controller) AcquireVertices(ctx context.Context, n int) error {
	if c == nil || c.vertexLimiter == nil {
		return nil
	}
	burst := c.vertexLimiter.Burst()
	for n > 0 {
		chunk := min(n, burst)
		if err := c.vertexLimiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// Reserve acquires everything one extraction needs: a slot, the memory for
// its position buffer and throughput for its vertices. The returned release
// function must be called exactly once when the extraction is done.
// On error nothing is held.
func (c *Controller) Reserve(ctx context.Context, bytes int64, vertices int) (release func(), err error) {
	if c == nil {
		return func() {}, nil
	}

	if err := c.AcquireExtraction(ctx); err != nil {
		return nil, err
	}
	if err := c.AcquireMemory(ctx, bytes); err != nil {
		c.ReleaseExtraction()
		return nil, err
	}
	if err := c.AcquireVertices(ctx, vertices); err != nil {
		c.ReleaseMemory(bytes)
		c.ReleaseExtraction()
		return nil, err
	}

	return func() {
		c.ReleaseMemory(bytes)
		c.ReleaseExtraction()
	}, nil
}
