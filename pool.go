package md2post

import (
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps pooled services; past this, goroutine scheduling
	// overhead outweighs throughput gains for CPU-bound text work.
	MaxPoolSize = 8
)

// ServicePool manages a pool of Service instances for parallel batch
// processing. Each service keeps its own built rendering pipelines, so
// workers never share a goldmark instance. Services are created lazily on
// first acquire.
type ServicePool struct {
	size    int
	opts    []Option
	sem     chan *Service
	mu      sync.Mutex
	created int
}

// NewServicePool creates a pool with capacity for n Service instances,
// each constructed with the given options.
func NewServicePool(n int, opts ...Option) *ServicePool {
	if n < MinPoolSize {
		n = MinPoolSize
	}
	return &ServicePool{
		size: n,
		opts: opts,
		sem:  make(chan *Service, n),
	}
}

// Acquire gets a service from the pool, creating one if capacity allows.
// Blocks while all services are in use.
func (p *ServicePool) Acquire() *Service {
	select {
	case svc := <-p.sem:
		return svc
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()
		return New(p.opts...)
	}
	p.mu.Unlock()

	return <-p.sem
}

// Release returns a service to the pool.
func (p *ServicePool) Release(svc *Service) {
	if svc == nil {
		return
	}
	p.sem <- svc
}

// Size returns the pool capacity.
func (p *ServicePool) Size() int {
	return p.size
}

// ResolvePoolSize determines the pool size: an explicit worker count wins,
// otherwise GOMAXPROCS (adjusted by automaxprocs in containers), clamped to
// the pool bounds.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}
	n := runtime.GOMAXPROCS(0)
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
