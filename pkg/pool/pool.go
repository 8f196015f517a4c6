// Package pool recycles content instances by kind so hosts can reuse expensive
// native content across mounts.
package pool

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/go-drift/rendercore/pkg/content"
	"github.com/go-drift/rendercore/pkg/logging"
)

// ErrUnknownKind is returned when no factory is registered for a kind.
var ErrUnknownKind = errors.New("pool: unknown content kind")

// Factory creates content of one kind.
type Factory interface {
	// Kind returns the content kind this factory creates.
	Kind() string

	// Create allocates a new content instance.
	Create() (any, error)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc struct {
	K  string
	Fn func() (any, error)
}

func (f FactoryFunc) Kind() string         { return f.K }
func (f FactoryFunc) Create() (any, error) { return f.Fn() }

// Resetter is implemented by content that must be cleared before reuse.
type Resetter interface {
	Reset()
}

// Pool holds released content per kind, up to MaxPerKind instances each.
// It is safe for concurrent use so pools can be pre-filled off the UI thread.
type Pool struct {
	maxPerKind int
	factories  map[string]Factory
	free       map[string][]any
	created    atomic.Int64
	mu         sync.Mutex
	logger     *zap.Logger
}

// New creates a pool that retains up to maxPerKind instances per kind.
func New(maxPerKind int) *Pool {
	return &Pool{
		maxPerKind: maxPerKind,
		factories:  make(map[string]Factory),
		free:       make(map[string][]any),
		logger:     logging.Named("pool"),
	}
}

// Register registers a factory for its kind, replacing any previous one.
func (p *Pool) Register(factory Factory) {
	p.mu.Lock()
	p.factories[factory.Kind()] = factory
	p.mu.Unlock()
}

// Acquire returns a pooled instance of kind, or creates one.
func (p *Pool) Acquire(kind string) (any, error) {
	p.mu.Lock()
	if free := p.free[kind]; len(free) > 0 {
		c := free[len(free)-1]
		free[len(free)-1] = nil
		p.free[kind] = free[:len(free)-1]
		p.mu.Unlock()
		return c, nil
	}
	factory, ok := p.factories[kind]
	p.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	p.logger.Debug("pool miss", zap.String("kind", kind))
	c, err := factory.Create()
	if err != nil {
		return nil, fmt.Errorf("pool: create %q: %w", kind, err)
	}
	p.created.Add(1)
	return c, nil
}

// Release returns c to the pool. Content without a kind, of an unregistered
// kind, or beyond the per-kind cap is dropped.
func (p *Pool) Release(c any) {
	typed, ok := c.(content.Typed)
	if !ok {
		p.logger.Debug("dropping untyped content", zap.String("type", fmt.Sprintf("%T", c)))
		return
	}
	kind := typed.Kind()

	p.mu.Lock()
	_, registered := p.factories[kind]
	full := len(p.free[kind]) >= p.maxPerKind
	if registered && !full {
		if r, ok := c.(Resetter); ok {
			r.Reset()
		}
		p.free[kind] = append(p.free[kind], c)
	}
	p.mu.Unlock()

	if !registered || full {
		p.logger.Debug("dropping content", zap.String("kind", kind), zap.Bool("full", full))
	}
}

// Prefill creates instances of kind until n are pooled or the cap is reached.
func (p *Pool) Prefill(kind string, n int) error {
	p.mu.Lock()
	factory, ok := p.factories[kind]
	p.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	for i := p.Size(kind); i < min(n, p.maxPerKind); i++ {
		c, err := factory.Create()
		if err != nil {
			return fmt.Errorf("pool: prefill %q: %w", kind, err)
		}
		p.created.Add(1)
		p.Release(c)
	}
	return nil
}

// Size returns the number of pooled instances of kind.
func (p *Pool) Size(kind string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free[kind])
}

// Created returns how many instances the factories have allocated.
func (p *Pool) Created() int64 {
	return p.created.Load()
}
