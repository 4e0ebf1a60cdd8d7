package capability

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xraph/batch"
	"github.com/xraph/batch/job"
)

// NoopIdentifier names the built-in no-op capability every registry holds.
const NoopIdentifier = "batch.job.Noop"

// Loader produces the symbol table of one container. It runs at most once
// per fully completed load; a load left mid-flight is retried on the next
// resolution.
type Loader func() (map[string]job.Factory, error)

type container struct {
	symbols      map[string]job.Factory
	initializing bool
}

// Registry maps container paths to symbol tables and resolves dotted
// identifiers against them. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]Loader
	loaded  map[string]*container
}

// NewRegistry creates a Registry with the built-in no-op container
// registered.
func NewRegistry() *Registry {
	r := &Registry{
		loaders: make(map[string]Loader),
		loaded:  make(map[string]*container),
	}
	r.RegisterStatic("batch.job", map[string]job.Factory{
		"Noop": func() job.Job { return job.Noop{} },
	})
	return r
}

// Register adds a container whose symbols are produced by loader on first
// resolution. A previous registration under the same path is replaced and
// its cached load discarded.
func (r *Registry) Register(path string, loader Loader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[path] = loader
	delete(r.loaded, path)
}

// RegisterStatic adds a container from a ready symbol table.
func (r *Registry) RegisterStatic(path string, symbols map[string]job.Factory) {
	copied := make(map[string]job.Factory, len(symbols))
	for name, f := range symbols {
		copied[name] = f
	}
	r.Register(path, func() (map[string]job.Factory, error) {
		return copied, nil
	})
}

// Resolve returns the factory registered under a dotted identifier.
//
// The identifier splits at its last dot into container path and symbol
// name; an identifier without a dot fails with batch.ErrMalformedIdentifier.
// An unregistered container, a failing loader, or an absent symbol fails
// with batch.ErrCapabilityNotFound.
func (r *Registry) Resolve(identifier string) (job.Factory, error) {
	idx := strings.LastIndex(identifier, ".")
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q has no container path", batch.ErrMalformedIdentifier, identifier)
	}
	path, symbol := identifier[:idx], identifier[idx+1:]

	c, err := r.load(path)
	if err != nil {
		return nil, err
	}

	factory, ok := c.symbols[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: container %q does not define %q", batch.ErrCapabilityNotFound, path, symbol)
	}
	return factory, nil
}

// load returns the cached container for path, loading it if the cache has
// no fully initialized entry.
func (r *Registry) load(path string) (*container, error) {
	r.mu.RLock()
	c, ok := r.loaded[path]
	r.mu.RUnlock()
	if ok && !c.initializing {
		return c, nil
	}

	r.mu.Lock()
	loader, ok := r.loaders[path]
	if !ok {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: no container registered at %q", batch.ErrCapabilityNotFound, path)
	}
	// Mark the entry mid-initialization before releasing the lock so a
	// resolution triggered by the loader itself sees a miss, not a
	// partially initialized container.
	c = &container{initializing: true}
	r.loaded[path] = c
	r.mu.Unlock()

	symbols, err := loader()
	if err != nil {
		r.mu.Lock()
		delete(r.loaded, path)
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: load container %q: %v", batch.ErrCapabilityNotFound, path, err)
	}

	r.mu.Lock()
	c.symbols = symbols
	c.initializing = false
	r.mu.Unlock()
	return c, nil
}
