package gpuprobe

import (
	"sync"
)

// BackendFactory constructs a backend instance on demand.
// A factory may return nil to signal that its backend was compiled out
// (see the rust package's stub registration).
type BackendFactory func() ProbeBackend

var (
	registryMu sync.RWMutex
	// Registered factories, keyed by backend name.
	backends = make(map[string]BackendFactory)
	// Selection order for Default(): the rust backend talks to
	// wgpu-native directly, native is the pure Go implementation,
	// software never fails.
	backendPriority = []string{BackendRust, BackendNative, BackendSoftware}
)

// Register makes a backend available under the given name.
// Backend packages call this from init(); registering a name twice
// replaces the earlier factory.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend by name. Tests use this to undo Register.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available lists the names of all registered backends.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// IsRegistered reports whether a backend name is known.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get instantiates the named backend.
// Returns nil for unknown names and for nil-returning factories.
func Get(name string) ProbeBackend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := backends[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default picks the highest-priority backend whose factory yields a
// non-nil instance, then falls back to any registered backend.
// Returns nil only when the registry is empty.
func Default() ProbeBackend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			if b := factory(); b != nil {
				return b
			}
		}
	}

	for _, factory := range backends {
		if b := factory(); b != nil {
			return b
		}
	}

	return nil
}
