package gfxbridge

import "sync"

// FormatTranslator maps a backend's native format identifiers to the
// canonical Format. The native identifier is carried as uint64 so one
// interface covers every backend's enum width; each backend subpackage
// also exposes typed functions for callers that hold concrete types.
//
// Translators are stateless and registered via Register, typically from
// init() functions in the backend subpackages.
type FormatTranslator interface {
	// Name returns the backend identifier (e.g. "vulkan", "opengl").
	Name() string

	// ToCanonical returns the canonical equivalent of a native format
	// identifier, or FormatUnknown when no equivalent exists.
	ToCanonical(native uint64) Format
}

// ReverseTranslator is implemented by translators whose backend has a
// canonical-to-native direction (d3d, webgpu). The returned identifier
// is the backend's unknown sentinel when the canonical format has no
// native equivalent.
type ReverseTranslator interface {
	FromCanonical(f Format) uint64
}

// registry holds registered translators.
var (
	registryMu  sync.RWMutex
	translators = make(map[string]FormatTranslator)
)

// Register registers a format translator under its own name. This is
// typically called from init() functions in backend subpackages. If a
// translator with the same name is already registered, it is replaced.
func Register(t FormatTranslator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	translators[t.Name()] = t
}

// Unregister removes a translator from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(translators, name)
}

// Available returns a list of registered translator names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(translators))
	for name := range translators {
		names = append(names, name)
	}
	return names
}

// Get returns a translator by name, or an error when none is registered
// under that name.
func Get(name string) (FormatTranslator, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	t, ok := translators[name]
	if !ok {
		return nil, ErrTranslatorNotRegistered
	}
	return t, nil
}
