package indicator

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// Factory constructs a fresh indicator instance with the given window.
type Factory func(window int) Indicator

var loadedFactories = make(map[string]Factory)

// RegisterFactory adds a factory under a unique key. Registering the same key
// twice is a programming error, so it panics, matching the init-time
// registration convention.
func RegisterFactory(key string, f Factory) {
	if _, exists := loadedFactories[key]; exists {
		panic(fmt.Errorf("indicator factory %q is already registered", key))
	}

	loadedFactories[key] = f
}

// GetFactory resolves a factory by exact key.
func GetFactory(key string) (Factory, error) {
	f, ok := loadedFactories[key]
	if !ok {
		return nil, errors.Errorf("indicator factory %q is not registered", key)
	}
	return f, nil
}

// ResolveFactory finds the single factory whose key satisfies the predicate.
// Zero or multiple matches fail loudly: an ambiguous match is as much a
// misconfiguration as a missing one.
func ResolveFactory(match func(key string) bool) (Factory, error) {
	var keys []string
	for key := range loadedFactories {
		if match(key) {
			keys = append(keys, key)
		}
	}

	switch len(keys) {
	case 0:
		return nil, errors.New("no indicator factory matched")
	case 1:
		return loadedFactories[keys[0]], nil
	}

	sort.Strings(keys)
	return nil, errors.Errorf("%d indicator factories matched: %v", len(keys), keys)
}

// RegisteredKeys lists the registered factory keys in sorted order.
func RegisteredKeys() []string {
	keys := make([]string, 0, len(loadedFactories))
	for key := range loadedFactories {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
