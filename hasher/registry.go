package hasher

import (
	"errors"

	"github.com/dolthub/swiss"
)

var registry = swiss.NewMap[string, *Algorithm](8)

var ErrUnknownAlgorithm = errors.New("hasher: unknown algorithm")

// Register makes alg constructible by name through New. It is meant to be
// called from package init functions; registration is not safe to run
// concurrently with lookups.
func Register(alg *Algorithm) {
	if alg.Name == "" || alg.New == nil || alg.Size <= 0 || alg.Size > MaxSize {
		panic("hasher: incomplete algorithm registration")
	}
	registry.Put(alg.Name, alg)
}

// Lookup returns the registered Algorithm with the given canonical name.
func Lookup(name string) (*Algorithm, error) {
	if alg, ok := registry.Get(name); ok {
		return alg, nil
	}
	return nil, ErrUnknownAlgorithm
}

// New returns a fresh Engine for the registered algorithm with the given
// canonical name.
func New(name string) (*Engine, error) {
	alg, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return NewEngine(alg), nil
}

// Names returns the canonical names of all registered algorithms.
func Names() []string {
	names := make([]string, 0, registry.Count())
	registry.Iter(func(name string, _ *Algorithm) (stop bool) {
		names = append(names, name)
		return false
	})
	return names
}
