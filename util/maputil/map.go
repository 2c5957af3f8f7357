package maputil

import (
	"github.com/tatterwing/lootkit/util/errors"
)

// Zip builds a map from parallel key and value slices.
// Later duplicates of a key overwrite earlier ones.
func Zip[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, errors.Newf("mismatched lengths: %v key(s) but %v value(s)", len(keys), len(values))
	}
	m := make(map[K]V, len(keys))
	for i, k := range keys {
		m[k] = values[i]
	}
	return m, nil
}

func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
