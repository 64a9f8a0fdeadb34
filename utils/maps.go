package utils

import (
	"cmp"
	"iter"
	"slices"
)

func MapKeys[K comparable, V any](m map[K]V) []K {
	sl := make([]K, 0, len(m))
	for k := range m {
		sl = append(sl, k)
	}

	return sl
}

// OrderMap iterates over m in ascending key order.
func OrderMap[K cmp.Ordered, V any](m map[K]V) iter.Seq2[K, V] {
	keys := MapKeys(m)
	slices.Sort(keys)

	return func(yield func(K, V) bool) {
		for _, k := range keys {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}
