// Package selector picks the keys of a mapping whose values satisfy per-key
// comparison constraints.
package selector

import (
	"cmp"
	"iter"

	"github.com/NethermindEth/idioms/utils"
	"github.com/pkg/errors"
)

var ErrKeyNotFound = errors.New("key not found")

// Predicate compares a value against a threshold.
type Predicate[V any] func(value, threshold V) bool

// Constraint pairs a predicate with the threshold it is checked against.
type Constraint[V any] struct {
	Predicate Predicate[V]
	Threshold V
}

// entry keeps a key and its constraint together, so each key is judged by its
// own constraint whatever order constraints yields them in.
type entry[K comparable, V any] struct {
	key        K
	constraint Constraint[V]
}

func NewConstraint[V any](predicate Predicate[V], threshold V) Constraint[V] {
	return Constraint[V]{Predicate: predicate, Threshold: threshold}
}

// Select returns the keys of constraints, in the order constraints yields them,
// whose value in data satisfies the key's constraint.
//
// Every constraint key must be present in data, otherwise an error wrapping
// ErrKeyNotFound is returned and nothing is evaluated. Predicates run lazily as
// the result is consumed. constraints is ranged over once up front and once per
// pass over the result, so it must be reusable; its order may differ between
// passes, as with maps.All.
func Select[K comparable, V any](data map[K]V, constraints iter.Seq2[K, Constraint[V]]) (iter.Seq[K], error) {
	for k := range constraints {
		if _, ok := data[k]; !ok {
			return nil, errors.Wrapf(ErrKeyNotFound, "constraint key %v", k)
		}
	}

	var entries iter.Seq[entry[K, V]] = func(yield func(entry[K, V]) bool) {
		for k, c := range constraints {
			if !yield(entry[K, V]{key: k, constraint: c}) {
				return
			}
		}
	}
	selected := utils.Filter(entries, func(e entry[K, V]) bool {
		return e.constraint.Predicate(data[e.key], e.constraint.Threshold)
	})

	return utils.Map(selected, func(e entry[K, V]) K { return e.key }), nil
}

// SelectOrdered selects over constraints in their insertion order.
func SelectOrdered[K comparable, V any](data map[K]V, constraints *utils.OrderedMap[K, Constraint[V]]) (iter.Seq[K], error) {
	return Select(data, constraints.All())
}

// SelectMap selects over a plain constraint map. Keys are visited in ascending
// order so the result is deterministic.
func SelectMap[K cmp.Ordered, V any](data map[K]V, constraints map[K]Constraint[V]) (iter.Seq[K], error) {
	return Select(data, utils.OrderMap(constraints))
}
