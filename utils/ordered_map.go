package utils

import "iter"

// OrderedMap is a map which remembers the order its keys were first inserted in.
// It is not safe for concurrent use.
type OrderedMap[K comparable, V any] struct {
	itemPos map[K]int // position of the item in keys and values
	keys    []K
	values  []V
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		itemPos: make(map[K]int),
	}
}

func (o *OrderedMap[K, V]) Put(key K, value V) {
	if o.itemPos == nil {
		o.itemPos = make(map[K]int)
	}

	// Update existing entry, keeping its position
	if pos, exists := o.itemPos[key]; exists {
		o.values[pos] = value
		return
	}

	o.itemPos[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.values = append(o.values, value)
}

func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	if pos, ok := o.itemPos[key]; ok {
		return o.values[pos], true
	}
	var zero V
	return zero, false
}

func (o *OrderedMap[K, V]) Len() int {
	return len(o.keys)
}

// Keys returns a copy of the keys in insertion order.
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// All iterates over the entries in insertion order.
func (o *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range o.keys {
			if !yield(k, o.values[i]) {
				return
			}
		}
	}
}
