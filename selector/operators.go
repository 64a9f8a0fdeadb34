package selector

import (
	"cmp"
	"iter"

	"github.com/pkg/errors"
)

var ErrUnknownOperator = errors.New("unknown operator")

// Operator names a comparison, e.g. "<=".
type Operator string

const (
	GreaterOrEqual Operator = ">="
	Greater        Operator = ">"
	Less           Operator = "<"
	Equal          Operator = "=="
	NotEqual       Operator = "!="
	LessOrEqual    Operator = "<="
)

// Operators lists the built-in operators, in the order they are documented.
var Operators = []Operator{GreaterOrEqual, Greater, Less, Equal, NotEqual, LessOrEqual}

func (o Operator) String() string {
	return string(o)
}

func GreaterOrEqualTo[V cmp.Ordered](value, threshold V) bool { return value >= threshold }
func GreaterThan[V cmp.Ordered](value, threshold V) bool      { return value > threshold }
func LessThan[V cmp.Ordered](value, threshold V) bool         { return value < threshold }
func EqualTo[V comparable](value, threshold V) bool           { return value == threshold }
func NotEqualTo[V comparable](value, threshold V) bool        { return value != threshold }
func LessOrEqualTo[V cmp.Ordered](value, threshold V) bool    { return value <= threshold }

// Table returns the built-in operators for V.
func Table[V cmp.Ordered]() map[Operator]Predicate[V] {
	return map[Operator]Predicate[V]{
		GreaterOrEqual: GreaterOrEqualTo[V],
		Greater:        GreaterThan[V],
		Less:           LessThan[V],
		Equal:          EqualTo[V],
		NotEqual:       NotEqualTo[V],
		LessOrEqual:    LessOrEqualTo[V],
	}
}

// Compare resolves a built-in operator name.
func Compare[V cmp.Ordered](op Operator) (Predicate[V], error) {
	p, ok := Table[V]()[op]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOperator, "%q", op)
	}
	return p, nil
}

// NamedConstraint is a Constraint whose predicate is referred to by name.
type NamedConstraint[V any] struct {
	Op        Operator
	Threshold V
}

// SelectNamed behaves like Select, resolving each constraint's operator through
// table. The lookup happens up front: an unknown operator fails with
// ErrUnknownOperator before anything is evaluated.
func SelectNamed[K comparable, V any](
	data map[K]V,
	named iter.Seq2[K, NamedConstraint[V]],
	table map[Operator]Predicate[V],
) (iter.Seq[K], error) {
	for k, nc := range named {
		if _, ok := table[nc.Op]; !ok {
			return nil, errors.Wrapf(ErrUnknownOperator, "%q for key %v", nc.Op, k)
		}
	}

	constraints := func(yield func(K, Constraint[V]) bool) {
		for k, nc := range named {
			if !yield(k, NewConstraint(table[nc.Op], nc.Threshold)) {
				return
			}
		}
	}
	return Select(data, constraints)
}

// SelectOperators is SelectNamed over the built-in operator table.
func SelectOperators[K comparable, V cmp.Ordered](data map[K]V, named iter.Seq2[K, NamedConstraint[V]]) (iter.Seq[K], error) {
	return SelectNamed(data, named, Table[V]())
}
