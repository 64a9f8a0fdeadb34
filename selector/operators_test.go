package selector_test

import (
	"strings"
	"testing"

	"github.com/NethermindEth/idioms/selector"
	"github.com/NethermindEth/idioms/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		op       selector.Operator
		value    int
		expected bool
	}{
		{op: selector.GreaterOrEqual, value: 5, expected: true},
		{op: selector.GreaterOrEqual, value: 4, expected: false},
		{op: selector.Greater, value: 5, expected: false},
		{op: selector.Greater, value: 6, expected: true},
		{op: selector.Less, value: 4, expected: true},
		{op: selector.Less, value: 5, expected: false},
		{op: selector.Equal, value: 5, expected: true},
		{op: selector.Equal, value: 6, expected: false},
		{op: selector.NotEqual, value: 6, expected: true},
		{op: selector.NotEqual, value: 5, expected: false},
		{op: selector.LessOrEqual, value: 5, expected: true},
		{op: selector.LessOrEqual, value: 6, expected: false},
	}

	for _, test := range tests {
		t.Run(test.op.String(), func(t *testing.T) {
			p, err := selector.Compare[int](test.op)
			require.NoError(t, err)
			assert.Equal(t, test.expected, p(test.value, 5))
		})
	}

	t.Run("unknown operator", func(t *testing.T) {
		_, err := selector.Compare[int]("<>")
		require.ErrorIs(t, err, selector.ErrUnknownOperator)
	})

	t.Run("table covers every operator", func(t *testing.T) {
		assert.Len(t, selector.Table[string](), len(selector.Operators))
	})
}

func named() *utils.OrderedMap[string, selector.NamedConstraint[int]] {
	constraints := utils.NewOrderedMap[string, selector.NamedConstraint[int]]()
	constraints.Put("cake", selector.NamedConstraint[int]{Op: selector.Less, Threshold: 60})
	constraints.Put("bread", selector.NamedConstraint[int]{Op: selector.LessOrEqual, Threshold: 20})
	constraints.Put("pie", selector.NamedConstraint[int]{Op: selector.Less, Threshold: 80})
	return constraints
}

func TestSelectOperators(t *testing.T) {
	keys, err := selector.SelectOperators(pastries(), named().All())
	require.NoError(t, err)
	assert.Equal(t, []string{"cake", "bread"}, utils.Collect(keys))

	t.Run("unknown operator", func(t *testing.T) {
		constraints := named()
		constraints.Put("pie", selector.NamedConstraint[int]{Op: "~", Threshold: 80})

		_, err := selector.SelectOperators(pastries(), constraints.All())
		require.ErrorIs(t, err, selector.ErrUnknownOperator)
		assert.ErrorContains(t, err, "pie")
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := selector.SelectOperators(map[string]int{"cake": 50}, named().All())
		require.ErrorIs(t, err, selector.ErrKeyNotFound)
	})
}

func TestSelectNamedCustomTable(t *testing.T) {
	data := map[string]string{"greeting": "hello", "farewell": "bye"}
	table := map[selector.Operator]selector.Predicate[string]{
		"prefix": strings.HasPrefix,
		"suffix": strings.HasSuffix,
	}

	constraints := utils.NewOrderedMap[string, selector.NamedConstraint[string]]()
	constraints.Put("farewell", selector.NamedConstraint[string]{Op: "suffix", Threshold: "ye"})
	constraints.Put("greeting", selector.NamedConstraint[string]{Op: "prefix", Threshold: "x"})

	keys, err := selector.SelectNamed(data, constraints.All(), table)
	require.NoError(t, err)
	assert.Equal(t, []string{"farewell"}, utils.Collect(keys))

	t.Run("built-in names are not implied", func(t *testing.T) {
		constraints.Put("greeting", selector.NamedConstraint[string]{Op: selector.Equal, Threshold: "hello"})

		_, err := selector.SelectNamed(data, constraints.All(), table)
		require.ErrorIs(t, err, selector.ErrUnknownOperator)
	})
}
