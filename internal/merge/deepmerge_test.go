package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type values = map[string]any

type wrapped values

func (w wrapped) Mapping() map[string]any { return w }

func TestDeepMergeMaps(t *testing.T) {
	t.Run("No maps should yield an empty map", func(t *testing.T) {
		merged := DeepMergeMaps()
		require.NotNil(t, merged)
		assert.Empty(t, merged)
	})

	t.Run("Disjoint types should be combined", func(t *testing.T) {
		merged := DeepMergeMaps(
			values{"Query": values{"user": "resolveUser"}},
			values{"Mutation": values{"createUser": "createUser"}},
		)
		expected := values{
			"Query":    values{"user": "resolveUser"},
			"Mutation": values{"createUser": "createUser"},
		}
		assert.Equal(t, expected, merged)
	})

	t.Run("Later maps should overwrite earlier fields", func(t *testing.T) {
		merged := DeepMergeMaps(
			values{"Query": values{"user": "v1", "users": "list"}},
			values{"Query": values{"user": "v2"}},
		)
		expected := values{"Query": values{"user": "v2", "users": "list"}}
		assert.Equal(t, expected, merged)
	})

	t.Run("Slices should be replaced, not concatenated", func(t *testing.T) {
		merged := DeepMergeMaps(
			values{"Enum": values{"values": []any{"A", "B"}}},
			values{"Enum": values{"values": []any{"C"}}},
		)
		assert.Equal(t, []any{"C"}, merged["Enum"].(values)["values"])
	})

	t.Run("Scalar should replace a map and the other way round", func(t *testing.T) {
		merged := DeepMergeMaps(
			values{"A": values{"x": 1}, "B": "scalar"},
			values{"A": "scalar", "B": values{"y": 2}},
		)
		expected := values{"A": "scalar", "B": values{"y": 2}}
		assert.Equal(t, expected, merged)
	})

	t.Run("Mapping values should be merged like plain maps", func(t *testing.T) {
		merged := DeepMergeMaps(
			values{"A": wrapped{"x": 1}},
			values{"A": wrapped{"y": 2}},
		)
		assert.Equal(t, values{"A": values{"x": 1, "y": 2}}, merged)
	})

	t.Run("Merging should not modify original maps", func(t *testing.T) {
		original := values{
			"a": values{
				"b": 1,
			},
		}
		overwrite := values{
			"a": values{
				"c": 2,
			},
		}
		_ = DeepMergeMaps(original, overwrite)
		// Check that the original map was not mutated
		require.Equal(t, 1, len(original["a"].(values)))
		assert.Equal(t, 1, original["a"].(values)["b"])
	})

	t.Run("Result should never share nested maps with inputs", func(t *testing.T) {
		only := values{"A": values{"x": 1, "y": 2}}
		merged := DeepMergeMaps(only)
		delete(merged["A"].(values), "y")
		assert.Equal(t, values{"x": 1, "y": 2}, only["A"])
	})
}

func TestAsMap(t *testing.T) {
	m, ok := AsMap(values{"a": 1})
	assert.True(t, ok)
	assert.Equal(t, values{"a": 1}, m)

	m, ok = AsMap(wrapped{"b": 2})
	assert.True(t, ok)
	assert.Equal(t, values{"b": 2}, m)

	_, ok = AsMap("scalar")
	assert.False(t, ok)
	_, ok = AsMap([]any{1})
	assert.False(t, ok)
}
