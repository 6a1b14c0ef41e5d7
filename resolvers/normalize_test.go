package resolvers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	plainFactory := func(args ...any) map[string]any {
		return map[string]any{"Query": fields{"args": len(args)}}
	}
	typedFactory := func(...any) Map {
		return Map{"Query": fields{"typed": true}}
	}

	group := Normalize(
		map[string]any{"A": fields{"x": 1}},
		map[string]map[string]any{"B": {"y": 2}},
		plainFactory,
		typedFactory,
		[]any{map[string]any{"C": fields{"z": 3}}, "dropped"},
		[]Definition{Map{"D": fields{}}},
		Map{"E": fields{}},
		nil,
		42,
		"not a definition",
	)

	require.Len(t, group, 7)
	assert.Equal(t, Map{"A": fields{"x": 1}}, group[0])
	assert.Equal(t, Map{"B": fields{"y": 2}}, group[1])
	require.IsType(t, Factory(nil), group[2])
	assert.Equal(t, Map{"Query": fields{"args": 2}}, group[2].(Factory).Resolve(1, 2))
	require.IsType(t, Factory(nil), group[3])
	assert.Equal(t, Group{Map{"C": fields{"z": 3}}}, group[4])
	assert.Equal(t, Group{Map{"D": fields{}}}, group[5])
	assert.Equal(t, Map{"E": fields{}}, group[6])
}

func TestNormalizeThenMerge(t *testing.T) {
	defs := Normalize(
		map[string]any{"Query": fields{"a": 1}},
		[]any{
			map[string]any{"Query": fields{"b": 2}},
			[]any{map[string]any{"Query": fields{"a": 3}}},
		},
	)
	result := Merge(defs, WithExclusions("Query.b"))
	assert.Equal(t, Map{"Query": fields{"a": 3}}, result)
}

func TestNormalizeOne(t *testing.T) {
	var nilFunc func(...any) Map
	_, ok := NormalizeOne(nilFunc)
	assert.False(t, ok)

	_, ok = NormalizeOne(nil)
	assert.False(t, ok)

	def, ok := NormalizeOne(Group{})
	assert.True(t, ok)
	assert.Equal(t, Group{}, def)
}
