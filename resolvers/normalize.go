package resolvers

import (
	"github.com/rs/zerolog/log"
)

// Normalize converts loosely typed values into a Group. Values that are not
// resolver maps, factories or lists of those are dropped.
func Normalize(values ...any) Group {
	group := make(Group, 0, len(values))
	for _, v := range values {
		if def, ok := NormalizeOne(v); ok {
			group = append(group, def)
		}
	}
	return group
}

// NormalizeOne converts a single value into a Definition.
//
// Accepted shapes are Definition values, map[string]any,
// map[string]map[string]any, func(...any) Map, func(...any) map[string]any,
// []any and []Definition. Slices are normalised recursively into a Group.
func NormalizeOne(v any) (Definition, bool) {
	switch d := v.(type) {
	case nil:
		return nil, false
	case Definition:
		return d, true
	case map[string]any:
		return Map(d), true
	case map[string]map[string]any:
		m := make(Map, len(d))
		for typeName, fields := range d {
			m[typeName] = fields
		}
		return m, true
	case func(...any) Map:
		if d == nil {
			return nil, false
		}
		return Factory(d), true
	case func(...any) map[string]any:
		if d == nil {
			return nil, false
		}
		return Factory(func(args ...any) Map {
			return d(args...)
		}), true
	case []Definition:
		return Group(d), true
	case []any:
		return Normalize(d...), true
	}

	log.Debug().Type("value", v).Msg("ignoring value that is not a resolver definition")
	return nil, false
}
