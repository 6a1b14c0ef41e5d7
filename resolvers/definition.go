// Package resolvers merges GraphQL resolver maps that were authored across
// several modules into the single map an executable schema is built from.
package resolvers

import (
	"sort"

	"github.com/sap-gg/gqlmerge/internal/merge"
)

// Definition is one input to Merge. It is implemented by Map, Factory and
// Group only.
type Definition interface {
	definition()
}

// Result is what Merge produces: a Map, or a Factory when at least one
// input was a Factory.
type Result interface {
	Definition

	// Resolve returns the concrete map, invoking the factory if needed.
	Resolve(args ...any) Map
}

// Map maps a type name to a map of field names to resolvers.
// Field maps are map[string]any, resolver values are opaque.
type Map map[string]any

// Factory produces a Map from runtime arguments.
type Factory func(args ...any) Map

// Group is a nested batch of definitions that is merged before its siblings.
type Group []Definition

var (
	_ Result     = Map(nil)
	_ Result     = Factory(nil)
	_ Definition = Group(nil)
)

func (Map) definition()     {}
func (Factory) definition() {}
func (Group) definition()   {}

// Resolve returns m itself.
func (m Map) Resolve(...any) Map {
	return m
}

// Mapping exposes m to the deep merge as a plain mapping node.
func (m Map) Mapping() map[string]any {
	return m
}

// Types returns the sorted type names of m.
func (m Map) Types() []string {
	types := make([]string, 0, len(m))
	for t := range m {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Fields returns the sorted field names of typeName. It returns nil when the
// type is absent or is not a field map.
func (m Map) Fields(typeName string) []string {
	fields, ok := merge.AsMap(m[typeName])
	if !ok {
		return nil
	}
	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// Resolve invokes f. A nil factory resolves to an empty Map.
func (f Factory) Resolve(args ...any) Map {
	if f == nil {
		return Map{}
	}
	return f(args...)
}
