package resolvers

import (
	"strings"

	"github.com/sap-gg/gqlmerge/internal/merge"
)

const wildcard = "*"

// Exclusion names a field, or a whole type, to drop from a merged Map.
type Exclusion struct {
	Type  string
	Field string
}

// ParseExclusion splits s on its first dot. "Type" and "Type.*" target the
// whole type, "Type.field" a single field.
func ParseExclusion(s string) Exclusion {
	typeName, field, found := strings.Cut(s, ".")
	if !found {
		field = wildcard
	}
	return Exclusion{Type: typeName, Field: field}
}

// WholeType reports whether e removes the entire type entry.
func (e Exclusion) WholeType() bool {
	return e.Field == wildcard
}

func (e Exclusion) String() string {
	return e.Type + "." + e.Field
}

// apply deletes e from m. Absent types or fields are ignored.
func (e Exclusion) apply(m Map) {
	if e.WholeType() {
		delete(m, e.Type)
		return
	}
	if fields, ok := merge.AsMap(m[e.Type]); ok {
		delete(fields, e.Field)
	}
}
