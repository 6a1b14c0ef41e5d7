package diff

import (
	"sort"

	"github.com/google/go-cmp/cmp"

	"github.com/sap-gg/gqlmerge/internal/merge"
)

// Type represents the kind of Change detected for a resolver entry.
type Type int

const (
	Unchanged Type = iota
	Created
	Modified
	Removed
)

func (t Type) String() string {
	switch t {
	case Created:
		return "created"
	case Modified:
		return "modified"
	case Removed:
		return "removed"
	default:
		return "unchanged"
	}
}

// Change represents the state change for a single "Type.field" path, or for
// a whole "Type" when one side does not hold a field map for it.
type Change struct {
	Type Type
	Path string
	Old  any
	New  any
}

// Report contains the results of a diff operation.
type Report struct {
	Changes    map[string]*Change
	hasChanges bool
}

// HasChanges returns true if there are any changes (created, modified, removed entries).
func (r *Report) HasChanges() bool {
	return r.hasChanges
}

// Count returns the number of changes of type t.
func (r *Report) Count(t Type) int {
	n := 0
	for _, c := range r.Changes {
		if c.Type == t {
			n++
		}
	}
	return n
}

// SortedPaths returns a sorted list of the changed paths in the report.
func (r *Report) SortedPaths() []string {
	paths := make([]string, 0, len(r.Changes))
	for path := range r.Changes {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Compare reports how desired differs from current.
func Compare(current, desired map[string]any) *Report {
	report := &Report{
		Changes: make(map[string]*Change),
	}

	for _, typeName := range getUnionKeys(current, desired) {
		oldValue, inOld := current[typeName]
		newValue, inNew := desired[typeName]

		oldFields, oldIsMap := merge.AsMap(oldValue)
		newFields, newIsMap := merge.AsMap(newValue)
		if inOld && inNew && oldIsMap && newIsMap {
			for _, field := range getUnionKeys(oldFields, newFields) {
				o, inO := oldFields[field]
				n, inN := newFields[field]
				report.compare(typeName+"."+field, o, inO, n, inN)
			}
			continue
		}
		report.compare(typeName, oldValue, inOld, newValue, inNew)
	}

	return report
}

func (r *Report) compare(path string, oldValue any, inOld bool, newValue any, inNew bool) {
	switch {
	case inOld && inNew:
		if cmp.Equal(oldValue, newValue) {
			r.add(Unchanged, path, oldValue, newValue)
		} else {
			r.add(Modified, path, oldValue, newValue)
		}
	case inNew:
		r.add(Created, path, nil, newValue)
	case inOld:
		r.add(Removed, path, oldValue, nil)
	}
}

func (r *Report) add(t Type, path string, oldValue, newValue any) {
	if t == Unchanged {
		return
	}
	r.Changes[path] = &Change{
		Type: t,
		Path: path,
		Old:  oldValue,
		New:  newValue,
	}
	r.hasChanges = true
}

// getUnionKeys returns a sorted slice of all unique keys present in either of the two maps.
func getUnionKeys[V1, V2 any, M1 ~map[string]V1, M2 ~map[string]V2](m1 M1, m2 M2) []string {
	keySet := make(map[string]struct{})
	for k := range m1 {
		keySet[k] = struct{}{}
	}
	for k := range m2 {
		keySet[k] = struct{}{}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
