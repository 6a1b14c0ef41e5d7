package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type values = map[string]any

func TestCompare(t *testing.T) {
	t.Run("identical maps should have no changes", func(t *testing.T) {
		m := values{"Query": values{"user": "resolveUser"}, "Date": "scalar"}
		report := Compare(m, values{"Query": values{"user": "resolveUser"}, "Date": "scalar"})
		assert.False(t, report.HasChanges())
		assert.Empty(t, report.SortedPaths())
	})

	t.Run("field changes should be reported per path", func(t *testing.T) {
		current := values{
			"Query": values{"user": "v1", "legacy": "old", "users": "list"},
		}
		desired := values{
			"Query": values{"user": "v2", "users": "list", "me": "resolveMe"},
		}
		report := Compare(current, desired)
		require.True(t, report.HasChanges())
		assert.Equal(t, []string{"Query.legacy", "Query.me", "Query.user"}, report.SortedPaths())
		assert.Equal(t, Removed, report.Changes["Query.legacy"].Type)
		assert.Equal(t, Created, report.Changes["Query.me"].Type)

		modified := report.Changes["Query.user"]
		assert.Equal(t, Modified, modified.Type)
		assert.Equal(t, "v1", modified.Old)
		assert.Equal(t, "v2", modified.New)
	})

	t.Run("whole types should be reported when one side lacks them", func(t *testing.T) {
		report := Compare(
			values{"Debug": values{"dump": "x"}},
			values{"Mutation": values{"createUser": "createUser"}},
		)
		assert.Equal(t, []string{"Debug", "Mutation"}, report.SortedPaths())
		assert.Equal(t, Removed, report.Changes["Debug"].Type)
		assert.Equal(t, Created, report.Changes["Mutation"].Type)
		assert.Equal(t, 1, report.Count(Created))
		assert.Equal(t, 1, report.Count(Removed))
		assert.Equal(t, 0, report.Count(Modified))
	})

	t.Run("type changing between scalar and map should be modified", func(t *testing.T) {
		report := Compare(values{"Date": "scalar"}, values{"Date": values{"serialize": "fn"}})
		assert.Equal(t, Modified, report.Changes["Date"].Type)
	})
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "created", Created.String())
	assert.Equal(t, "modified", Modified.String())
	assert.Equal(t, "removed", Removed.String())
	assert.Equal(t, "unchanged", Unchanged.String())
}
