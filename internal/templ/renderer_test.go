package templ

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer(t *testing.T) {
	r := NewTemplateRenderer()

	t.Run("should render with data", func(t *testing.T) {
		var sb strings.Builder
		err := r.Render(&sb, "Query:\n  tenant: {{ .Values.tenant }}", map[string]any{
			"Values": map[string]any{"tenant": "acme"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Query:\n  tenant: acme", sb.String())
	})

	t.Run("should fail on missing keys", func(t *testing.T) {
		var sb strings.Builder
		err := r.Render(&sb, "{{ .Values.missing }}", map[string]any{
			"Values": map[string]any{},
		})
		require.Error(t, err)
	})

	t.Run("should report syntax errors on check", func(t *testing.T) {
		require.Error(t, r.Check("{{ .Values"))
		require.NoError(t, r.Check("{{ .Values }}"))
	})

	t.Run("should cache parsed templates", func(t *testing.T) {
		content := "{{ . }}"
		first, err := r.getTemplate(content)
		require.NoError(t, err)
		second, err := r.getTemplate(content)
		require.NoError(t, err)
		assert.Same(t, first, second)
	})
}
