package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactingWriter(t *testing.T) {
	t.Run("should mask every sensitive value", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewRedactingWriter(&buf, []string{"hunter2", "s3cr3t", ""})

		msg := []byte(`{"message":"token hunter2 and s3cr3t and hunter2"}`)
		n, err := w.Write(msg)
		require.NoError(t, err)
		assert.Equal(t, len(msg), n)
		assert.Equal(t, `{"message":"token ******** and ******** and ********"}`, buf.String())
	})

	t.Run("should pass through clean messages", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewRedactingWriter(&buf, []string{"hunter2"})
		_, err := w.Write([]byte("nothing to hide"))
		require.NoError(t, err)
		assert.Equal(t, "nothing to hide", buf.String())
	})
}

func TestNewRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gqlmerge.log")
	w := NewRotatingFile(path, 1, 2)
	t.Cleanup(func() { _ = w.Close() })

	_, err := w.Write([]byte("line\n"))
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(content))
}
