package document

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteParagraphs(t *testing.T) {
	t.Run("Round Trip Preserves Blank Lines", func(t *testing.T) {
		paragraphs := []string{"First paragraph.", "", "Third paragraph.", "", ""}
		path := filepath.Join(t.TempDir(), "doc.txt")

		require.NoError(t, WriteParagraphs(paragraphs, path))

		got, err := ReadParagraphs(path)
		require.NoError(t, err)
		assert.Equal(t, paragraphs, got)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := ReadParagraphs(filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})

	t.Run("Empty File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, WriteParagraphs(nil, path))

		got, err := ReadParagraphs(path)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Write To Invalid Path", func(t *testing.T) {
		err := WriteParagraphs([]string{"x"}, filepath.Join(t.TempDir(), "missing", "doc.txt"))
		assert.Error(t, err)
	})
}
