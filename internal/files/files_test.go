package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/socialxml/internal/render"
)

func TestReadWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.xml")

	require.NoError(t, Write(path, "<users></users>"))

	content, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "<users></users>", content)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.xml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.xml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "network.xml")

	require.NoError(t, Write(path, "<users></users>"))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteFormatted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.xml")

	require.NoError(t, WriteFormatted(path, "<user><id>1</id></user>", render.Formatter{}))

	content, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "<user>\n    <id>1</id>\n</user>\n", content)
}
