package filelist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSStat(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(file, []byte("0123456789"), 0o644))

	isDir, size, err := OSStat(file)
	require.NoError(t, err)
	assert.False(t, isDir)
	assert.Equal(t, int64(10), size)

	isDir, size, err = OSStat(dir)
	require.NoError(t, err)
	assert.True(t, isDir)
	assert.Equal(t, int64(0), size, "directories report zero, never the entry size")

	_, _, err = OSStat(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestClassifyWithPreservesOrder(t *testing.T) {
	stat := func(path string) (bool, int64, error) {
		switch path {
		case "/copied/dir":
			return true, 0, nil
		case "/copied/file":
			return false, 42, nil
		default:
			return false, 0, errors.New("no such file")
		}
	}

	records := ClassifyWith([]string{"/copied/file", "/copied/dir", "/copied/gone"}, stat)
	require.Len(t, records, 3)

	assert.Equal(t, Record{Path: "/copied/file", Name: "file", Size: 42}, records[0])
	assert.Equal(t, Record{Path: "/copied/dir", Name: "dir", IsDir: true}, records[1])
	assert.Equal(t, Record{Path: "/copied/gone", Name: "gone"}, records[2])
}

func TestClassifyWithIgnoresDirSizes(t *testing.T) {
	// a stat source that reports a nonzero size for a directory
	stat := func(string) (bool, int64, error) { return true, 4096, nil }

	records := ClassifyWith([]string{"/some/dir"}, stat)
	require.Len(t, records, 1)
	assert.True(t, records[0].IsDir)
	assert.Equal(t, int64(0), records[0].Size)
}

func TestClassifyEmpty(t *testing.T) {
	assert.Empty(t, Classify(nil))
	assert.Empty(t, Classify([]string{}))
}
