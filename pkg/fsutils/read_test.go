package fsutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/spf13/afero"
)

func TestReadFileData(t *testing.T) {
	fsys := afero.NewMemMapFs()
	content := []byte("0123456789")
	filename := filepath.Join("/data", "test.txt")
	err := afero.WriteFile(fsys, filename, content, 0644)
	assert.NoError(t, err)

	t.Run("max=0", func(t *testing.T) {
		data, err := ReadFileData(fsys, filename, 0)
		assert.NoError(t, err)
		assert.Equal(t, content, data)
	})

	t.Run("max>0_smaller_than_file", func(t *testing.T) {
		data, err := ReadFileData(fsys, filename, 5)
		assert.NoError(t, err)
		assert.Equal(t, content[:5], data)
	})

	t.Run("max>0_larger_than_file", func(t *testing.T) {
		data, err := ReadFileData(fsys, filename, 20)
		assert.NoError(t, err)
		assert.Equal(t, content, data)
	})

	t.Run("max<0_absMax_smaller_than_file", func(t *testing.T) {
		data, err := ReadFileData(fsys, filename, -3)
		assert.NoError(t, err)
		assert.Equal(t, content[7:], data)
	})

	t.Run("max<0_absMax_larger_than_file", func(t *testing.T) {
		data, err := ReadFileData(fsys, filename, -20)
		assert.NoError(t, err)
		assert.Equal(t, content, data)
	})

	t.Run("not_exists", func(t *testing.T) {
		_, err := ReadFileData(fsys, "/data/none.txt", 0)
		assert.Error(t, err)
		assert.True(t, os.IsNotExist(err))

		_, err = ReadFileData(fsys, "/data/none.txt", -10)
		assert.Error(t, err)
	})
}
