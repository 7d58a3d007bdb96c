package fsutils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestExpandHome(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", ExpandHome(""))
	})
	t.Run("no_tilde", func(t *testing.T) {
		assert.Equal(t, "/some/path", ExpandHome("/some/path"))
	})
	t.Run("only_tilde", func(t *testing.T) {
		home, _ := os.UserHomeDir()
		assert.Equal(t, home, ExpandHome("~"))
	})
	t.Run("tilde_with_path", func(t *testing.T) {
		home, _ := os.UserHomeDir()
		assert.Equal(t, filepath.Join(home, "abc"), ExpandHome("~/abc"))
	})
	t.Run("tilde_user_not_expanded", func(t *testing.T) {
		assert.Equal(t, "~bob/x", ExpandHome("~bob/x"))
	})
	t.Run("home_error", func(t *testing.T) {
		orig := osUserHomeDir
		defer func() { osUserHomeDir = orig }()
		osUserHomeDir = func() (string, error) {
			return "", errors.New("no home")
		}
		assert.Equal(t, "~/abc", ExpandHome("~/abc"))
	})
}

func TestAbsPath(t *testing.T) {
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.Equal(t, wd, AbsPath("."))
	assert.Equal(t, filepath.Join(wd, "b"), AbsPath("a/../b"))
	assert.Equal(t, "/a/b", AbsPath("/a/b/"))

	orig := filepathAbs
	defer func() { filepathAbs = orig }()
	filepathAbs = func(string) (string, error) {
		return "", errors.New("no working directory")
	}
	assert.Equal(t, "b", AbsPath("a/../b"))
}

func TestResolvePath(t *testing.T) {
	orig := osUserHomeDir
	defer func() { osUserHomeDir = orig }()
	osUserHomeDir = func() (string, error) {
		return "/home/kupo", nil
	}

	for _, tt := range []struct {
		base, p, expected string
	}{
		{base: "/a/b", p: "c", expected: "/a/b/c"},
		{base: "/a/b", p: "../c", expected: "/a/c"},
		{base: "/a/b", p: "/x/y/", expected: "/x/y"},
		{base: "/a/b", p: "~", expected: "/home/kupo"},
		{base: "/a/b", p: "~/docs", expected: "/home/kupo/docs"},
		{base: "/a/b", p: ".", expected: "/a/b"},
	} {
		t.Run(tt.p, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.expected), ResolvePath(filepath.FromSlash(tt.base), tt.p))
		})
	}
}

func TestParentDir(t *testing.T) {
	assert.Equal(t, "/a", ParentDir("/a/b"))
	assert.Equal(t, "/a", ParentDir("/a/b/"))
	assert.Equal(t, "/", ParentDir("/a"))
	assert.Equal(t, "/", ParentDir("/"))
	assert.True(t, IsRoot("/"))
	assert.False(t, IsRoot("/a"))
}
