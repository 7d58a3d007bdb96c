package fsutils

import (
	"os"
	"path/filepath"
	"strings"
)

var osUserHomeDir = os.UserHomeDir

var filepathAbs = filepath.Abs

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := osUserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}

// ResolvePath expands ~ and joins a relative p onto base.
// The result is always cleaned.
func ResolvePath(base, p string) string {
	p = ExpandHome(p)
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	}
	return filepath.Clean(p)
}

// AbsPath makes p absolute against the working directory. When the working
// directory cannot be determined p is only cleaned.
func AbsPath(p string) string {
	abs, err := filepathAbs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

// ParentDir returns the parent of dir, or dir itself for a root.
func ParentDir(dir string) string {
	return filepath.Dir(filepath.Clean(dir))
}

// IsRoot reports whether dir has no parent.
func IsRoot(dir string) bool {
	dir = filepath.Clean(dir)
	return ParentDir(dir) == dir
}
