package files

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Kind int

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// Entry is a snapshot of one directory child taken at listing time.
// It is never patched: a changed filesystem means a new listing.
type Entry struct {
	Name    string
	Dir     string
	Kind    Kind
	Size    int64
	ModTime time.Time
	Mode    os.FileMode
	Owner   string
	Group   string
}

func (e Entry) IsDir() bool {
	return e.Kind == KindDir
}

// IsHidden reports a dotfile.
func (e Entry) IsHidden() bool {
	return strings.HasPrefix(e.Name, ".")
}

func (e Entry) FullName() string {
	if e.Dir == "" {
		return e.Name
	}
	return filepath.Join(e.Dir, e.Name)
}

func (e Entry) String() string {
	return e.FullName()
}

type EntryOption func(*Entry)

func Size(v int64) EntryOption {
	return func(e *Entry) {
		e.Size = v
	}
}

func ModTime(v time.Time) EntryOption {
	return func(e *Entry) {
		e.ModTime = v
	}
}

func Mode(v os.FileMode) EntryOption {
	return func(e *Entry) {
		e.Mode = v
	}
}

func Owner(user, group string) EntryOption {
	return func(e *Entry) {
		e.Owner = user
		e.Group = group
	}
}

// NewEntry builds an entry value. The name must not contain a path separator.
func NewEntry(dir, name string, kind Kind, o ...EntryOption) Entry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("entry name can not have path: " + name)
	}
	e := Entry{
		Name: name,
		Dir:  dir,
		Kind: kind,
	}
	for _, opt := range o {
		opt(&e)
	}
	return e
}

// NewEntryFromInfo converts an os.FileInfo into an Entry listed from dir.
func NewEntryFromInfo(dir string, info os.FileInfo) Entry {
	kind := KindFile
	if info.IsDir() {
		kind = KindDir
	}
	return Entry{
		Name:    info.Name(),
		Dir:     dir,
		Kind:    kind,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Mode:    info.Mode(),
	}
}
