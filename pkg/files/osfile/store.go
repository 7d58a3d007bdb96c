package osfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/filetug/kupo/pkg/files"
	"github.com/filetug/kupo/pkg/fsutils"
	"github.com/spf13/afero"
)

var _ files.Store = (*Store)(nil)

// Store serves entries from an afero filesystem, the real OS one by default.
type Store struct {
	fs     afero.Fs
	owners *ownerCache
}

func NewStore() *Store {
	return NewStoreWithFs(afero.NewOsFs())
}

func NewStoreWithFs(fs afero.Fs) *Store {
	return &Store{
		fs:     fs,
		owners: newOwnerCache(),
	}
}

func (s *Store) Fs() afero.Fs {
	return s.fs
}

func (s *Store) ReadDir(ctx context.Context, dirPath string) ([]files.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	infos, err := afero.ReadDir(s.fs, dirPath)
	if err != nil {
		return nil, files.Classify(err)
	}
	entries := make([]files.Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, s.newEntry(dirPath, info))
	}
	return entries, nil
}

func (s *Store) Stat(ctx context.Context, path string) (files.Entry, error) {
	if err := ctx.Err(); err != nil {
		return files.Entry{}, err
	}
	info, err := s.fs.Stat(path)
	if err != nil {
		return files.Entry{}, files.Classify(err)
	}
	return s.newEntry(filepath.Dir(path), info), nil
}

func (s *Store) ReadFile(ctx context.Context, path string, max int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info, err := s.fs.Stat(path)
	if err != nil {
		return nil, files.Classify(err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", path)
	}
	data, err := fsutils.ReadFileData(s.fs, path, max)
	if err != nil {
		return nil, files.Classify(err)
	}
	return data, nil
}

func (s *Store) CreateDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.checkParent(path); err != nil {
		return err
	}
	return files.Classify(s.fs.Mkdir(path, 0755))
}

func (s *Store) CreateFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.fs.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return files.Classify(err)
	}
	if err := s.checkParent(path); err != nil {
		return err
	}
	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return files.Classify(err)
	}
	return f.Close()
}

// checkParent makes creation fail on a missing parent even on
// filesystems that would create intermediate directories.
func (s *Store) checkParent(path string) error {
	parent := filepath.Dir(path)
	info, err := s.fs.Stat(parent)
	if err != nil {
		return files.Classify(err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", files.ErrNotDir, parent)
	}
	return nil
}

func (s *Store) newEntry(dir string, info os.FileInfo) files.Entry {
	entry := files.NewEntryFromInfo(dir, info)
	if info.Mode()&os.ModeSymlink != 0 {
		if target, err := s.fs.Stat(filepath.Join(dir, info.Name())); err == nil && target.IsDir() {
			entry.Kind = files.KindDir
		}
	}
	entry.Owner, entry.Group = s.owners.lookup(info)
	return entry
}
