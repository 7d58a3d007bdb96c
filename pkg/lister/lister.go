// Package lister reads directories into the ordered entry lists shown by panes.
package lister

import (
	"context"
	"sort"

	"github.com/filetug/kupo/pkg/files"
	"github.com/filetug/kupo/pkg/klog"
	"github.com/sirupsen/logrus"
)

// Lister is stateless apart from its collaborators.
type Lister struct {
	store files.Store
	log   logrus.FieldLogger
}

type Option func(l *Lister)

func WithLogger(log logrus.FieldLogger) Option {
	return func(l *Lister) {
		l.log = log
	}
}

func New(store files.Store, options ...Option) *Lister {
	l := &Lister{store: store}
	for _, option := range options {
		option(l)
	}
	l.log = klog.OrDiscard(l.log)
	return l
}

// List returns the sorted children of dirPath.
// A directory that cannot be read lists as empty with readable set to false;
// it is up to the caller to tell the user.
func (l *Lister) List(ctx context.Context, dirPath string) (entries []files.Entry, readable bool) {
	if l.store == nil {
		return nil, false
	}
	entries, err := l.store.ReadDir(ctx, dirPath)
	if err != nil {
		l.log.WithFields(logrus.Fields{"path": dirPath, "error": err}).Debug("directory is not readable")
		return []files.Entry{}, false
	}
	SortEntries(entries)
	return entries, true
}

// SortEntries orders entries in place: directories before files,
// dotfiles before the rest within each group, then by name (case-sensitive).
func SortEntries(entries []files.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return Less(entries[i], entries[j])
	})
}

func Less(a, b files.Entry) bool {
	if a.IsDir() != b.IsDir() {
		return a.IsDir()
	}
	if a.IsHidden() != b.IsHidden() {
		return a.IsHidden()
	}
	return a.Name < b.Name
}
