// Package navigation holds the state of one pane: the directory it shows,
// the ordered (and possibly filtered) entries, and the selection cursor.
package navigation

import (
	"context"
	"path/filepath"

	"github.com/filetug/kupo/pkg/files"
	"github.com/filetug/kupo/pkg/filter"
	"github.com/filetug/kupo/pkg/fsutils"
	"github.com/filetug/kupo/pkg/klog"
	"github.com/sirupsen/logrus"
)

// Lister produces the ordered entries of a directory.
// Unreadable directories come back empty with readable set to false.
type Lister interface {
	List(ctx context.Context, dirPath string) (entries []files.Entry, readable bool)
}

const noSelection = -1

// State is created once per pane and mutated in place. It is not safe for
// concurrent use: every call is expected to come from the UI event loop.
type State struct {
	lister Lister
	filter filter.Engine
	log    logrus.FieldLogger

	path       string
	entries    []files.Entry
	selected   int
	pattern    string
	unreadable bool

	selectionListeners []SelectionListener
	directoryListeners []DirectoryListener
}

type Option func(s *State)

func WithFilter(engine filter.Engine) Option {
	return func(s *State) {
		s.filter = engine
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *State) {
		s.log = log
	}
}

// New creates a pane state pointed at dirPath, made absolute.
// Listeners are not registered yet, so the initial listing emits nothing;
// call Refresh once subscribers are in place.
func New(lister Lister, dirPath string, options ...Option) *State {
	s := &State{
		lister:   lister,
		filter:   filter.New(filter.SyntaxRegex),
		selected: noSelection,
	}
	for _, option := range options {
		option(s)
	}
	s.log = klog.OrDiscard(s.log)
	s.path = fsutils.AbsPath(dirPath)
	s.load("")
	return s
}

func (s *State) OnSelectionChanged(listener SelectionListener) {
	s.selectionListeners = append(s.selectionListeners, listener)
}

func (s *State) OnDirectoryChanged(listener DirectoryListener) {
	s.directoryListeners = append(s.directoryListeners, listener)
}

func (s *State) Path() string {
	return s.path
}

// Entries returns a copy of the visible entries.
func (s *State) Entries() []files.Entry {
	result := make([]files.Entry, len(s.entries))
	copy(result, s.entries)
	return result
}

func (s *State) Len() int {
	return len(s.entries)
}

// SelectedIndex returns the cursor position; ok is false for an empty listing.
func (s *State) SelectedIndex() (index int, ok bool) {
	if s.selected == noSelection {
		return 0, false
	}
	return s.selected, true
}

func (s *State) Selected() (entry files.Entry, ok bool) {
	if s.selected == noSelection {
		return files.Entry{}, false
	}
	return s.entries[s.selected], true
}

func (s *State) Filter() string {
	return s.pattern
}

// Unreadable reports whether the last listing of Path failed.
func (s *State) Unreadable() bool {
	return s.unreadable
}

func (s *State) FilterEngine() filter.Engine {
	return s.filter
}

// Refresh re-emits the current selection without changing anything.
func (s *State) Refresh() {
	s.emitSelection()
}

func (s *State) load(selectChild string) {
	entries, readable := s.lister.List(context.Background(), s.path)
	s.unreadable = !readable
	s.entries = s.filter.Apply(entries, s.pattern)
	s.selected = noSelection
	if len(s.entries) == 0 {
		return
	}
	s.selected = 0
	if selectChild != "" {
		if i := s.indexOf(selectChild); i >= 0 {
			s.selected = i
		}
	}
}

func (s *State) indexOf(name string) int {
	for i, e := range s.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

func (s *State) emitSelection() {
	event := SelectionChanged{Path: s.path, Index: s.selected}
	if entry, ok := s.Selected(); ok {
		event.Entry = &entry
	}
	for _, listener := range s.selectionListeners {
		listener(event)
	}
}

func (s *State) emitDirectory(oldPath string) {
	event := DirectoryChanged{OldPath: oldPath, NewPath: s.path}
	for _, listener := range s.directoryListeners {
		listener(event)
	}
}

func childName(dirPath string) string {
	if fsutils.IsRoot(dirPath) {
		return ""
	}
	return filepath.Base(filepath.Clean(dirPath))
}
