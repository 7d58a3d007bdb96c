package navigation

import (
	"github.com/filetug/kupo/pkg/fsutils"
)

// MoveCursor moves the selection by delta, clamping at both ends.
func (s *State) MoveCursor(delta int) {
	if s.selected == noSelection {
		return
	}
	s.setSelected(clamp(s.selected+delta, 0, len(s.entries)-1))
}

func (s *State) MoveToFirst() {
	if s.selected == noSelection {
		return
	}
	s.setSelected(0)
}

func (s *State) MoveToLast() {
	if s.selected == noSelection {
		return
	}
	s.setSelected(len(s.entries) - 1)
}

// Select moves the cursor onto the child called name, if it is listed.
func (s *State) Select(name string) bool {
	i := s.indexOf(name)
	if i < 0 {
		return false
	}
	s.setSelected(i)
	return true
}

func (s *State) setSelected(i int) {
	if i == s.selected {
		return
	}
	s.selected = i
	s.emitSelection()
}

// SetFilter re-lists the directory and keeps the names matching pattern.
// The cursor goes back to the first remaining entry.
func (s *State) SetFilter(pattern string) {
	s.pattern = pattern
	s.load("")
	s.emitSelection()
}

// ChangeDirectory points the pane at newPath and clears the filter. A relative
// newPath is taken against the working directory.
// When selectChild names an entry of the new listing it gets the cursor,
// otherwise the first entry does. An unreadable newPath still becomes the
// current path, with an empty listing and Unreadable set.
func (s *State) ChangeDirectory(newPath, selectChild string) {
	oldPath := s.path
	s.path = fsutils.AbsPath(newPath)
	s.pattern = ""
	s.load(selectChild)
	s.log.WithField("path", s.path).Debug("directory changed")
	s.emitSelection()
	if oldPath != s.path {
		s.emitDirectory(oldPath)
	}
}

// Reload re-lists the current directory, keeping the filter, and selects
// selectChild when present.
func (s *State) Reload(selectChild string) {
	s.load(selectChild)
	s.emitSelection()
}

// EnterSelected descends into the selected directory; files are ignored.
func (s *State) EnterSelected() {
	entry, ok := s.Selected()
	if !ok || !entry.IsDir() {
		return
	}
	s.ChangeDirectory(entry.FullName(), "")
}

// GoToParent moves up one level and re-selects the directory we came from.
// At the filesystem root it does nothing.
func (s *State) GoToParent() {
	if fsutils.IsRoot(s.path) {
		return
	}
	s.ChangeDirectory(fsutils.ParentDir(s.path), childName(s.path))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
