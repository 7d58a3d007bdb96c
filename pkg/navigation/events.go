package navigation

import "github.com/filetug/kupo/pkg/files"

// SelectionChanged carries the entry under the cursor after a transition,
// or a nil Entry when the listing is empty.
type SelectionChanged struct {
	Path  string
	Index int
	Entry *files.Entry
}

// DirectoryChanged is emitted whenever the pane is re-pointed at a new path.
type DirectoryChanged struct {
	OldPath string
	NewPath string
}

type SelectionListener func(SelectionChanged)

type DirectoryListener func(DirectoryChanged)
