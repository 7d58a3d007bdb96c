package preview

import "github.com/filetug/kupo/pkg/files"

type Mode int

const (
	ModeEmpty Mode = iota
	ModeText
	ModeDirectory
)

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeDirectory:
		return "directory"
	default:
		return "empty"
	}
}

// State is one committed preview. A new one replaces the previous on
// every selection change that finishes loading.
type State struct {
	Target     string
	Mode       Mode
	Generation uint64

	// Text mode.
	Text      string
	Language  string
	Truncated bool

	// Directory mode.
	Entries    []files.Entry
	Unreadable bool

	// Err explains an Empty preview of a target that failed to load.
	Err error
}
