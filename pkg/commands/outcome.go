package commands

type Status int

const (
	// StatusNoop is the outcome of an empty command line.
	StatusNoop Status = iota
	StatusOK
	StatusQuit
	StatusUnknownCommand
	StatusParseError
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusNoop:
		return "noop"
	case StatusOK:
		return "ok"
	case StatusQuit:
		return "quit"
	case StatusUnknownCommand:
		return "unknown command"
	case StatusParseError:
		return "parse error"
	case StatusFailed:
		return "failed"
	default:
		return "unknown status"
	}
}

// Outcome reports what a command line did. Only StatusOK and StatusQuit
// outcomes may have changed anything.
type Outcome struct {
	Status  Status
	Command string
	Message string
	// Arg is the offending argument of a parse error.
	Arg string
	Err error
}

func (o Outcome) Success() bool {
	switch o.Status {
	case StatusNoop, StatusOK, StatusQuit:
		return true
	default:
		return false
	}
}
