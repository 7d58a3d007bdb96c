package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/filetug/kupo/pkg/files"
	"github.com/filetug/kupo/pkg/fsutils"
	"github.com/filetug/kupo/pkg/klog"
	"github.com/kballard/go-shellquote"
	"github.com/sirupsen/logrus"
)

// Navigator is the part of navigation.State commands act on.
type Navigator interface {
	Path() string
	ChangeDirectory(newPath, selectChild string)
}

type handler func(ctx context.Context, in *Interpreter, nav Navigator, args []string) Outcome

var handlers = map[Kind]handler{
	KindChangeDir: changeDir,
	KindMakeDir:   makeDir,
	KindTouch:     touch,
	KindQuit:      quit,
}

type Interpreter struct {
	store    files.Store
	registry Registry
	log      logrus.FieldLogger
}

type Option func(*Interpreter)

func WithRegistry(registry Registry) Option {
	return func(in *Interpreter) {
		in.registry = registry
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(in *Interpreter) {
		in.log = log
	}
}

func NewInterpreter(store files.Store, options ...Option) *Interpreter {
	in := &Interpreter{
		store:    store,
		registry: DefaultRegistry(),
	}
	for _, o := range options {
		o(in)
	}
	in.log = klog.OrDiscard(in.log)
	return in
}

func (in *Interpreter) Registry() Registry {
	return in.registry
}

// Execute runs one command line against nav. It runs to completion before
// returning; a failed or rejected command leaves nav untouched.
func (in *Interpreter) Execute(rawLine string, nav Navigator) Outcome {
	return in.ExecuteContext(context.Background(), rawLine, nav)
}

func (in *Interpreter) ExecuteContext(ctx context.Context, rawLine string, nav Navigator) Outcome {
	tokens, err := shellquote.Split(rawLine)
	if err != nil {
		return Outcome{
			Status:  StatusParseError,
			Message: fmt.Sprintf("cannot parse command line: %v", err),
			Arg:     lastWord(rawLine),
			Err:     err,
		}
	}
	if len(tokens) == 0 {
		return Outcome{Status: StatusNoop}
	}
	name := tokens[0]
	cmd, ok := in.registry.Lookup(name)
	if !ok {
		in.log.WithField("command", name).Debug("unknown command")
		return Outcome{
			Status:  StatusUnknownCommand,
			Command: name,
			Message: fmt.Sprintf("unknown command: %s", name),
		}
	}
	args, err := cmd.Args.Parse(tokens[1:])
	if err != nil {
		var parseErr *ParseError
		arg := ""
		if errors.As(err, &parseErr) {
			arg = parseErr.Arg
		}
		return Outcome{
			Status:  StatusParseError,
			Command: name,
			Message: fmt.Sprintf("%s: %v (usage: %s)", name, err, cmd.Syntax),
			Arg:     arg,
			Err:     err,
		}
	}
	h, ok := handlers[cmd.Kind]
	if !ok {
		return Outcome{
			Status:  StatusFailed,
			Command: name,
			Message: fmt.Sprintf("%s: no handler for %v", name, cmd.Kind),
		}
	}
	in.log.WithFields(logrus.Fields{"command": name, "args": args}).Info("executing command")
	outcome := h(ctx, in, nav, args)
	outcome.Command = name
	if outcome.Status == StatusFailed {
		in.log.WithFields(logrus.Fields{
			"command": name,
			"args":    args,
		}).WithError(outcome.Err).Warn("command failed")
	}
	return outcome
}

// Reference returns the command named by the first word of a partially
// typed line.
func (in *Interpreter) Reference(line string) (Command, bool) {
	tokens, err := shellquote.Split(line)
	if err != nil {
		tokens = strings.Fields(line)
	}
	if len(tokens) == 0 {
		return Command{}, false
	}
	return in.registry.Lookup(tokens[0])
}

func changeDir(ctx context.Context, in *Interpreter, nav Navigator, args []string) Outcome {
	target := fsutils.ResolvePath(nav.Path(), args[0])
	entry, err := in.store.Stat(ctx, target)
	if err != nil {
		return failed(fmt.Sprintf("cd: not a directory: %s", args[0]), err)
	}
	if !entry.IsDir() {
		return failed(fmt.Sprintf("cd: not a directory: %s", args[0]), files.ErrNotDir)
	}
	nav.ChangeDirectory(target, "")
	return Outcome{Status: StatusOK}
}

func makeDir(ctx context.Context, in *Interpreter, nav Navigator, args []string) Outcome {
	target := fsutils.ResolvePath(nav.Path(), args[0])
	if err := in.store.CreateDir(ctx, target); err != nil {
		return failed(fmt.Sprintf("mkdir: %s: %s", args[0], reason(err)), err)
	}
	showCreated(nav, target)
	return Outcome{Status: StatusOK, Message: fmt.Sprintf("created directory %s", target)}
}

func touch(ctx context.Context, in *Interpreter, nav Navigator, args []string) Outcome {
	target := fsutils.ResolvePath(nav.Path(), args[0])
	if err := in.store.CreateFile(ctx, target); err != nil {
		return failed(fmt.Sprintf("touch: %s: %s", args[0], reason(err)), err)
	}
	showCreated(nav, target)
	return Outcome{Status: StatusOK}
}

func quit(_ context.Context, _ *Interpreter, _ Navigator, _ []string) Outcome {
	return Outcome{Status: StatusQuit}
}

// showCreated re-lists the directory holding target and selects it.
// The filter is cleared so the new entry is always visible.
func showCreated(nav Navigator, target string) {
	nav.ChangeDirectory(filepath.Dir(target), filepath.Base(target))
}

func failed(message string, err error) Outcome {
	return Outcome{Status: StatusFailed, Message: message, Err: err}
}

func reason(err error) string {
	switch {
	case errors.Is(err, files.ErrExists):
		return "already exists"
	case errors.Is(err, files.ErrNotFound):
		return "no such file or directory"
	case errors.Is(err, files.ErrPermission):
		return "permission denied"
	case errors.Is(err, files.ErrNotDir):
		return "not a directory"
	default:
		return err.Error()
	}
}

func lastWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
