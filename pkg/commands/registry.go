package commands

import (
	"fmt"
	"sort"
)

// Kind is the closed set of built-in commands.
type Kind int

const (
	KindChangeDir Kind = iota + 1
	KindMakeDir
	KindTouch
	KindQuit
)

func (k Kind) String() string {
	switch k {
	case KindChangeDir:
		return "cd"
	case KindMakeDir:
		return "mkdir"
	case KindTouch:
		return "touch"
	case KindQuit:
		return "quit"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Command struct {
	Kind        Kind
	Name        string
	Syntax      string
	Description string
	Args        ArgSpec
}

var builtins = []Command{
	{
		Kind:        KindChangeDir,
		Name:        "cd",
		Syntax:      "cd PATH",
		Description: "Go to the directory at PATH.",
		Args:        ArgSpec{"PATH"},
	},
	{
		Kind:        KindMakeDir,
		Name:        "mkdir",
		Syntax:      "mkdir PATH",
		Description: "Create a directory at PATH.",
		Args:        ArgSpec{"PATH"},
	},
	{
		Kind:        KindQuit,
		Name:        "q",
		Syntax:      "q",
		Description: "Quit kupo.",
	},
	{
		Kind:        KindQuit,
		Name:        "quit",
		Syntax:      "quit",
		Description: "Quit kupo.",
	},
	{
		Kind:        KindTouch,
		Name:        "touch",
		Syntax:      "touch PATH",
		Description: "Create an empty file at PATH.",
		Args:        ArgSpec{"PATH"},
	},
}

// Registry maps command names to commands. It is built once and never
// modified afterwards.
type Registry struct {
	byName map[string]Command
}

func NewRegistry(commands ...Command) (Registry, error) {
	r := Registry{byName: make(map[string]Command, len(commands))}
	for _, c := range commands {
		if c.Name == "" {
			return Registry{}, fmt.Errorf("command of kind %v has no name", c.Kind)
		}
		if _, exists := r.byName[c.Name]; exists {
			return Registry{}, fmt.Errorf("duplicate command name %q", c.Name)
		}
		r.byName[c.Name] = c
	}
	return r, nil
}

// DefaultRegistry holds cd, mkdir, touch, quit and q.
func DefaultRegistry() Registry {
	r, err := NewRegistry(builtins...)
	if err != nil {
		panic(err) // built-in table is static
	}
	return r
}

func (r Registry) Lookup(name string) (Command, bool) {
	c, ok := r.byName[name]
	return c, ok
}

func (r Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
