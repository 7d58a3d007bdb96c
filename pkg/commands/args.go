package commands

import (
	"fmt"
	"strings"
)

// ArgSpec names the positional arguments a command requires, in order.
// No built-in command takes flags, so any "-x" token before "--" is rejected.
type ArgSpec []string

// ParseError names the argument that made a command line unusable.
type ParseError struct {
	Arg     string
	Message string
}

func (e *ParseError) Error() string {
	if e.Arg == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Arg)
}

func (s ArgSpec) Parse(tokens []string) ([]string, error) {
	positional := make([]string, 0, len(tokens))
	flagsDone := false
	for _, token := range tokens {
		if !flagsDone && token == "--" {
			flagsDone = true
			continue
		}
		if !flagsDone && len(token) > 1 && strings.HasPrefix(token, "-") {
			return nil, &ParseError{Arg: token, Message: "unknown flag"}
		}
		positional = append(positional, token)
	}
	if len(positional) < len(s) {
		return nil, &ParseError{Arg: s[len(positional)], Message: "missing argument"}
	}
	if len(positional) > len(s) {
		return nil, &ParseError{Arg: positional[len(s)], Message: "unexpected argument"}
	}
	for i, value := range positional {
		if value == "" {
			return nil, &ParseError{Arg: s[i], Message: "empty argument"}
		}
	}
	return positional, nil
}
