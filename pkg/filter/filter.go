// Package filter narrows an entry list by a live pattern typed by the user.
package filter

import (
	"fmt"
	"regexp"

	"github.com/filetug/kupo/pkg/files"
	"github.com/gobwas/glob"
)

type Syntax string

const (
	SyntaxRegex Syntax = "regex"
	SyntaxGlob  Syntax = "glob"
)

// Matcher reports whether an entry name passes the filter.
type Matcher func(name string) bool

func matchNothing(string) bool {
	return false
}

// Engine applies patterns to entry names only, never to full paths.
// Matching is case-sensitive and unanchored for both syntaxes.
type Engine struct {
	syntax Syntax
}

func New(syntax Syntax) Engine {
	if syntax == "" {
		syntax = SyntaxRegex
	}
	return Engine{syntax: syntax}
}

func (f Engine) Syntax() Syntax {
	return f.syntax
}

// Compile turns pattern into a matcher. An invalid pattern yields an error
// together with a matcher that accepts nothing.
func (f Engine) Compile(pattern string) (Matcher, error) {
	switch f.syntax {
	case SyntaxGlob:
		g, err := glob.Compile("*" + pattern + "*")
		if err != nil {
			return matchNothing, fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
		return g.Match, nil
	case SyntaxRegex, "":
		re, err := regexp.Compile(pattern)
		if err != nil {
			return matchNothing, fmt.Errorf("invalid regex %q: %w", pattern, err)
		}
		return re.MatchString, nil
	default:
		return matchNothing, fmt.Errorf("unknown filter syntax %q", f.syntax)
	}
}

// Validate reports why pattern would match nothing, if it is malformed.
func (f Engine) Validate(pattern string) error {
	_, err := f.Compile(pattern)
	return err
}

// Apply returns the entries whose names match pattern, in their original order.
// The input is never modified. An empty pattern keeps every entry and a
// malformed one keeps none.
func (f Engine) Apply(entries []files.Entry, pattern string) []files.Entry {
	result := make([]files.Entry, 0, len(entries))
	if pattern == "" {
		return append(result, entries...)
	}
	match, _ := f.Compile(pattern)
	for _, e := range entries {
		if match(e.Name) {
			result = append(result, e)
		}
	}
	return result
}
