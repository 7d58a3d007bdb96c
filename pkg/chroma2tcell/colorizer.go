package chroma2tcell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

var getLexer = lexers.Get

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

// StyleExists reports whether chroma has a style registered under name.
// styles.Get silently falls back, so the registry is checked directly.
func StyleExists(name string) bool {
	for _, registered := range styles.Names() {
		if strings.EqualFold(registered, name) {
			return true
		}
	}
	return false
}

// Colorize renders text as tview color-tagged markup. language is a chroma
// lexer name as reported by the preview classifier; an unknown or empty
// language renders the text escaped but uncolored.
func Colorize(text, language, styleName string) (string, error) {
	tokens, style, err := tokenise(text, language, styleName)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	writeTokens(&sb, tokens, style)
	return sb.String(), nil
}

// ColorizeNumbered is Colorize with a right-aligned line number gutter.
func ColorizeNumbered(text, language, styleName string) (string, error) {
	tokens, style, err := tokenise(text, language, styleName)
	if err != nil {
		return "", err
	}
	lines := chroma.SplitTokensIntoLines(tokens)
	width := len(strconv.Itoa(len(lines)))
	gutter := "[gray::]"
	if style != nil {
		if entry := style.Get(chroma.LineNumbers); entry.Colour.IsSet() {
			gutter = openTag(entry)
		}
	}

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(gutter)
		_, _ = fmt.Fprintf(&sb, "%*d ", width, i+1)
		sb.WriteString("[-::-]")
		if last := len(line) - 1; last >= 0 {
			line[last].Value = strings.TrimSuffix(line[last].Value, "\n")
		}
		writeTokens(&sb, line, style)
	}
	return sb.String(), nil
}

// tokenise returns a nil style when there is no lexer for language, in which
// case the text comes back as a single uncolored token.
func tokenise(text, language, styleName string) ([]chroma.Token, *chroma.Style, error) {
	var lexer chroma.Lexer
	if language != "" {
		lexer = getLexer(language)
	}
	if lexer == nil {
		if text == "" {
			return nil, nil, nil
		}
		return []chroma.Token{{Type: chroma.Text, Value: text}}, nil, nil
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	if err != nil {
		return nil, nil, err
	}
	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}
	return iterator.Tokens(), style, nil
}

func writeTokens(sb *strings.Builder, tokens []chroma.Token, style *chroma.Style) {
	for _, token := range tokens {
		value := tview.Escape(token.Value)
		if style == nil {
			sb.WriteString(value)
			continue
		}
		entry := style.Get(token.Type)
		if !entry.Colour.IsSet() {
			sb.WriteString(value)
			continue
		}
		sb.WriteString(openTag(entry))
		sb.WriteString(value)
		sb.WriteString("[-::-]")
	}
}

// openTag builds a [fg::attrs] tag, e.g. [#ff79c6::b].
func openTag(entry chroma.StyleEntry) string {
	var attrs strings.Builder
	if entry.Bold == chroma.Yes {
		attrs.WriteByte('b')
	}
	if entry.Italic == chroma.Yes {
		attrs.WriteByte('i')
	}
	if entry.Underline == chroma.Yes {
		attrs.WriteByte('u')
	}
	return "[" + entry.Colour.String() + "::" + attrs.String() + "]"
}
