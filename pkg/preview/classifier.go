package preview

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Classifier picks a highlighting language for a file.
type Classifier interface {
	Guess(fileName, sample string) (language string, ok bool)
}

// ChromaClassifier matches chroma lexers by file name first and falls back
// to content analysis.
type ChromaClassifier struct{}

var _ Classifier = ChromaClassifier{}

var matchLexer = lexers.Match
var analyseLexer = lexers.Analyse

func (ChromaClassifier) Guess(fileName, sample string) (string, bool) {
	var lexer chroma.Lexer
	if fileName != "" {
		lexer = matchLexer(fileName)
	}
	if lexer == nil && sample != "" {
		lexer = analyseLexer(sample)
	}
	if lexer == nil {
		return "", false
	}
	return lexer.Config().Name, true
}
