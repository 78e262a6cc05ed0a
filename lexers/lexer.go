package lexers

import (
	"strings"

	"github.com/amirrezaask/stenografi/symbols"
)

// Word is the symbols of one space separated chunk of input.
type Word []symbols.Symbol

// Sentence holds one Word per chunk, including empty chunks produced by
// leading, trailing or repeated spaces.
type Sentence []Word

// Lexer turns a line of text into a Sentence.
// Lex never fails, characters it cannot match are dropped.
type Lexer interface {
	Lex(input string) Sentence
}

func (w Word) String() string {
	var sb strings.Builder
	for _, sym := range w {
		sb.WriteString(sym.Text())
	}
	return sb.String()
}

// Symbols returns the number of symbols in all words.
func (s Sentence) Symbols() int {
	var n int
	for _, w := range s {
		n += len(w)
	}
	return n
}
