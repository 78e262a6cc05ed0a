package lexers

import (
	"fmt"
	"strings"

	"github.com/amirrezaask/stenografi/byteutils"
	"github.com/amirrezaask/stenografi/symbols"
)

const wordSeparator = " "

// StenoLexer does a greedy scan over its alphabet: at every position of a
// word the first symbol, in alphabet order, whose text starts there is
// taken. Offsets are bytes, both for matching and for advancing, so
// multi byte letters like å never desync the cursor.
//
// A StenoLexer is never mutated after construction and is safe for
// concurrent use.
type StenoLexer struct {
	alphabet symbols.Alphabet
}

var _ Lexer = (*StenoLexer)(nil)

var defaultLexer = NewStenoLexer(symbols.Default())

func NewStenoLexer(alphabet symbols.Alphabet) *StenoLexer {
	return &StenoLexer{alphabet: append(symbols.Alphabet(nil), alphabet...)}
}

// Parse lexes input with the default alphabet.
func Parse(input string) Sentence {
	return defaultLexer.Lex(input)
}

// ParseWithSkips is Parse that also reports dropped characters.
func ParseWithSkips(input string) (Sentence, Skips) {
	return defaultLexer.LexWithSkips(input)
}

// Skip is a character that matched no symbol and was dropped.
type Skip struct {
	Word   int  // index of the word in the sentence
	Offset int  // byte offset inside the word
	Char   rune // the dropped character, after lowercasing
}

type Skips []Skip

func (s Skips) Error() string {
	parts := make([]string, 0, len(s))
	for _, skip := range s {
		parts = append(parts, fmt.Sprintf("%q at word %d offset %d", skip.Char, skip.Word, skip.Offset))
	}
	return "unmatched characters: " + strings.Join(parts, ", ")
}

// Err returns s as an error, or nil when nothing was skipped.
func (s Skips) Err() error {
	if len(s) == 0 {
		return nil
	}
	return s
}

func (l *StenoLexer) Alphabet() symbols.Alphabet {
	return append(symbols.Alphabet(nil), l.alphabet...)
}

func (l *StenoLexer) Lex(input string) Sentence {
	sentence, _ := l.lex(input, false)
	return sentence
}

// LexWithSkips returns the same sentence as Lex plus every character that
// was dropped on the way.
func (l *StenoLexer) LexWithSkips(input string) (Sentence, Skips) {
	return l.lex(input, true)
}

func (l *StenoLexer) lex(input string, recordSkips bool) (Sentence, Skips) {
	var skips Skips
	chunks := strings.Split(strings.ToLower(input), wordSeparator)
	sentence := make(Sentence, 0, len(chunks))
	for wordIdx, chunk := range chunks {
		var word Word
		for i := 0; i < len(chunk); {
			sym, ok := l.match(chunk, i)
			if ok {
				word = append(word, sym)
				i += len(sym.Text())
				continue
			}
			width := byteutils.CharWidthAt(chunk, i)
			if recordSkips {
				skips = append(skips, Skip{
					Word:   wordIdx,
					Offset: i,
					Char:   []rune(chunk[i : i+width])[0],
				})
			}
			i += width
		}
		sentence = append(sentence, word)
	}
	return sentence, skips
}

func (l *StenoLexer) match(chunk string, i int) (symbols.Symbol, bool) {
	for _, sym := range l.alphabet {
		text := sym.Text()
		if text == "" {
			continue
		}
		if byteutils.HasPrefixAt(chunk, text, i) {
			return sym, true
		}
	}
	return 0, false
}
