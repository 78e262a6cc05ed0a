package symbols

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Symbol is one shorthand unit.
type Symbol uint8

const (
	// special
	SYMBOL_BR Symbol = iota + 1
	SYMBOL_STENOGRAFI

	// vowels
	SYMBOL_A
	SYMBOL_E
	SYMBOL_I
	SYMBOL_O
	SYMBOL_U
	SYMBOL_Y
	SYMBOL_AO
	SYMBOL_AE
	SYMBOL_OO

	// consonants
	SYMBOL_B
	SYMBOL_C
	SYMBOL_D
	SYMBOL_F
	SYMBOL_G
	SYMBOL_H
	SYMBOL_J
	SYMBOL_K
	SYMBOL_L
	SYMBOL_M
	SYMBOL_N
	SYMBOL_P
	SYMBOL_Q
	SYMBOL_R
	SYMBOL_S
	SYMBOL_T
	SYMBOL_V
	SYMBOL_W
	SYMBOL_X
	SYMBOL_Z
)

type definition struct {
	name string
	text string
}

var definitions = map[Symbol]definition{
	SYMBOL_BR:         {"BR", "br"},
	SYMBOL_STENOGRAFI: {"STENOGRAFI", "stenografi"},

	SYMBOL_A:  {"A", "a"},
	SYMBOL_E:  {"E", "e"},
	SYMBOL_I:  {"I", "i"},
	SYMBOL_O:  {"O", "o"},
	SYMBOL_U:  {"U", "u"},
	SYMBOL_Y:  {"Y", "y"},
	SYMBOL_AO: {"AO", "å"},
	SYMBOL_AE: {"AE", "ä"},
	SYMBOL_OO: {"OO", "ö"},

	SYMBOL_B: {"B", "b"},
	SYMBOL_C: {"C", "c"},
	SYMBOL_D: {"D", "d"},
	SYMBOL_F: {"F", "f"},
	SYMBOL_G: {"G", "g"},
	SYMBOL_H: {"H", "h"},
	SYMBOL_J: {"J", "j"},
	SYMBOL_K: {"K", "k"},
	SYMBOL_L: {"L", "l"},
	SYMBOL_M: {"M", "m"},
	SYMBOL_N: {"N", "n"},
	SYMBOL_P: {"P", "p"},
	SYMBOL_Q: {"Q", "q"},
	SYMBOL_R: {"R", "r"},
	SYMBOL_S: {"S", "s"},
	SYMBOL_T: {"T", "t"},
	SYMBOL_V: {"V", "v"},
	SYMBOL_W: {"W", "w"},
	SYMBOL_X: {"X", "x"},
	SYMBOL_Z: {"Z", "z"},
}

var ErrUnknownSymbol = errors.New("unknown symbol")

// String returns the identifier, e.g. "BR" or "AO".
func (s Symbol) String() string {
	if d, exists := definitions[s]; exists {
		return d.name
	}
	return fmt.Sprintf("Symbol(%d)", uint8(s))
}

// Text returns the lowercase text the symbol matches in input.
// Glyph assets are named after it.
func (s Symbol) Text() string {
	return definitions[s].text
}

func (s Symbol) IsValid() bool {
	_, exists := definitions[s]
	return exists
}

func (s Symbol) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSymbol, uint8(s))
	}
	return []byte(strings.ToLower(s.String())), nil
}

func (s *Symbol) UnmarshalText(bs []byte) error {
	sym, err := FromName(string(bs))
	if err != nil {
		return err
	}
	*s = sym
	return nil
}

// FromName resolves an identifier case-insensitively ("br", "AO").
// The error carries the closest known identifier when there is one.
func FromName(name string) (Symbol, error) {
	for sym, d := range definitions {
		if strings.EqualFold(d.name, name) {
			return sym, nil
		}
	}
	if suggestions := Suggest(name); len(suggestions) > 0 {
		return 0, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownSymbol, name, strings.ToLower(suggestions[0].String()))
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownSymbol, name)
}

// Suggest ranks known symbols by fuzzy distance of their identifier to
// query. Identifiers that do not fuzzy match at all are left out.
func Suggest(query string) []Symbol {
	type scored struct {
		sym   Symbol
		score int
	}
	var matches []scored
	for _, sym := range Default() {
		score := fuzzy.RankMatchNormalizedFold(query, sym.String())
		if score < 0 {
			continue
		}
		matches = append(matches, scored{sym: sym, score: score})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score < matches[j].score
	})
	out := make([]Symbol, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.sym)
	}
	return out
}
