package symbols

import (
	"fmt"
	"strings"
)

// Alphabet is the ordered list of symbols the lexer scans.
// Order is match priority: at every position the first symbol whose text
// matches wins, so a multi character symbol must come before every symbol
// whose text is a prefix of it.
//
// EXAMPLE 1:
// if B is declared before BR, "br" lexes to [B, R] instead of [BR].
// EXAMPLE 2:
// if STENOGRAFI is declared last, "stenografi" lexes to ten letters.
type Alphabet []Symbol

var defaultAlphabet = Alphabet{
	// special
	SYMBOL_BR, SYMBOL_STENOGRAFI,

	// vowels
	SYMBOL_A, SYMBOL_E, SYMBOL_I, SYMBOL_O, SYMBOL_U, SYMBOL_Y,
	SYMBOL_AO, SYMBOL_AE, SYMBOL_OO,

	// consonants
	SYMBOL_B, SYMBOL_C, SYMBOL_D, SYMBOL_F, SYMBOL_G,
	SYMBOL_H, SYMBOL_J, SYMBOL_K, SYMBOL_L, SYMBOL_M,
	SYMBOL_N, SYMBOL_P, SYMBOL_Q, SYMBOL_R, SYMBOL_S,
	SYMBOL_T, SYMBOL_V, SYMBOL_W, SYMBOL_X, SYMBOL_Z,
}

// Default returns a copy of the shipped alphabet.
func Default() Alphabet {
	return append(Alphabet(nil), defaultAlphabet...)
}

func (a Alphabet) Index(sym Symbol) int {
	for i, s := range a {
		if s == sym {
			return i
		}
	}
	return -1
}

// Move returns a copy of a with sym placed at index to.
func (a Alphabet) Move(sym Symbol, to int) Alphabet {
	out := make(Alphabet, 0, len(a))
	for _, s := range a {
		if s != sym {
			out = append(out, s)
		}
	}
	if to < 0 {
		to = 0
	}
	if to > len(out) {
		to = len(out)
	}
	out = append(out[:to], append(Alphabet{sym}, out[to:]...)...)
	return out
}

// Validate reports invalid or duplicated symbols and symbols that can never
// be produced because an earlier symbol's text is a prefix of theirs.
func (a Alphabet) Validate() error {
	seen := map[Symbol]bool{}
	for i, sym := range a {
		if !sym.IsValid() {
			return fmt.Errorf("%w at index %d", ErrUnknownSymbol, i)
		}
		if seen[sym] {
			return fmt.Errorf("symbol %s declared twice", sym)
		}
		seen[sym] = true
		for _, earlier := range a[:i] {
			if strings.HasPrefix(sym.Text(), earlier.Text()) {
				return fmt.Errorf("symbol %s is shadowed by %s declared before it", sym, earlier)
			}
		}
	}
	return nil
}
