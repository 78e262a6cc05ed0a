package lexers

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirrezaask/stenografi/symbols"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Sentence
	}{
		{"digraph", "br", Sentence{{symbols.SYMBOL_BR}}},
		{"whole word", "stenografi", Sentence{{symbols.SYMBOL_STENOGRAFI}}},
		{"uppercase", "BR", Sentence{{symbols.SYMBOL_BR}}},
		{"unmatched skipped", "a1e", Sentence{{symbols.SYMBOL_A, symbols.SYMBOL_E}}},
		{"multi byte vowels", "båt äö", Sentence{{symbols.SYMBOL_B, symbols.SYMBOL_AO, symbols.SYMBOL_T}, {symbols.SYMBOL_AE, symbols.SYMBOL_OO}}},
		{"uppercase multi byte", "ÅÄÖ", Sentence{{symbols.SYMBOL_AO, symbols.SYMBOL_AE, symbols.SYMBOL_OO}}},
		{"digraph inside word", "abra", Sentence{{symbols.SYMBOL_A, symbols.SYMBOL_BR, symbols.SYMBOL_A}}},
		{"whole word prefix", "stenograf", Sentence{{symbols.SYMBOL_S, symbols.SYMBOL_T, symbols.SYMBOL_E, symbols.SYMBOL_N, symbols.SYMBOL_O, symbols.SYMBOL_G, symbols.SYMBOL_R, symbols.SYMBOL_A, symbols.SYMBOL_F}}},
		{"unmatched multi byte", "aée", Sentence{{symbols.SYMBOL_A, symbols.SYMBOL_E}}},
		{"empty", "", Sentence{nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestParse_WordCount(t *testing.T) {
	sentence := Parse("a b  c")
	assert.Len(t, sentence, 4)
	assert.Equal(t, Word{symbols.SYMBOL_A}, sentence[0])
	assert.Equal(t, Word{symbols.SYMBOL_B}, sentence[1])
	assert.Empty(t, sentence[2])
	assert.Equal(t, Word{symbols.SYMBOL_C}, sentence[3])
}

func TestParse_Total(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"   ",
		" a",
		"a ",
		"1234 !?#",
		"\t\n",
		"\xff\xfe",
		strings.Repeat("stenografi ", 100),
		"日本語",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			sentence := Parse(input)
			assert.Len(t, sentence, strings.Count(input, " ")+1)
		}, "input %q", input)
	}
}

func TestParse_CaseFolding(t *testing.T) {
	assert.Equal(t, Parse("br stenografi"), Parse("BR StenoGRAFI"))
}

func TestShippedOrderingPrefersMultiCharSymbols(t *testing.T) {
	assert.Equal(t, Sentence{{symbols.SYMBOL_BR}}, Parse("br"))
	assert.Equal(t, Sentence{{symbols.SYMBOL_STENOGRAFI}}, Parse("stenografi"))
}

func TestDeclarationOrderChangesResult(t *testing.T) {
	reordered := NewStenoLexer(symbols.Default().Move(symbols.SYMBOL_B, 0))
	assert.Equal(t, Sentence{{symbols.SYMBOL_B, symbols.SYMBOL_R}}, reordered.Lex("br"))

	lastStenografi := NewStenoLexer(symbols.Default().Move(symbols.SYMBOL_STENOGRAFI, len(symbols.Default())))
	assert.Len(t, lastStenografi.Lex("stenografi")[0], 10)
}

func TestCustomAlphabet(t *testing.T) {
	l := NewStenoLexer(symbols.Alphabet{symbols.SYMBOL_BR, symbols.SYMBOL_B, symbols.SYMBOL_R})
	assert.Equal(t, Sentence{{symbols.SYMBOL_BR, symbols.SYMBOL_B}, {symbols.SYMBOL_R}}, l.Lex("brab r"))
	assert.Equal(t, symbols.Alphabet{symbols.SYMBOL_BR, symbols.SYMBOL_B, symbols.SYMBOL_R}, l.Alphabet())
}

func TestLexWithSkips(t *testing.T) {
	sentence, skips := ParseWithSkips("a1e xå!")
	assert.Equal(t, Sentence{{symbols.SYMBOL_A, symbols.SYMBOL_E}, {symbols.SYMBOL_X, symbols.SYMBOL_AO}}, sentence)
	assert.Equal(t, Skips{
		{Word: 0, Offset: 1, Char: '1'},
		{Word: 1, Offset: 3, Char: '!'},
	}, skips)
	assert.EqualError(t, skips.Err(), `unmatched characters: '1' at word 0 offset 1, '!' at word 1 offset 3`)

	sentence, skips = ParseWithSkips("åäö")
	assert.Equal(t, Parse("åäö"), sentence)
	assert.Empty(t, skips)
	assert.NoError(t, skips.Err())
}

func TestWordString(t *testing.T) {
	assert.Equal(t, "abra", Parse("abra")[0].String())
	assert.Equal(t, "ae", Parse("a1e")[0].String())
	assert.Equal(t, 5, Parse("abra a1e").Symbols())
}

func TestParse_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, Sentence{{symbols.SYMBOL_BR, symbols.SYMBOL_A}}, Parse("bra"))
			}
		}()
	}
	wg.Wait()
}
