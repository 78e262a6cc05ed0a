package symbols

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAlphabetOrder(t *testing.T) {
	a := Default()
	assert.Len(t, a, 31)
	assert.Equal(t, SYMBOL_BR, a[0])
	assert.Equal(t, SYMBOL_STENOGRAFI, a[1])
	assert.Less(t, a.Index(SYMBOL_BR), a.Index(SYMBOL_B))
	assert.Less(t, a.Index(SYMBOL_BR), a.Index(SYMBOL_R))
	assert.Less(t, a.Index(SYMBOL_STENOGRAFI), a.Index(SYMBOL_S))
	assert.Less(t, a.Index(SYMBOL_OO), a.Index(SYMBOL_B))
	assert.NoError(t, a.Validate())
}

func TestDefaultIsACopy(t *testing.T) {
	a := Default()
	a[0] = SYMBOL_Z
	assert.Equal(t, SYMBOL_BR, Default()[0])
}

func TestValidate(t *testing.T) {
	shadowed := Default().Move(SYMBOL_B, 0)
	assert.ErrorContains(t, shadowed.Validate(), "BR is shadowed by B")

	dup := append(Default(), SYMBOL_A)
	assert.ErrorContains(t, dup.Validate(), "declared twice")

	bad := Alphabet{SYMBOL_A, Symbol(200)}
	assert.ErrorIs(t, bad.Validate(), ErrUnknownSymbol)
}

func TestMove(t *testing.T) {
	a := Alphabet{SYMBOL_BR, SYMBOL_B, SYMBOL_R}
	assert.Equal(t, Alphabet{SYMBOL_B, SYMBOL_BR, SYMBOL_R}, a.Move(SYMBOL_B, 0))
	assert.Equal(t, Alphabet{SYMBOL_B, SYMBOL_R, SYMBOL_BR}, a.Move(SYMBOL_BR, 10))
	assert.Equal(t, Alphabet{SYMBOL_BR, SYMBOL_B, SYMBOL_R}, a)
}

func TestSymbolText(t *testing.T) {
	assert.Equal(t, "br", SYMBOL_BR.Text())
	assert.Equal(t, "å", SYMBOL_AO.Text())
	assert.Equal(t, "ä", SYMBOL_AE.Text())
	assert.Equal(t, "ö", SYMBOL_OO.Text())
	assert.Equal(t, "AO", SYMBOL_AO.String())
	assert.Equal(t, "Symbol(0)", Symbol(0).String())
}

func TestSymbolJSON(t *testing.T) {
	bs, err := json.Marshal([]Symbol{SYMBOL_BR, SYMBOL_AO})
	require.NoError(t, err)
	assert.Equal(t, `["br","ao"]`, string(bs))

	var decoded []Symbol
	require.NoError(t, json.Unmarshal([]byte(`["STENOGRAFI","oo"]`), &decoded))
	assert.Equal(t, []Symbol{SYMBOL_STENOGRAFI, SYMBOL_OO}, decoded)

	err = json.Unmarshal([]byte(`["stenograf"]`), &decoded)
	assert.ErrorIs(t, err, ErrUnknownSymbol)
	assert.ErrorContains(t, err, `did you mean "stenografi"`)
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, []Symbol{SYMBOL_B, SYMBOL_BR}, Suggest("b"))
	assert.Empty(t, Suggest("qq"))
}
