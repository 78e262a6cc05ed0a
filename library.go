package stenografi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/amirrezaask/stenografi/symbols"
)

type Vec2 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Neg() Vec2       { return Vec2{X: -v.X, Y: -v.Y} }

// VisualToken is the geometry of one glyph. Start is the point of the glyph
// image where the pen enters, End where it leaves, both relative to the
// image's top left corner.
type VisualToken struct {
	Token symbols.Symbol `json:"token"`
	Start Vec2           `json:"start"`
	End   Vec2           `json:"end"`
}

// Library maps symbols to their glyph geometry.
type Library struct {
	Tokens []VisualToken
	index  map[symbols.Symbol]int
}

// NewLibrary indexes tokens. When a symbol is listed twice the first entry
// is used.
func NewLibrary(tokens []VisualToken) *Library {
	l := &Library{Tokens: tokens, index: make(map[symbols.Symbol]int, len(tokens))}
	for i, vt := range tokens {
		if _, exists := l.index[vt.Token]; !exists {
			l.index[vt.Token] = i
		}
	}
	return l
}

func defaultLibrary() *Library {
	return NewLibrary([]VisualToken{{Token: symbols.SYMBOL_A}})
}

func (l *Library) Lookup(sym symbols.Symbol) (VisualToken, bool) {
	i, exists := l.index[sym]
	if !exists {
		return VisualToken{}, false
	}
	return l.Tokens[i], true
}

func DecodeLibrary(r io.Reader) (*Library, error) {
	var tokens []VisualToken
	if err := json.NewDecoder(r).Decode(&tokens); err != nil {
		return nil, fmt.Errorf("decoding visual library: %w", err)
	}
	return NewLibrary(tokens), nil
}

func (l *Library) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l.Tokens)
}

func (l *Library) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := l.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadLibrary reads the visual library at path. If there is none yet a
// default library is written there and returned so it can be filled in by
// hand.
func LoadLibrary(path string) (*Library, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		lib := defaultLibrary()
		if err := lib.Save(path); err != nil {
			return nil, fmt.Errorf("creating default visual library: %w", err)
		}
		return lib, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lib, err := DecodeLibrary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}
