package stenografi

import (
	"github.com/amirrezaask/stenografi/lexers"
	"github.com/amirrezaask/stenografi/symbols"
)

type LayoutOptions struct {
	Start            Vec2
	WordSpacing      float32
	LineHeight       float32
	AverageWordWidth float32
	// Width is the right edge of the canvas, a new line starts when the next
	// word would probably not fit.
	Width float32
}

// Placement is where the top left corner of a glyph image goes.
type Placement struct {
	Symbol   symbols.Symbol
	Word     int
	Position Vec2
}

// Layout places the glyphs of sentence like a pen would write them: each
// glyph is positioned so its start point lands on the pen, then the pen
// moves to the glyph's end point. Symbols that have no entry in lib are
// returned in missing and take no space.
func Layout(sentence lexers.Sentence, lib *Library, opts LayoutOptions) (placements []Placement, missing []symbols.Symbol) {
	position := opts.Start
	var currentLine int
	for wordIdx, word := range sentence {
		for _, sym := range word {
			vt, exists := lib.Lookup(sym)
			if !exists {
				missing = append(missing, sym)
				continue
			}
			pivot := vt.Start.Neg()
			placements = append(placements, Placement{
				Symbol:   sym,
				Word:     wordIdx,
				Position: position.Add(pivot),
			})
			// next glyph starts where this one ends
			position = position.Add(pivot).Add(vt.End)
		}

		// new word
		position.X += opts.WordSpacing
		position.Y = opts.Start.Y + float32(currentLine)*opts.LineHeight
		if position.X+opts.AverageWordWidth > opts.Width {
			currentLine++
			position.X = opts.Start.X
			position.Y += opts.LineHeight
		}
	}
	return placements, missing
}
