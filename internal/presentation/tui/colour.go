package tui

import (
	"strings"

	"github.com/aretw0/samuel/pkg/domain"
	"github.com/muesli/termenv"
)

// Button colours, indexed by domain.Colour.
var colourHex = [domain.ColourCount]string{
	"#ef4444",
	"#facc15",
	"#22c55e",
	"#3b82f6",
}

// Symbol renders one coloured symbol in compact form ("r.", "b-").
func Symbol(p termenv.Profile, cs domain.ColouredSymbol) string {
	s := p.String(cs.Token())
	if cs.Colour.Valid() {
		s = s.Foreground(p.Color(colourHex[cs.Colour])).Bold()
	}
	return s.String()
}

// Sequence renders a sequence as space separated coloured tokens.
func Sequence(p termenv.Profile, seq domain.Sequence) string {
	parts := make([]string, len(seq))
	for i, cs := range seq {
		parts[i] = Symbol(p, cs)
	}
	return strings.Join(parts, " ")
}
