package domain

import (
	"fmt"
	"strings"
)

const (
	// MinSequenceLength and MaxSequenceLength bound a displayed sequence.
	MinSequenceLength = 3
	MaxSequenceLength = 4
)

// ColouredSymbol is one flash of the display: a colour paired with a symbol.
type ColouredSymbol struct {
	Colour Colour `json:"colour" yaml:"colour" mapstructure:"colour"`
	Symbol Symbol `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
}

func (cs ColouredSymbol) String() string {
	return cs.Colour.String() + " " + cs.Symbol.String()
}

// Token returns the compact form used on the command line, e.g. "r." or "b-".
func (cs ColouredSymbol) Token() string {
	return cs.Colour.Initial() + string(cs.Symbol.Rune())
}

// Sequence is an ordered run of coloured symbols.
type Sequence []ColouredSymbol

// Pattern returns the Morse string of the symbols, ignoring colour.
func (s Sequence) Pattern() string {
	return Pattern(s.Symbols())
}

// Symbols returns a copy of the symbols in order.
func (s Sequence) Symbols() []Symbol {
	out := make([]Symbol, len(s))
	for i, cs := range s {
		out[i] = cs.Symbol
	}
	return out
}

// Colours returns a copy of the colours in order.
func (s Sequence) Colours() []Colour {
	out := make([]Colour, len(s))
	for i, cs := range s {
		out[i] = cs.Colour
	}
	return out
}

// Count returns how many elements have the given colour.
func (s Sequence) Count(c Colour) int {
	n := 0
	for _, cs := range s {
		if cs.Colour == c {
			n++
		}
	}
	return n
}

// Contains reports whether any element has the given colour.
func (s Sequence) Contains(c Colour) bool {
	return s.Count(c) > 0
}

// Validate checks the displayed-sequence invariants: length 3 or 4 and every
// element a known colour and symbol.
func (s Sequence) Validate() error {
	if len(s) < MinSequenceLength || len(s) > MaxSequenceLength {
		return fmt.Errorf("%w: length %d, want %d or %d", ErrInvalidSequence, len(s), MinSequenceLength, MaxSequenceLength)
	}
	for i, cs := range s {
		if !cs.Colour.Valid() {
			return fmt.Errorf("%w: position %d has colour %d", ErrInvalidSequence, i+1, int(cs.Colour))
		}
		if cs.Symbol != Dot && cs.Symbol != Dash {
			return fmt.Errorf("%w: position %d has symbol %d", ErrInvalidSequence, i+1, int(cs.Symbol))
		}
	}
	return nil
}

func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, cs := range s {
		parts[i] = cs.String()
	}
	return strings.Join(parts, ", ")
}

// Tokens renders the sequence in the compact command-line form ("r. y- g.").
func (s Sequence) Tokens() string {
	parts := make([]string, len(s))
	for i, cs := range s {
		parts[i] = cs.Token()
	}
	return strings.Join(parts, " ")
}

// Clone returns an independent copy.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// ParseColouredSymbol parses one token: a colour name or initial followed by
// a Morse symbol, e.g. "r.", "blue-", "Y-". A colon separator ("green:dash")
// is also accepted.
func ParseColouredSymbol(token string) (ColouredSymbol, error) {
	token = strings.TrimSpace(token)
	var colourPart, symbolPart string
	if idx := strings.IndexByte(token, ':'); idx >= 0 {
		colourPart, symbolPart = token[:idx], token[idx+1:]
	} else {
		if len(token) < 2 {
			return ColouredSymbol{}, fmt.Errorf("invalid token %q", token)
		}
		colourPart, symbolPart = token[:len(token)-1], token[len(token)-1:]
	}

	colour, err := ParseColour(colourPart)
	if err != nil {
		return ColouredSymbol{}, fmt.Errorf("invalid token %q: %w", token, err)
	}
	symbol, err := ParseSymbol(symbolPart)
	if err != nil {
		return ColouredSymbol{}, fmt.Errorf("invalid token %q: %w", token, err)
	}
	return ColouredSymbol{Colour: colour, Symbol: symbol}, nil
}

// ParseSequence parses whitespace or comma separated tokens and validates the
// result as a displayed sequence.
func ParseSequence(input string) (Sequence, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	seq := make(Sequence, 0, len(fields))
	for _, f := range fields {
		cs, err := ParseColouredSymbol(f)
		if err != nil {
			return nil, err
		}
		seq = append(seq, cs)
	}
	if err := seq.Validate(); err != nil {
		return nil, err
	}
	return seq, nil
}
