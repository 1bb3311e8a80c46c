package domain

import (
	"fmt"
	"strings"
)

// Symbol is a single Morse element.
type Symbol int

const (
	Dot Symbol = iota
	Dash
)

// Rune returns the Morse notation for the symbol ('.' or '-').
func (s Symbol) Rune() rune {
	if s == Dash {
		return '-'
	}
	return '.'
}

func (s Symbol) String() string {
	switch s {
	case Dot:
		return "dot"
	case Dash:
		return "dash"
	default:
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
}

// Invert swaps Dot and Dash.
func (s Symbol) Invert() Symbol {
	if s == Dash {
		return Dot
	}
	return Dash
}

// ParseSymbol accepts ".", "-", "dot" or "dash".
func ParseSymbol(s string) (Symbol, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ".", "dot":
		return Dot, nil
	case "-", "dash":
		return Dash, nil
	}
	return 0, fmt.Errorf("unknown symbol %q", s)
}

// MarshalText encodes the symbol in Morse notation.
func (s Symbol) MarshalText() ([]byte, error) {
	if s != Dot && s != Dash {
		return nil, fmt.Errorf("invalid symbol %d", int(s))
	}
	return []byte(string(s.Rune())), nil
}

// UnmarshalText decodes Morse notation or a symbol name.
func (s *Symbol) UnmarshalText(text []byte) error {
	parsed, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParsePattern converts a Morse string such as "-.-" into symbols.
func ParsePattern(pattern string) ([]Symbol, error) {
	symbols := make([]Symbol, 0, len(pattern))
	for _, r := range pattern {
		sym, err := ParseSymbol(string(r))
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, sym)
	}
	return symbols, nil
}

// Pattern renders symbols in Morse notation.
func Pattern(symbols []Symbol) string {
	var sb strings.Builder
	for _, s := range symbols {
		sb.WriteRune(s.Rune())
	}
	return sb.String()
}
