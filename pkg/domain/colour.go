package domain

import (
	"fmt"
	"strings"
)

// Colour identifies one of the four buttons. The numeric order matches the
// physical layout and is used to index the rule tables.
type Colour int

const (
	Red Colour = iota
	Yellow
	Green
	Blue
)

// ColourCount is the number of button colours.
const ColourCount = 4

// Colours lists every colour in button order.
var Colours = [ColourCount]Colour{Red, Yellow, Green, Blue}

var colourNames = [ColourCount]string{"Red", "Yellow", "Green", "Blue"}

func (c Colour) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Colour(%d)", int(c))
	}
	return colourNames[c]
}

// Initial returns the lower-case single letter abbreviation (r, y, g, b).
func (c Colour) Initial() string {
	return strings.ToLower(c.String()[:1])
}

// Valid reports whether c is one of the four button colours.
func (c Colour) Valid() bool {
	return c >= Red && c <= Blue
}

// ParseColour accepts a full colour name or its initial, case-insensitively.
func ParseColour(s string) (Colour, error) {
	clean := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Colours {
		if clean == strings.ToLower(c.String()) || clean == c.Initial() {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown colour %q", s)
}

// MarshalText encodes the colour by name.
func (c Colour) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid colour %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a colour name or initial.
func (c *Colour) UnmarshalText(text []byte) error {
	parsed, err := ParseColour(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
