package runtime

import (
	"github.com/aretw0/samuel/pkg/domain"
)

// rule is one row of a colour table: the first row whose condition holds is
// matched, and its action rewrites the working buffers.
type rule struct {
	condition string
	action    string
	when      func(st *stage) bool
	apply     func(st *stage) error
}

func always(*stage) bool { return true }

var redBlueYellowGreenSwap = map[domain.Colour]domain.Colour{
	domain.Red:    domain.Blue,
	domain.Blue:   domain.Red,
	domain.Yellow: domain.Green,
	domain.Green:  domain.Yellow,
}

// ruleTables is indexed by colour, then by 0-based row.
var ruleTables = [domain.ColourCount][rulesPerColour]rule{
	domain.Red: {
		{
			condition: `displayed pattern is ".-."`,
			action:    "invert every symbol",
			when:      func(st *stage) bool { return st.displayedPattern == ".-." },
			apply: func(st *stage) error {
				st.invertSymbols()
				return nil
			},
		},
		{
			condition: "Red has never failed to appear in a display",
			action:    "make every colour Red",
			when:      func(st *stage) bool { return !st.cross.RedHasFailedToAppear },
			apply: func(st *stage) error {
				st.setAllColours(domain.Red)
				return nil
			},
		},
		{
			condition: "dash count equals the number of indicators",
			action:    "shift right by lit minus unlit indicators",
			when: func(st *stage) bool {
				return countSymbol(st.symbols, domain.Dash) == st.snapshot.IndicatorCount()
			},
			apply: func(st *stage) error {
				st.shiftBoth(st.snapshot.LitIndicators - st.snapshot.UnlitIndicators)
				return nil
			},
		},
		{
			condition: `a module name contains "red"`,
			action:    "swap Red with Blue and Yellow with Green",
			when:      func(st *stage) bool { return st.snapshot.ModuleNameContainsRed },
			apply: func(st *stage) error {
				st.mapColours(redBlueYellowGreenSwap)
				return nil
			},
		},
		{
			condition: "otherwise",
			action:    "copy position 3 over 1, and position 4 over 2 when four long",
			when:      always,
			apply: func(st *stage) error {
				st.dupThenDeleteBoth(2, 0)
				if len(st.symbols) == 4 {
					st.dupThenDeleteBoth(3, 1)
				}
				return nil
			},
		},
	},
	domain.Yellow: {
		{
			condition: `displayed pattern is "---."`,
			action:    "reverse symbols and colours",
			when:      func(st *stage) bool { return st.displayedPattern == "---." },
			apply: func(st *stage) error {
				reverse(st.symbols)
				reverse(st.colours)
				return nil
			},
		},
		{
			condition: "stage number equals the battery count",
			action:    "remove position 4 - batteries mod 4 when four long, else insert a Yellow dash",
			when:      func(st *stage) bool { return st.number == st.snapshot.BatteryCount },
			apply: func(st *stage) error {
				if len(st.symbols) == 4 {
					st.removeBoth(3 - st.snapshot.BatteryCount%4)
					return nil
				}
				st.insertBoth(st.snapshot.SerialDigitSum%10%3, domain.Dash, domain.Yellow)
				return nil
			},
		},
		{
			condition: "Simon Shouts or Simon Sends is present",
			action:    "make positions 1 and 2 Yellow",
			when:      func(st *stage) bool { return st.snapshot.SimonVariantPresent },
			apply: func(st *stage) error {
				st.colours[0] = domain.Yellow
				st.colours[1] = domain.Yellow
				return nil
			},
		},
		{
			condition: "more than one Yellow was displayed",
			action:    "make every colour Blue except position 3",
			when:      func(st *stage) bool { return st.moreThanOneYellowDisplayed },
			apply: func(st *stage) error {
				for i := range st.colours {
					if i != 2 {
						st.colours[i] = domain.Blue
					}
				}
				return nil
			},
		},
		{
			condition: "otherwise",
			action:    "shift colours right by 2",
			when:      always,
			apply: func(st *stage) error {
				st.colours = rotate(st.colours, 2)
				return nil
			},
		},
	},
	domain.Green: {
		{
			condition: `displayed pattern is "--."`,
			action:    "colour dashes Green and turn dots into dashes",
			when:      func(st *stage) bool { return st.displayedPattern == "--." },
			apply: func(st *stage) error {
				for i, s := range st.symbols {
					if s == domain.Dash {
						st.colours[i] = domain.Green
					} else {
						st.symbols[i] = domain.Dash
					}
				}
				return nil
			},
		},
		{
			condition: "displayed position 2 is Green",
			action:    "set colours to Red, Blue, Yellow (, Green)",
			when:      func(st *stage) bool { return st.displayed[1].Colour == domain.Green },
			apply: func(st *stage) error {
				st.colours = []domain.Colour{domain.Red, domain.Blue, domain.Yellow}
				if len(st.symbols) == 4 {
					st.colours = append(st.colours, domain.Green)
				}
				return nil
			},
		},
		{
			condition: "Green rule 3 has never been applied",
			action:    "make position 1 Green and every other position Red",
			when:      func(st *stage) bool { return !st.cross.GreenHasAppearedBefore },
			apply: func(st *stage) error {
				st.cross.MarkGreenAppeared()
				for i := range st.colours {
					if i == 0 {
						st.colours[i] = domain.Green
					} else {
						st.colours[i] = domain.Red
					}
				}
				return nil
			},
		},
		{
			condition: "dot count equals the number of unique port types",
			action:    "move every dot to the front",
			when: func(st *stage) bool {
				return countSymbol(st.symbols, domain.Dot) == st.snapshot.UniquePortTypes
			},
			apply: func(st *stage) error {
				dots := countSymbol(st.symbols, domain.Dot)
				symbols := make([]domain.Symbol, 0, len(st.colours))
				for i := 0; i < dots; i++ {
					symbols = append(symbols, domain.Dot)
				}
				for len(symbols) < len(st.colours) {
					symbols = append(symbols, domain.Dash)
				}
				st.symbols = symbols
				return nil
			},
		},
		{
			condition: "otherwise",
			action:    "remove position 2 and append a Green dot",
			when:      always,
			apply: func(st *stage) error {
				st.removeBoth(1)
				st.symbols = append(st.symbols, domain.Dot)
				st.colours = append(st.colours, domain.Green)
				return nil
			},
		},
	},
	domain.Blue: {
		{
			condition: `displayed pattern is "-..."`,
			action:    "reverse symbols only",
			when:      func(st *stage) bool { return st.displayedPattern == "-..." },
			apply: func(st *stage) error {
				reverse(st.symbols)
				return nil
			},
		},
		{
			condition: "Blue has been in position 3 this stage",
			action:    "shift right by 1",
			when:      func(st *stage) bool { return st.blueSeenAtPositionThree },
			apply: func(st *stage) error {
				st.shiftBoth(1)
				return nil
			},
		},
		{
			condition: "displayed pattern is not a Morse letter",
			action:    "replace symbols with the first Morse letter of matching length from serial digit sum",
			when:      func(st *stage) bool { return !isMorseLetter(st.displayedPattern) },
			apply: func(st *stage) error {
				_, pattern, err := findMorseLetter(st.snapshot.SerialDigitSum%morseKeyCount, len(st.symbols))
				if err != nil {
					return err
				}
				symbols, err := domain.ParsePattern(pattern)
				if err != nil {
					return err
				}
				st.symbols = symbols
				return nil
			},
		},
		{
			condition: "displayed and current colours cover all four colours",
			action:    "do nothing",
			when: func(st *stage) bool {
				var seen [domain.ColourCount]bool
				distinct := 0
				for _, c := range append(st.displayed.Colours(), st.colours...) {
					if !seen[c] {
						seen[c] = true
						distinct++
					}
				}
				return distinct == domain.ColourCount
			},
			apply: func(*stage) error { return nil },
		},
		{
			condition: "otherwise",
			action:    "make positions 1 and 2 Blue and the rest Red",
			when:      always,
			apply: func(st *stage) error {
				for i := range st.colours {
					if i < 2 {
						st.colours[i] = domain.Blue
					} else {
						st.colours[i] = domain.Red
					}
				}
				return nil
			},
		},
	},
}

// Rules describes every row of the four tables in colour then row order.
func Rules() []domain.RuleInfo {
	infos := make([]domain.RuleInfo, 0, domain.ColourCount*rulesPerColour)
	for _, c := range domain.Colours {
		for i, r := range ruleTables[c] {
			infos = append(infos, domain.RuleInfo{
				Colour:    c,
				Number:    i + 1,
				Condition: r.condition,
				Action:    r.action,
			})
		}
	}
	return infos
}
