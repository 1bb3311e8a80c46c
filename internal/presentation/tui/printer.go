package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/samuel"
	"github.com/aretw0/samuel/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const defaultWidth = 80

// Printer writes stages and rule listings to a terminal, falling back to
// plain text when output is redirected.
type Printer struct {
	out     io.Writer
	profile termenv.Profile
	render  func(string) (string, error)
}

// NewPrinter inspects f and enables colours and Markdown rendering only when
// it is a terminal.
func NewPrinter(f *os.File) *Printer {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return NewPlainPrinter(f)
	}
	width := defaultWidth
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		width = w
	}
	return &Printer{
		out:     f,
		profile: termenv.ColorProfile(),
		render:  NewRenderer(width),
	}
}

// NewPlainPrinter writes unstyled text to w.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{out: w, profile: termenv.Ascii}
}

// Styled reports whether the printer emits colours.
func (p *Printer) Styled() bool {
	return p.render != nil
}

// Banner prints the application banner.
func (p *Printer) Banner(version string) {
	PrintBanner(p.out, p.profile, version)
}

// Stage prints the stage report. Styled printers render it as Markdown;
// plain printers emit the bomb log lines.
func (p *Printer) Stage(stage *samuel.Stage) error {
	if p.render != nil {
		out, err := p.render(StageMarkdown(stage))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(p.out, out)
		return err
	}
	for _, line := range stage.Report() {
		if _, err := fmt.Fprintln(p.out, line); err != nil {
			return err
		}
	}
	return nil
}

// Sequence prints a coloured sequence on its own line.
func (p *Printer) Sequence(label string, seq domain.Sequence) {
	fmt.Fprintf(p.out, "%s %s\n", label, Sequence(p.profile, seq))
}

// Rules prints every rule row grouped by colour.
func (p *Printer) Rules(rules []domain.RuleInfo) {
	var current domain.Colour = -1
	for _, r := range rules {
		if r.Colour != current {
			current = r.Colour
			title := p.profile.String(r.Colour.String()).Foreground(p.profile.Color(colourHex[r.Colour])).Bold()
			fmt.Fprintf(p.out, "\n%s\n", title)
		}
		fmt.Fprintf(p.out, "  %d. If %s: %s.\n", r.Number, r.Condition, r.Action)
	}
}
