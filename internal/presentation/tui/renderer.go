package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/samuel"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour,
// wrapped at width columns.
func NewRenderer(width int) func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// StageMarkdown describes a stage as a Markdown document.
func StageMarkdown(stage *samuel.Stage) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Stage %d\n\n", stage.Number)
	fmt.Fprintf(&sb, "Displayed: `%s`\n\n", stage.Displayed.Tokens())
	for _, ev := range stage.Result.Trace {
		fmt.Fprintf(&sb, "- %s\n", ev.Message)
	}
	fmt.Fprintf(&sb, "\nModified: `%s`\n\n", stage.Result.Modified.Tokens())
	fmt.Fprintf(&sb, "**Expected response:** %s (`%s`)\n", stage.Expected(), stage.Expected().Token())
	return sb.String()
}
