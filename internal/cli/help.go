package cli

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

//go:embed help.md
var helpMarkdown string

const helpWidth = 80

// renderHelp renders the help page as terminal markdown
func renderHelp(plain bool) (string, error) {
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
	}

	renderer, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(helpWidth),
	)
	if err != nil {
		return "", err
	}

	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

func (s *Session) showHelp() {
	out, err := renderHelp(s.plain)
	if err != nil {
		s.app.Logger.Warn("help rendering failed", "error", err)
		fmt.Fprintln(s.out, helpMarkdown)
		return
	}
	fmt.Fprintln(s.out, out)
}
