package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TerminalRenderer prints the list to a console with real italics.
type TerminalRenderer struct {
	Title  lipgloss.Style
	Italic lipgloss.Style
	Number lipgloss.Style
}

func NewTerminalRenderer() TerminalRenderer {
	return TerminalRenderer{
		Title:  lipgloss.NewStyle().Bold(true),
		Italic: lipgloss.NewStyle().Italic(true),
		Number: lipgloss.NewStyle().Faint(true),
	}
}

func (TerminalRenderer) Extension() string { return "" }

func (r TerminalRenderer) Render(w io.Writer, doc Document) error {
	rows, err := splitRows(doc.Rows)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n\n", r.Title.Render(title(doc)))
	for i, segments := range rows {
		var line strings.Builder
		if doc.Layout == LayoutNumbered {
			line.WriteString(r.Number.Render(fmt.Sprintf("%d.", i+1)) + " ")
		}
		for _, s := range segments {
			if s.Italic && s.Text != "" {
				line.WriteString(r.Italic.Render(s.Text))
				continue
			}
			line.WriteString(s.Text)
		}
		bw.WriteString(line.String())
		bw.WriteString("\n")
	}
	return bw.Flush()
}
