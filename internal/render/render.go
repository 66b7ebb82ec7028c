package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nakachan-ing/bibfmt/internal/citation"
)

// DefaultTitle heads every document unless overridden.
const DefaultTitle = "Список использованной литературы"

var (
	ErrUnbalancedMarker = errors.New("unbalanced italic marker")
	ErrUnknownFormat    = errors.New("unknown output format")
)

// Layout is how list entries are laid out on the page.
type Layout int

const (
	// LayoutHangingIndent is an unnumbered list with a hanging indent.
	LayoutHangingIndent Layout = iota
	// LayoutNumbered is a numbered list.
	LayoutNumbered
)

// LayoutFor returns the layout a citation style is printed with.
func LayoutFor(style citation.Style) Layout {
	if style == citation.StyleGOST {
		return LayoutNumbered
	}
	return LayoutHangingIndent
}

// Document is a titled list of formatted citations, already sorted.
type Document struct {
	Title  string
	Layout Layout
	Rows   []string
}

// Renderer writes a document in one output format.
type Renderer interface {
	Render(w io.Writer, doc Document) error
	// Extension is the file extension including the dot.
	Extension() string
}

// ForFormat picks a renderer by format name.
func ForFormat(name string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "docx", "word":
		return DOCXRenderer{}, nil
	case "markdown", "md":
		return MarkdownRenderer{}, nil
	case "text", "txt":
		return TextRenderer{}, nil
	case "term", "terminal":
		return NewTerminalRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Segment is a run of text with uniform styling.
type Segment struct {
	Text   string
	Italic bool
}

// SplitItalic splits a row on the italic marker. Text after the second
// marker is returned as one plain segment.
func SplitItalic(row string) ([]Segment, error) {
	parts := strings.SplitN(row, citation.ItalicMarker, 3)
	switch len(parts) {
	case 1:
		return []Segment{{Text: row}}, nil
	case 2:
		return nil, fmt.Errorf("%w: %q", ErrUnbalancedMarker, row)
	}
	return []Segment{
		{Text: parts[0]},
		{Text: parts[1], Italic: true},
		{Text: parts[2]},
	}, nil
}

// PlainText returns the row with the italic markers removed.
func PlainText(row string) (string, error) {
	segments, err := SplitItalic(row)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String(), nil
}

// splitRows splits every row up front so a bad row fails before anything
// is written.
func splitRows(rows []string) ([][]Segment, error) {
	out := make([][]Segment, len(rows))
	for i, row := range rows {
		segments, err := SplitItalic(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out[i] = segments
	}
	return out, nil
}

func title(doc Document) string {
	if doc.Title == "" {
		return DefaultTitle
	}
	return doc.Title
}
