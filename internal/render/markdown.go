package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

var markdownEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `_`, `\_`, "`", "\\`")

// MarkdownRenderer writes the list as Markdown with *emphasis* for italics.
type MarkdownRenderer struct{}

func (MarkdownRenderer) Extension() string { return ".md" }

func (MarkdownRenderer) Render(w io.Writer, doc Document) error {
	rows, err := splitRows(doc.Rows)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n\n", markdownEscaper.Replace(title(doc)))
	for i, segments := range rows {
		if doc.Layout == LayoutNumbered {
			fmt.Fprintf(bw, "%d. ", i+1)
		}
		for _, s := range segments {
			bw.WriteString(markdownSegment(s))
		}
		if doc.Layout == LayoutNumbered {
			bw.WriteString("\n")
		} else {
			bw.WriteString("\n\n")
		}
	}
	return bw.Flush()
}

// markdownSegment moves surrounding spaces out of the emphasis markers;
// "* text *" would not render as italics.
func markdownSegment(s Segment) string {
	text := markdownEscaper.Replace(s.Text)
	if !s.Italic {
		return text
	}
	core := strings.TrimFunc(text, unicode.IsSpace)
	if core == "" {
		return text
	}
	start := strings.Index(text, core)
	return text[:start] + "*" + core + "*" + text[start+len(core):]
}
