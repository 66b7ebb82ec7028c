package render

import (
	"bufio"
	"fmt"
	"io"
)

// TextRenderer writes plain UTF-8 text with the italic markers removed.
type TextRenderer struct{}

func (TextRenderer) Extension() string { return ".txt" }

func (TextRenderer) Render(w io.Writer, doc Document) error {
	rows, err := splitRows(doc.Rows)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n\n", title(doc))
	for i, segments := range rows {
		if doc.Layout == LayoutNumbered {
			fmt.Fprintf(bw, "%d. ", i+1)
		}
		for _, s := range segments {
			bw.WriteString(s.Text)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}
