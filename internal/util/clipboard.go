package util

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/nakachan-ing/bibfmt/internal/render"
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// CopyRows puts the rows on the system clipboard as plain text, one per
// line, with the italic markers removed.
func CopyRows(rows []string) error {
	lines := make([]string, len(rows))
	for i, row := range rows {
		plain, err := render.PlainText(row)
		if err != nil {
			return err
		}
		lines[i] = plain
	}

	if err := clipboardWrite(strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
