package citation

import (
	"errors"
	"fmt"
	"strings"
)

// ItalicMarker opens and closes a span that must render in italics.
const ItalicMarker = "ITALIC"

var (
	ErrUnknownStyle = errors.New("unknown citation style")
)

// Style is a citation convention.
type Style string

const (
	// StyleAPA is American Psychological Association 7th edition.
	StyleAPA Style = "apa"
	// StyleGOST is ГОСТ Р 7.0.5-2008.
	StyleGOST Style = "gost"
)

// Styles lists the supported styles.
var Styles = []Style{StyleAPA, StyleGOST}

func (s Style) String() string { return string(s) }

// ParseStyle resolves a style name case-insensitively.
func ParseStyle(name string) (Style, error) {
	s := Style(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Styles {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}
