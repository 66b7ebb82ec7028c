package citation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingPlaceholder = errors.New("no value for placeholder")
	ErrBadTemplate        = errors.New("malformed template")
)

// segment is either literal text or a named placeholder.
type segment struct {
	text  string
	field string
}

// Template is a layout of literal text and {name} placeholders.
type Template struct {
	layout   string
	segments []segment
}

// ParseTemplate splits layout into literal and placeholder segments.
// Placeholder names are lower-case letters, digits and underscores.
func ParseTemplate(layout string) (*Template, error) {
	t := &Template{layout: layout}
	rest := layout
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			t.segments = append(t.segments, segment{text: rest})
			break
		}
		if open > 0 {
			t.segments = append(t.segments, segment{text: rest[:open]})
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return nil, fmt.Errorf("%w: unclosed placeholder in %q", ErrBadTemplate, layout)
		}
		name := rest[open+1 : open+end]
		if !validPlaceholder(name) {
			return nil, fmt.Errorf("%w: bad placeholder %q in %q", ErrBadTemplate, name, layout)
		}
		t.segments = append(t.segments, segment{field: name})
		rest = rest[open+end+1:]
	}
	return t, nil
}

// MustParseTemplate is like ParseTemplate but panics on error. It is meant
// for the package-level template table.
func MustParseTemplate(layout string) *Template {
	t, err := ParseTemplate(layout)
	if err != nil {
		panic(err)
	}
	return t
}

func validPlaceholder(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}

// Layout returns the source text of the template.
func (t *Template) Layout() string { return t.layout }

// Placeholders returns placeholder names in order of first appearance.
func (t *Template) Placeholders() []string {
	var names []string
	seen := make(map[string]bool)
	for _, s := range t.segments {
		if s.field != "" && !seen[s.field] {
			seen[s.field] = true
			names = append(names, s.field)
		}
	}
	return names
}

// Execute substitutes every placeholder in a single pass; substituted values
// are never expanded again.
func (t *Template) Execute(values map[string]string) (string, error) {
	var b strings.Builder
	for _, s := range t.segments {
		if s.field == "" {
			b.WriteString(s.text)
			continue
		}
		v, ok := values[s.field]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingPlaceholder, s.field)
		}
		b.WriteString(v)
	}
	return b.String(), nil
}
