package citation

import "strings"

const (
	authorSeparator = "&"
	authorEllipsis  = "..."

	// maxListedAuthors is the longest list rendered in full.
	maxListedAuthors = 20
	// truncatedHead is how many leading authors survive truncation.
	truncatedHead = 19
)

// FormatAuthors renders a comma-separated author string for APA.
//
// Entries are split on "," without trimming, so every entry after the first
// keeps its leading space:
//   - one author is returned unchanged
//   - 2 to 20 authors become "A1, & A2, & A3"
//   - more than 20 become "A1, A2, ..., A19, ... Alast"
func FormatAuthors(input string) string {
	authors := strings.Split(input, ",")
	if len(authors) == 1 {
		return input
	}

	var b strings.Builder
	if len(authors) > maxListedAuthors {
		last := authors[len(authors)-1]
		for _, author := range authors[:truncatedHead] {
			b.WriteString(author)
			b.WriteString(", ")
		}
		b.WriteString(authorEllipsis + " " + last)
		return b.String()
	}

	b.WriteString(authors[0])
	for _, author := range authors[1:] {
		b.WriteString(", " + authorSeparator + " " + author)
	}
	return b.String()
}
