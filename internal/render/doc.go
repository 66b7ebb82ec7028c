// Package render writes a sorted list of citation strings into an output
// document.
//
// Rows carry the ITALIC marker convention of package citation: the text
// between the first and second marker is set in italics, everything else is
// plain. A row without markers is plain text; a row with a single marker is
// rejected.
//
// The document layout follows the citation style: GOST lists are numbered,
// APA lists use a hanging indent.
//
//	doc := render.Document{Title: render.DefaultTitle, Layout: render.LayoutFor(style), Rows: rows}
//	r, _ := render.ForFormat("docx")
//	err := r.Render(f, doc)
package render
