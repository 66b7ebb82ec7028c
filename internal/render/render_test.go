package render

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/nakachan-ing/bibfmt/internal/citation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	apaBookRow     = "Иванов И.М., &  Петров С.Н. (2020). ITALICНаука как искусство.ITALIC Просвещение. 10.2196/16504"
	apaInternetRow = "Ведомости (01.01.2021) ITALICНаука как искусство ITALIC https://www.vedomosti.ru"
	gostBookRow    = "Иванов И.М., Петров С.Н. Наука как искусство. – 3-е изд. – СПб.: Просвещение, 2020. – 999 с."
)

func TestSplitItalic(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want []Segment
	}{
		{
			name: "no marker",
			row:  gostBookRow,
			want: []Segment{{Text: gostBookRow}},
		},
		{
			name: "one span",
			row:  apaInternetRow,
			want: []Segment{
				{Text: "Ведомости (01.01.2021) "},
				{Text: "Наука как искусство ", Italic: true},
				{Text: " https://www.vedomosti.ru"},
			},
		},
		{
			name: "span at end",
			row:  "a ITALICbITALIC",
			want: []Segment{{Text: "a "}, {Text: "b", Italic: true}, {Text: ""}},
		},
		{
			name: "text after second marker stays plain",
			row:  "aITALICbITALICcITALICd",
			want: []Segment{{Text: "a"}, {Text: "b", Italic: true}, {Text: "cITALICd"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitItalic(tt.row)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitItalic_Unbalanced(t *testing.T) {
	_, err := SplitItalic("only ITALIC one")
	assert.ErrorIs(t, err, ErrUnbalancedMarker)
}

func TestPlainText(t *testing.T) {
	got, err := PlainText(apaBookRow)
	require.NoError(t, err)
	assert.Equal(t, "Иванов И.М., &  Петров С.Н. (2020). Наука как искусство. Просвещение. 10.2196/16504", got)
}

func TestLayoutFor(t *testing.T) {
	assert.Equal(t, LayoutNumbered, LayoutFor(citation.StyleGOST))
	assert.Equal(t, LayoutHangingIndent, LayoutFor(citation.StyleAPA))
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		name string
		ext  string
	}{
		{"docx", ".docx"},
		{"Word", ".docx"},
		{"md", ".md"},
		{"markdown", ".md"},
		{"txt", ".txt"},
		{"term", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ForFormat(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.ext, r.Extension())
		})
	}

	_, err := ForFormat("pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func readZipEntry(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(body)
	}
	t.Fatalf("%s not found in package", name)
	return ""
}

func TestDOCXRenderer_APA(t *testing.T) {
	var buf bytes.Buffer
	err := DOCXRenderer{}.Render(&buf, Document{
		Layout: LayoutHangingIndent,
		Rows:   []string{apaInternetRow, apaBookRow},
	})
	require.NoError(t, err)

	data := buf.Bytes()
	for _, part := range []string{"[Content_Types].xml", "_rels/.rels", "word/styles.xml", "word/numbering.xml"} {
		assert.NotEmpty(t, readZipEntry(t, data, part), part)
	}

	body := readZipEntry(t, data, "word/document.xml")
	assert.Contains(t, body, DefaultTitle)
	assert.Contains(t, body, `<w:ind w:left="850" w:hanging="850"/>`)
	assert.NotContains(t, body, `<w:numId w:val="1"/></w:numPr></w:pPr><w:r>`)
	assert.Contains(t, body, `<w:r><w:rPr><w:i/></w:rPr><w:t xml:space="preserve">Наука как искусство </w:t></w:r>`)
	assert.Contains(t, body, "Иванов И.М., &amp;  Петров С.Н.")
	assert.NotContains(t, body, citation.ItalicMarker)
	assert.Less(t, strings.Index(body, "Ведомости"), strings.Index(body, "Иванов"))

	styles := readZipEntry(t, data, "word/styles.xml")
	assert.Contains(t, styles, "Times New Roman")
	assert.Contains(t, styles, `<w:sz w:val="24"/>`)
	assert.Contains(t, styles, `<w:spacing w:line="360" w:lineRule="auto"/>`)
}

func TestDOCXRenderer_GOSTNumbered(t *testing.T) {
	var buf bytes.Buffer
	err := DOCXRenderer{}.Render(&buf, Document{
		Title:  "Литература",
		Layout: LayoutNumbered,
		Rows:   []string{gostBookRow},
	})
	require.NoError(t, err)

	body := readZipEntry(t, buf.Bytes(), "word/document.xml")
	assert.Contains(t, body, "Литература")
	assert.Contains(t, body, `<w:pStyle w:val="ListNumber"/>`)
	assert.Contains(t, body, gostBookRow)
	assert.NotContains(t, body, "<w:i/>")
}

func TestRenderers_RejectUnbalancedRowsBeforeWriting(t *testing.T) {
	doc := Document{Rows: []string{gostBookRow, "broken ITALIC row"}}
	for _, r := range []Renderer{DOCXRenderer{}, MarkdownRenderer{}, TextRenderer{}, NewTerminalRenderer()} {
		var buf bytes.Buffer
		err := r.Render(&buf, doc)
		assert.ErrorIs(t, err, ErrUnbalancedMarker)
		assert.Contains(t, err.Error(), "row 2")
		assert.Zero(t, buf.Len())
	}
}

func TestMarkdownRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := MarkdownRenderer{}.Render(&buf, Document{
		Layout: LayoutHangingIndent,
		Rows:   []string{apaInternetRow, apaBookRow},
	})
	require.NoError(t, err)

	want := "# " + DefaultTitle + "\n\n" +
		"Ведомости (01.01.2021) *Наука как искусство*  https://www.vedomosti.ru\n\n" +
		"Иванов И.М., &  Петров С.Н. (2020). *Наука как искусство.* Просвещение. 10.2196/16504\n\n"
	assert.Equal(t, want, buf.String())
}

func TestMarkdownRenderer_NumberedAndEscaped(t *testing.T) {
	var buf bytes.Buffer
	err := MarkdownRenderer{}.Render(&buf, Document{
		Title:  "Refs",
		Layout: LayoutNumbered,
		Rows:   []string{"a_b *c*", "d"},
	})
	require.NoError(t, err)
	assert.Equal(t, "# Refs\n\n1. a\\_b \\*c\\*\n2. d\n", buf.String())
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := TextRenderer{}.Render(&buf, Document{
		Title:  "Refs",
		Layout: LayoutNumbered,
		Rows:   []string{gostBookRow, apaInternetRow},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"Refs\n\n1. "+gostBookRow+"\n2. Ведомости (01.01.2021) Наука как искусство  https://www.vedomosti.ru\n",
		buf.String())
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := NewTerminalRenderer().Render(&buf, Document{
		Layout: LayoutNumbered,
		Rows:   []string{apaInternetRow},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, DefaultTitle)
	assert.Contains(t, out, "1.")
	assert.Contains(t, out, "Наука как искусство")
	assert.NotContains(t, out, citation.ItalicMarker)
}
