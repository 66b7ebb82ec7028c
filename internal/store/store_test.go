package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nakachan-ing/bibfmt/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordsYAML = `- id: r001
  type: book
  authors: Иванов И.М., Петров С.Н.
  title: Наука как искусство
  edition: 3-е
  city: СПб.
  publishing_house: Просвещение
  year: 2020
  pages: 999
  doi: 10.2196/16504
- type: internet_resource
  article: Наука как искусство
  website: Ведомости
  link: https://www.vedomosti.ru
  access_date: 01.01.2021
- type: articles_collection
  authors: Иванов И.М., Петров С.Н.
  article_title: Наука как искусство
  collection_title: Сборник научных трудов
  city: СПб.
  publishing_house: АСТ
  year: 2020
  pages: 25-30
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRecords_YAML(t *testing.T) {
	entries, err := LoadRecords(writeFile(t, "records.yaml", recordsYAML))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "r001", entries[0].ID)
	assert.Equal(t, model.Book{
		Authors:         "Иванов И.М., Петров С.Н.",
		Title:           "Наука как искусство",
		Edition:         "3-е",
		City:            "СПб.",
		PublishingHouse: "Просвещение",
		Year:            2020,
		Pages:           999,
		DOI:             "10.2196/16504",
	}, entries[0].Record)

	assert.NotEmpty(t, entries[1].ID, "rows without id get one")
	assert.Equal(t, model.KindInternetResource, entries[1].Record.Kind())

	collection, ok := entries[2].Record.(model.ArticlesCollection)
	require.True(t, ok)
	assert.Equal(t, "25-30", collection.Pages)

	assert.Len(t, Records(entries), 3)
}

func TestLoadRecords_JSON(t *testing.T) {
	path := writeFile(t, "records.json", `[{"type": "article", "authors": "Иванов И.М.", "article_title": "Наука", "year": 2020, "journal_number": 10, "pages": "25-30"}]`)

	entries, err := LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.Article{
		Authors: "Иванов И.М.", ArticleTitle: "Наука", Year: 2020, JournalNumber: intPtr(10), Pages: "25-30",
	}, entries[0].Record)
}

func TestLoadRecords_ZeroJournalNumberRejected(t *testing.T) {
	path := writeFile(t, "records.yaml", "- type: article\n  authors: Иванов И.М.\n  article_title: Наука\n  year: 2020\n  journal_number: 0\n  pages: 25-30\n")

	_, err := LoadRecords(path)

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"journal_number must be greater than 0"}, verr.Problems)
}

func TestLoadRecords_AbsentJournalNumber(t *testing.T) {
	path := writeFile(t, "records.yaml", "- type: article\n  authors: Иванов И.М.\n  article_title: Наука\n  year: 2020\n  pages: 25-30\n")

	entries, err := LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Record.(model.Article).JournalNumber)
}

func TestLoadRecords_CSV(t *testing.T) {
	path := writeFile(t, "records.csv",
		"type,authors,dissertation_title,degree,science_branch,specialty_code,city,year,pages\n"+
			"dissertation,Иванов И.М.,Наука как искусство,д-р.,экон.,01.01.01,СПб.,2020,199\n")

	entries, err := LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.Dissertation{
		Authors:           "Иванов И.М.",
		DissertationTitle: "Наука как искусство",
		Degree:            "д-р.",
		ScienceBranch:     "экон.",
		SpecialtyCode:     "01.01.01",
		City:              "СПб.",
		Year:              2020,
		Pages:             199,
	}, entries[0].Record)
}

func TestLoadRecords_CSVEmptyCellsAreAbsent(t *testing.T) {
	path := writeFile(t, "records.csv",
		"type,authors,title,edition,city,publishing_house,year,pages,doi\n"+
			"book,Иванов И.М.,Наука,,СПб.,Просвещение,2020,999,\n")

	entries, err := LoadRecords(path)
	require.NoError(t, err)
	book := entries[0].Record.(model.Book)
	assert.Empty(t, book.Edition)
	assert.Empty(t, book.DOI)
}

func TestLoadRecords_MissingFile(t *testing.T) {
	entries, err := LoadRecords(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadRecords_InvalidRowIsIdentified(t *testing.T) {
	path := writeFile(t, "records.yaml", `- type: book
  authors: A
  title: T
  city: C
  publishing_house: P
  year: 2020
  pages: 10
- id: bad
  type: book
  authors: A
  title: T
  city: C
  publishing_house: P
  year: 0
  pages: 10
`)

	_, err := LoadRecords(path)
	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 2, rowErr.Row)
	assert.Equal(t, "bad", rowErr.ID)

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"year must be greater than 0"}, verr.Problems)
}

func TestDecodeEntry_Errors(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want error
	}{
		{"missing type", Row{"title": "T"}, ErrMissingType},
		{"unknown type", Row{"type": "podcast"}, model.ErrUnknownKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEntry(tt.row)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeEntry_UnknownFieldRejected(t *testing.T) {
	_, err := DecodeEntry(Row{
		"type": "internet_resource", "article": "a", "website": "w",
		"link": "l", "access_date": "d", "isbn": "123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "isbn")
}

func TestDecodeEntry_NormalizesText(t *testing.T) {
	decomposed := "Бори\u0306сов Б.Б."
	entry, err := DecodeEntry(Row{
		"type": "internet_resource", "article": "  " + decomposed + "  ", "website": "w",
		"link": "l", "access_date": "d",
	})
	require.NoError(t, err)
	assert.Equal(t, "Бор\u0439сов Б.Б.", entry.Record.(model.InternetResource).Article)
}

func TestAppendRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "records.yaml")

	entry, err := AppendRecord(path, model.KindBook, map[string]string{
		"authors":          "Иванов И.М.",
		"title":            "Наука как искусство",
		"city":             "СПб.",
		"publishing_house": "Просвещение",
		"year":             "2020",
		"pages":            "999",
	})
	require.NoError(t, err)
	assert.Equal(t, "r001", entry.ID)

	entry, err = AppendRecord(path, model.KindInternetResource, map[string]string{
		"article": "a", "website": "w", "link": "l", "access_date": "d",
	})
	require.NoError(t, err)
	assert.Equal(t, "r002", entry.ID)

	entries, err := LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 2020, entries[0].Record.(model.Book).Year)
	assert.Equal(t, "r002", entries[1].ID)
}

func TestAppendRecord_InvalidNotWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yaml")

	_, err := AppendRecord(path, model.KindBook, map[string]string{"title": "T"})
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestAppendRecord_CSVUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.csv")
	_, err := AppendRecord(path, model.KindInternetResource, map[string]string{
		"article": "a", "website": "w", "link": "l", "access_date": "d",
	})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestGetNextRecordID(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
		want string
	}{
		{"empty", nil, "r001"},
		{"sequential", []Row{{"id": "r001"}, {"id": "r007"}}, "r008"},
		{"ignores foreign ids", []Row{{"id": "abc"}, {"id": 5}}, "r001"},
		{"past 999", []Row{{"id": "r999"}}, "r1000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetNextRecordID(tt.rows))
		})
	}
}

func TestConfig_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("BIBFMT_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "gost", cfg.Style)
	assert.Equal(t, "docx", cfg.Output.Format)
}

func TestConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	t.Setenv("BIBFMT_CONFIG", path)

	cfg := model.DefaultConfig()
	cfg.Style = "apa"
	cfg.Output.Format = "markdown"
	cfg.RecordsFile = "/data/records.yaml"
	require.NoError(t, SaveConfig(cfg))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "apa", loaded.Style)
	assert.Equal(t, "markdown", loaded.Output.Format)
	assert.Equal(t, "/data/records.yaml", loaded.RecordsFile)
	assert.Equal(t, cfg.Output.Title, loaded.Output.Title)
}

func TestConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", "style: apa\n")
	t.Setenv("BIBFMT_CONFIG", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "apa", cfg.Style)
	assert.Equal(t, model.DefaultConfig().Concurrency, cfg.Concurrency)
}

func TestExpandHomeDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "refs.yaml"), ExpandHomeDir("~/refs.yaml"))
	assert.Equal(t, "/abs/refs.yaml", ExpandHomeDir("/abs/refs.yaml"))
}

func intPtr(n int) *int { return &n }
