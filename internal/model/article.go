package model

// Article is a journal article. JournalNumber is nil when unknown.
type Article struct {
	Authors       string `mapstructure:"authors" yaml:"authors" valid:"required"`
	ArticleTitle  string `mapstructure:"article_title" yaml:"article_title" valid:"required"`
	JournalTitle  string `mapstructure:"journal_title" yaml:"journal_title,omitempty" valid:"optional"`
	Year          int    `mapstructure:"year" yaml:"year"`
	JournalNumber *int   `mapstructure:"journal_number" yaml:"journal_number,omitempty"`
	Pages         string `mapstructure:"pages" yaml:"pages" valid:"required"`
	DOI           string `mapstructure:"doi" yaml:"doi,omitempty" valid:"optional"`
}

func (a Article) Kind() Kind { return KindArticle }
func (a Article) Label() string { return a.ArticleTitle }
func (a Article) Validate() error {
	var journalNumber string
	if a.JournalNumber != nil && *a.JournalNumber <= 0 {
		journalNumber = "journal_number must be greater than 0"
	}
	return validate(a.Kind(), a, positive("year", a.Year), journalNumber)
}
