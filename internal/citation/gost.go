package citation

import "github.com/nakachan-ing/bibfmt/internal/model"

// ГОСТ Р 7.0.5-2008 layouts, e.g.
//
//	Иванов И.М., Петров С.Н. Наука как искусство // Образование и наука. 2020. № 10. С. 25-30.
var (
	gostBookTemplate               = MustParseTemplate("{authors} {title}. – {edition}{city}: {publishing_house}, {year}. – {pages} с.")
	gostArticleTemplate            = MustParseTemplate("{authors} {article_title} // {journal_title}. {year}. № {journal_number}. С. {pages}.")
	gostInternetResourceTemplate   = MustParseTemplate("{article} // {website} URL: {link} (дата обращения: {access_date}).")
	gostArticlesCollectionTemplate = MustParseTemplate("{authors} {article_title} // {collection_title}. – {city}: {publishing_house}, {year}. – С. {pages}.")
	gostDissertationTemplate       = MustParseTemplate("{authors} {dissertation_title}: дис. {degree} ... {science_branch}. {specialty_code}. {city}, {year}. С. {pages}.")
)

func NewGOSTBook(b model.Book, opts ...Option) *Citation {
	return newCitation(StyleGOST, b, gostBookTemplate, fieldTable{
		"authors":          text(b.Authors),
		"title":            text(b.Title),
		"edition":          edition(b.Edition),
		"city":             text(b.City),
		"publishing_house": text(b.PublishingHouse),
		"year":             number(b.Year),
		"pages":            number(b.Pages),
	}, opts)
}

func NewGOSTArticle(a model.Article, opts ...Option) *Citation {
	return newCitation(StyleGOST, a, gostArticleTemplate, fieldTable{
		"authors":        text(a.Authors),
		"article_title":  text(a.ArticleTitle),
		"journal_title":  text(a.JournalTitle),
		"year":           number(a.Year),
		"journal_number": optionalNumber(a.JournalNumber),
		"pages":          text(a.Pages),
	}, opts)
}

func NewGOSTInternetResource(r model.InternetResource, opts ...Option) *Citation {
	return newCitation(StyleGOST, r, gostInternetResourceTemplate, fieldTable{
		"article":     text(r.Article),
		"website":     text(r.Website),
		"link":        text(r.Link),
		"access_date": text(r.AccessDate),
	}, opts)
}

func NewGOSTArticlesCollection(c model.ArticlesCollection, opts ...Option) *Citation {
	return newCitation(StyleGOST, c, gostArticlesCollectionTemplate, fieldTable{
		"authors":          text(c.Authors),
		"article_title":    text(c.ArticleTitle),
		"collection_title": text(c.CollectionTitle),
		"city":             text(c.City),
		"publishing_house": text(c.PublishingHouse),
		"year":             number(c.Year),
		"pages":            text(c.Pages),
	}, opts)
}

func NewGOSTDissertation(d model.Dissertation, opts ...Option) *Citation {
	return newCitation(StyleGOST, d, gostDissertationTemplate, fieldTable{
		"authors":            text(d.Authors),
		"dissertation_title": text(d.DissertationTitle),
		"degree":             text(d.Degree),
		"science_branch":     text(d.ScienceBranch),
		"specialty_code":     text(d.SpecialtyCode),
		"city":               text(d.City),
		"year":               number(d.Year),
		"pages":              number(d.Pages),
	}, opts)
}

// edition renders "3-е изд. – " or nothing.
func edition(e string) func() string {
	return func() string {
		if e == "" {
			return ""
		}
		return e + " изд. – "
	}
}
