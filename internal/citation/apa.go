package citation

import "github.com/nakachan-ing/bibfmt/internal/model"

// APA 7th edition layouts.
var (
	apaBookTemplate               = MustParseTemplate("{authors} ({year}). ITALIC{title}.ITALIC {publishing_house}. {doi}")
	apaArticleTemplate            = MustParseTemplate("{authors} ({year}). {article_title}. ITALIC{journal_title},ITALIC {journal_number}, {pages}. {doi}")
	apaInternetResourceTemplate   = MustParseTemplate("{website} ({access_date}) ITALIC{article} ITALIC {link}")
	apaArticlesCollectionTemplate = MustParseTemplate("{authors} ({year}) {article_title}, ITALIC{collection_title} ITALIC {city}: {publishing_house}, {pages} p.")
	apaDissertationTemplate       = MustParseTemplate("{authors} ({year}) {dissertation_title}, дис. [{degree} {science_branch} {specialty_code}] {city}, {pages} p.")
)

func NewAPABook(b model.Book, opts ...Option) *Citation {
	return newCitation(StyleAPA, b, apaBookTemplate, fieldTable{
		"authors":          authors(b.Authors),
		"title":            text(b.Title),
		"publishing_house": text(b.PublishingHouse),
		"year":             number(b.Year),
		"doi":              text(b.DOI),
	}, opts)
}

func NewAPAArticle(a model.Article, opts ...Option) *Citation {
	return newCitation(StyleAPA, a, apaArticleTemplate, fieldTable{
		"authors":        authors(a.Authors),
		"article_title":  text(a.ArticleTitle),
		"journal_title":  text(a.JournalTitle),
		"year":           number(a.Year),
		"journal_number": optionalNumber(a.JournalNumber),
		"pages":          text(a.Pages),
		"doi":            text(a.DOI),
	}, opts)
}

func NewAPAInternetResource(r model.InternetResource, opts ...Option) *Citation {
	return newCitation(StyleAPA, r, apaInternetResourceTemplate, fieldTable{
		"article":     text(r.Article),
		"website":     text(r.Website),
		"link":        text(r.Link),
		"access_date": text(r.AccessDate),
	}, opts)
}

// NewAPAArticlesCollection keeps the author string as written; only books,
// journal articles and dissertations go through FormatAuthors.
func NewAPAArticlesCollection(c model.ArticlesCollection, opts ...Option) *Citation {
	return newCitation(StyleAPA, c, apaArticlesCollectionTemplate, fieldTable{
		"authors":          text(c.Authors),
		"article_title":    text(c.ArticleTitle),
		"collection_title": text(c.CollectionTitle),
		"city":             text(c.City),
		"publishing_house": text(c.PublishingHouse),
		"year":             number(c.Year),
		"pages":            text(c.Pages),
	}, opts)
}

func NewAPADissertation(d model.Dissertation, opts ...Option) *Citation {
	return newCitation(StyleAPA, d, apaDissertationTemplate, fieldTable{
		"authors":            authors(d.Authors),
		"dissertation_title": text(d.DissertationTitle),
		"degree":             text(d.Degree),
		"science_branch":     text(d.ScienceBranch),
		"specialty_code":     text(d.SpecialtyCode),
		"city":               text(d.City),
		"year":               number(d.Year),
		"pages":              number(d.Pages),
	}, opts)
}
