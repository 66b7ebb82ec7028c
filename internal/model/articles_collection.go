package model

// ArticlesCollection is an article published in a collection of papers.
// Pages is a range such as "25-30" and is never parsed.
type ArticlesCollection struct {
	Authors         string `mapstructure:"authors" yaml:"authors" valid:"required"`
	ArticleTitle    string `mapstructure:"article_title" yaml:"article_title" valid:"required"`
	CollectionTitle string `mapstructure:"collection_title" yaml:"collection_title" valid:"required"`
	City            string `mapstructure:"city" yaml:"city" valid:"required"`
	PublishingHouse string `mapstructure:"publishing_house" yaml:"publishing_house" valid:"required"`
	Year            int    `mapstructure:"year" yaml:"year"`
	Pages           string `mapstructure:"pages" yaml:"pages" valid:"required"`
}

func (c ArticlesCollection) Kind() Kind { return KindArticlesCollection }
func (c ArticlesCollection) Label() string { return c.ArticleTitle }
func (c ArticlesCollection) Validate() error {
	return validate(c.Kind(), c, positive("year", c.Year))
}
