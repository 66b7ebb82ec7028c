package model

// Book is a monograph, e.g.
//
//	Book{
//	    Authors:         "Иванов И.М., Петров С.Н.",
//	    Title:           "Наука как искусство",
//	    Edition:         "3-е",
//	    City:            "СПб.",
//	    PublishingHouse: "Просвещение",
//	    Year:            2020,
//	    Pages:           999,
//	    DOI:             "10.2196/16504",
//	}
type Book struct {
	Authors         string `mapstructure:"authors" yaml:"authors" valid:"required"`
	Title           string `mapstructure:"title" yaml:"title" valid:"required"`
	Edition         string `mapstructure:"edition" yaml:"edition,omitempty" valid:"optional"`
	City            string `mapstructure:"city" yaml:"city" valid:"required"`
	PublishingHouse string `mapstructure:"publishing_house" yaml:"publishing_house" valid:"required"`
	Year            int    `mapstructure:"year" yaml:"year"`
	Pages           int    `mapstructure:"pages" yaml:"pages"`
	DOI             string `mapstructure:"doi" yaml:"doi,omitempty" valid:"optional"`
}

func (b Book) Kind() Kind { return KindBook }
func (b Book) Label() string { return b.Title }
func (b Book) Validate() error {
	return validate(b.Kind(), b, positive("year", b.Year), positive("pages", b.Pages))
}
