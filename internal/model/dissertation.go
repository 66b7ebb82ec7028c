package model

type Dissertation struct {
	Authors           string `mapstructure:"authors" yaml:"authors" valid:"required"`
	DissertationTitle string `mapstructure:"dissertation_title" yaml:"dissertation_title" valid:"required"`
	Degree            string `mapstructure:"degree" yaml:"degree" valid:"required"`
	ScienceBranch     string `mapstructure:"science_branch" yaml:"science_branch" valid:"required"`
	SpecialtyCode     string `mapstructure:"specialty_code" yaml:"specialty_code" valid:"required"`
	City              string `mapstructure:"city" yaml:"city" valid:"required"`
	Year              int    `mapstructure:"year" yaml:"year"`
	Pages             int    `mapstructure:"pages" yaml:"pages"`
}

func (d Dissertation) Kind() Kind { return KindDissertation }
func (d Dissertation) Label() string { return d.DissertationTitle }
func (d Dissertation) Validate() error {
	return validate(d.Kind(), d, positive("year", d.Year), positive("pages", d.Pages))
}
