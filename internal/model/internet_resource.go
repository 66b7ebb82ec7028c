package model

// InternetResource is a web page. AccessDate is kept as free-form text.
type InternetResource struct {
	Article    string `mapstructure:"article" yaml:"article" valid:"required"`
	Website    string `mapstructure:"website" yaml:"website" valid:"required"`
	Link       string `mapstructure:"link" yaml:"link" valid:"required"`
	AccessDate string `mapstructure:"access_date" yaml:"access_date" valid:"required"`
}

func (r InternetResource) Kind() Kind { return KindInternetResource }
func (r InternetResource) Label() string { return r.Article }
func (r InternetResource) Validate() error {
	return validate(r.Kind(), r)
}
