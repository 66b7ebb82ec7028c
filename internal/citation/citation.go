package citation

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/nakachan-ing/bibfmt/internal/model"
	"go.uber.org/zap"
)

// Formatter produces the citation text of one record under one style.
type Formatter interface {
	Formatted() string
	Record() model.Record
	Style() Style
}

// fieldTable maps placeholder names to the value rendered for them.
type fieldTable map[string]func() string

// Citation is the Formatter shared by every (style, kind) pair. The pair
// only decides the template and the field table.
type Citation struct {
	style  Style
	record model.Record
	tmpl   *Template
	fields fieldTable
	logger *zap.Logger

	once sync.Once
	text string
}

type options struct {
	logger      *zap.Logger
	concurrency int
}

// Option configures formatters and aggregators.
type Option func(*options)

// WithLogger attaches a logger. Output never depends on it.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConcurrency bounds how many records an Aggregator formats at once.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop(), concurrency: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newCitation(style Style, record model.Record, tmpl *Template, fields fieldTable, opts []Option) *Citation {
	o := buildOptions(opts)
	return &Citation{
		style:  style,
		record: record,
		tmpl:   tmpl,
		fields: fields,
		logger: o.logger,
	}
}

// Formatted returns the citation text. It is computed on the first call and
// cached; later calls return the same string.
func (c *Citation) Formatted() string {
	c.once.Do(func() {
		c.logger.Info("formatting "+c.record.Kind().String(),
			zap.String("style", c.style.String()),
			zap.String("label", c.record.Label()),
		)

		values := make(map[string]string, len(c.fields))
		for name, value := range c.fields {
			values[name] = value()
		}
		out, err := c.tmpl.Execute(values)
		if err != nil {
			// Templates and field tables are static; a gap is a programming error.
			panic(fmt.Sprintf("citation: %s %s template out of sync: %v", c.style, c.record.Kind(), err))
		}
		c.text = out
	})
	return c.text
}

func (c *Citation) Record() model.Record { return c.record }
func (c *Citation) Style() Style { return c.style }

func (c *Citation) String() string { return c.Formatted() }

func text(s string) func() string {
	return func() string { return s }
}

func number(n int) func() string {
	return func() string { return strconv.Itoa(n) }
}

// optionalNumber renders an absent number as an empty string.
func optionalNumber(n *int) func() string {
	return func() string {
		if n == nil {
			return ""
		}
		return strconv.Itoa(*n)
	}
}

func authors(raw string) func() string {
	return func() string { return FormatAuthors(raw) }
}
