package citation

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/nakachan-ing/bibfmt/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoFormatter = errors.New("no formatter for record")
)

// Constructor binds a record to the formatter of one (style, kind) pair.
type Constructor func(record model.Record, opts ...Option) (*Citation, error)

// registry holds one constructor per kind for every style.
var registry = map[Style]map[model.Kind]Constructor{
	StyleAPA: {
		model.KindBook:               bind(NewAPABook),
		model.KindInternetResource:   bind(NewAPAInternetResource),
		model.KindArticlesCollection: bind(NewAPAArticlesCollection),
		model.KindDissertation:       bind(NewAPADissertation),
		model.KindArticle:            bind(NewAPAArticle),
	},
	StyleGOST: {
		model.KindBook:               bind(NewGOSTBook),
		model.KindInternetResource:   bind(NewGOSTInternetResource),
		model.KindArticlesCollection: bind(NewGOSTArticlesCollection),
		model.KindDissertation:       bind(NewGOSTDissertation),
		model.KindArticle:            bind(NewGOSTArticle),
	},
}

// bind adapts a typed constructor to the registry. Records may arrive as
// values or as pointers.
func bind[T model.Record](newFn func(T, ...Option) *Citation) Constructor {
	return func(record model.Record, opts ...Option) (*Citation, error) {
		switch r := any(record).(type) {
		case T:
			return newFn(r, opts...), nil
		case *T:
			if r != nil {
				return newFn(*r, opts...), nil
			}
		}
		var zero T
		return nil, fmt.Errorf("%w: want %T, got %T", ErrNoFormatter, zero, record)
	}
}

// DispatchError reports a record the active style cannot format.
type DispatchError struct {
	Index int
	Kind  model.Kind
	Label string
	Style Style
	Err   error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("record #%d (%s %q): %s: %v", e.Index, e.Kind, e.Label, e.Style, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// Aggregator formats a batch of records under one style.
type Aggregator struct {
	style    Style
	registry map[model.Kind]Constructor
	opts     []Option
	logger   *zap.Logger
	limit    int
}

func NewAggregator(style Style, opts ...Option) (*Aggregator, error) {
	table, ok := registry[style]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	o := buildOptions(opts)
	return &Aggregator{
		style:    style,
		registry: table,
		opts:     opts,
		logger:   o.logger,
		limit:    o.concurrency,
	}, nil
}

func (a *Aggregator) Style() Style { return a.style }

// Format binds every record to its formatter and returns the formatters
// sorted by formatted text. Dispatch happens before any formatting, so a
// record without a formatter aborts the whole batch. records is not modified.
func (a *Aggregator) Format(ctx context.Context, records []model.Record) ([]Formatter, error) {
	formatters := make([]Formatter, len(records))
	for i, record := range records {
		f, err := a.dispatch(i, record)
		if err != nil {
			return nil, err
		}
		formatters[i] = f
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.limit)
	for _, f := range formatters {
		f := f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f.Formatted()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.logger.Debug("formatted records",
		zap.String("style", a.style.String()),
		zap.Int("count", len(formatters)),
	)
	return Sort(formatters), nil
}

// Strings is Format reduced to the sorted citation texts.
func (a *Aggregator) Strings(ctx context.Context, records []model.Record) ([]string, error) {
	formatters, err := a.Format(ctx, records)
	if err != nil {
		return nil, err
	}
	rows := make([]string, len(formatters))
	for i, f := range formatters {
		rows[i] = f.Formatted()
	}
	return rows, nil
}

func (a *Aggregator) dispatch(i int, record model.Record) (Formatter, error) {
	if record == nil {
		return nil, &DispatchError{Index: i, Style: a.style, Err: ErrNoFormatter}
	}
	newFn, ok := a.registry[record.Kind()]
	if !ok {
		return nil, &DispatchError{
			Index: i,
			Kind:  record.Kind(),
			Label: record.Label(),
			Style: a.style,
			Err:   ErrNoFormatter,
		}
	}
	c, err := newFn(record, a.opts...)
	if err != nil {
		return nil, &DispatchError{
			Index: i,
			Kind:  record.Kind(),
			Label: record.Label(),
			Style: a.style,
			Err:   err,
		}
	}
	return c, nil
}

// Sort returns a new slice ordered by formatted text. Comparison is
// byte-wise and ties keep their input order.
func Sort(formatters []Formatter) []Formatter {
	sorted := slices.Clone(formatters)
	slices.SortStableFunc(sorted, func(a, b Formatter) int {
		return strings.Compare(a.Formatted(), b.Formatted())
	})
	return sorted
}
