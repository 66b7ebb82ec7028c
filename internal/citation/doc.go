// Package citation turns bibliographic records into citation strings.
//
// Each (style, record kind) pair has one formatter built from a fixed
// template and a table of field transforms:
//
//	c := citation.NewAPABook(book)
//	fmt.Println(c.Formatted())
//	// Иванов И.М., &  Петров С.Н. (2020). ITALICНаука как искусство.ITALIC Просвещение. 10.2196/16504
//
// The literal token ITALIC delimits a span to be set in italics by the
// renderer. Formatters leave it in place.
//
// An Aggregator dispatches a mixed batch of records to the formatters of one
// style and returns them sorted by formatted text:
//
//	agg, _ := citation.NewAggregator(citation.StyleGOST)
//	rows, err := agg.Strings(ctx, records)
package citation
