// Package model defines the bibliographic records bibfmt formats and the
// user configuration.
//
// There are five record kinds: Book, InternetResource, ArticlesCollection,
// Dissertation and Article. Each implements Record and is validated once,
// right after it is loaded:
//
//	book := model.Book{Authors: "Иванов И.М.", Title: "Наука как искусство", ...}
//	if err := book.Validate(); err != nil {
//	    var verr *model.ValidationError
//	    errors.As(err, &verr) // verr.Problems lists every issue
//	}
//
// Optional string fields use "" for absent values; Article.JournalNumber
// uses nil, so an explicit 0 is still rejected.
package model
