package model

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported source record shapes.
type Kind int

const (
	KindBook Kind = iota + 1
	KindInternetResource
	KindArticlesCollection
	KindDissertation
	KindArticle
)

// Kinds lists every supported kind in a stable order.
var Kinds = []Kind{
	KindBook,
	KindInternetResource,
	KindArticlesCollection,
	KindDissertation,
	KindArticle,
}

var kindNames = map[Kind]string{
	KindBook:               "book",
	KindInternetResource:   "internet_resource",
	KindArticlesCollection: "articles_collection",
	KindDissertation:       "dissertation",
	KindArticle:            "article",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind resolves a record type name as written in records files.
// Matching is case-insensitive and accepts "-" in place of "_".
func ParseKind(s string) (Kind, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Record is a validated bibliographic source. Implementations are plain
// value types and are never mutated once loaded.
type Record interface {
	Kind() Kind
	// Label is a short human-readable name for logs and error messages.
	Label() string
	Validate() error
}

// New returns a zero record of the given kind, ready to be decoded into.
func New(k Kind) (Record, error) {
	switch k {
	case KindBook:
		return &Book{}, nil
	case KindInternetResource:
		return &InternetResource{}, nil
	case KindArticlesCollection:
		return &ArticlesCollection{}, nil
	case KindDissertation:
		return &Dissertation{}, nil
	case KindArticle:
		return &Article{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
}

// Deref turns a pointer record produced by New back into its value form.
func Deref(r Record) Record {
	switch v := r.(type) {
	case *Book:
		return *v
	case *InternetResource:
		return *v
	case *ArticlesCollection:
		return *v
	case *Dissertation:
		return *v
	case *Article:
		return *v
	default:
		return r
	}
}
