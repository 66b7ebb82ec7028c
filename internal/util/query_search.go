package util

import (
	"strings"

	"github.com/nakachan-ing/bibfmt/internal/model"
	"github.com/nakachan-ing/bibfmt/internal/store"
)

// FullTextSearch keeps entries whose label contains query, ignoring case.
func FullTextSearch(entries []store.Entry, query string) []store.Entry {
	if query == "" {
		return entries
	}

	query = strings.ToLower(query)
	var filtered []store.Entry
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Record.Label()), query) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// FilterByKind keeps entries of the given kinds. No kinds keeps everything.
func FilterByKind(entries []store.Entry, kinds []model.Kind) []store.Entry {
	if len(kinds) == 0 {
		return entries
	}

	var filtered []store.Entry
	for _, entry := range entries {
		if HasKind(kinds, entry.Record.Kind()) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func HasKind(kinds []model.Kind, kind model.Kind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ParseKinds resolves record type names given on the command line.
func ParseKinds(names []string) ([]model.Kind, error) {
	kinds := make([]model.Kind, 0, len(names))
	for _, name := range names {
		k, err := model.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
