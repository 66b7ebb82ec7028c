// Package store loads and saves the bibfmt configuration and records files.
//
// A records file is a YAML (or JSON) list of mappings, or a CSV file with a
// header row. Every row names its kind in a `type` column and may carry an
// `id`; the remaining keys are the snake_case field names of the record:
//
//	- id: r001
//	  type: book
//	  authors: Иванов И.М., Петров С.Н.
//	  title: Наука как искусство
//	  city: СПб.
//	  publishing_house: Просвещение
//	  year: 2020
//	  pages: 999
package store
