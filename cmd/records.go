/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nakachan-ing/bibfmt/internal/model"
	"github.com/nakachan-ing/bibfmt/internal/store"
	"github.com/nakachan-ing/bibfmt/internal/util"
	"github.com/spf13/cobra"
)

var recordType string
var recordFields map[string]string
var recordListTypes []string
var recordQuery string
var recordPageSize int

// recordsCmd represents the records command
var recordsCmd = &cobra.Command{
	Use:     "records",
	Short:   "Manage the records file",
	Aliases: []string{"rec"},
}

// recordsFile picks the file named on the command line, falling back to
// the configured one.
func recordsFile(config model.Config, args []string) string {
	if len(args) > 0 {
		return store.ExpandHomeDir(args[0])
	}
	return config.RecordsFile
}

// recordYear is the year shown in listings; internet resources have only
// an access date.
func recordYear(record model.Record) string {
	var year int
	switch r := record.(type) {
	case model.Book:
		year = r.Year
	case model.ArticlesCollection:
		year = r.Year
	case model.Dissertation:
		year = r.Year
	case model.Article:
		year = r.Year
	case model.InternetResource:
		return r.AccessDate
	}
	return strconv.Itoa(year)
}

func recordsTable(entries []store.Entry) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleDouble)
	t.Style().Options.SeparateRows = false

	t.AppendHeader(table.Row{
		text.FgGreen.Sprintf("ID"),
		text.FgGreen.Sprintf("Type"),
		text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
		text.FgGreen.Sprintf("Year"),
	})

	for _, entry := range entries {
		t.AppendRow(table.Row{
			entry.ID,
			entry.Record.Kind(),
			entry.Record.Label(),
			recordYear(entry.Record),
		})
	}
	return t
}

// listRecords prints entries pageSize rows at a time, waiting for Enter
// between pages. A pageSize of -1 prints everything at once.
func listRecords(entries []store.Entry, pageSize int, in io.Reader, out io.Writer) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No matching records found.")
		return
	}

	fmt.Fprintln(out, strings.Repeat("=", 30))
	fmt.Fprintf(out, "Records: %v shown\n", len(entries))
	fmt.Fprintln(out, strings.Repeat("=", 30))

	if pageSize <= 0 {
		pageSize = len(entries)
	}

	reader := bufio.NewReader(in)
	for start := 0; start < len(entries); start += pageSize {
		end := min(start+pageSize, len(entries))

		t := recordsTable(entries[start:end])
		t.SetOutputMirror(out)
		t.Render()

		if end >= len(entries) {
			break
		}

		fmt.Fprint(out, "\nPress Enter for the next page (q to quit): ")
		input, err := reader.ReadString('\n')
		if strings.TrimSpace(input) == "q" || err != nil {
			break
		}
	}
}

var recordsListCmd = &cobra.Command{
	Use:     "list [records-file]",
	Short:   "List records (book, article, dissertation, ...)",
	Aliases: []string{"ls"},
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Fatalf("❌ Error loading config: %v", err)
		}

		kinds, err := util.ParseKinds(recordListTypes)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}

		entries, err := store.LoadRecords(recordsFile(*config, args))
		if err != nil {
			log.Fatalf("❌ Failed to load records: %v", err)
		}

		entries = util.FilterByKind(entries, kinds)
		entries = util.FullTextSearch(entries, recordQuery)
		listRecords(entries, recordPageSize, os.Stdin, os.Stdout)
	},
}

var recordsNewCmd = &cobra.Command{
	Use:   "new [records-file]",
	Short: "Add a new record",
	Example: `  bibfmt records new --type book --set authors="Иванов И.М." \
    --set title="Наука как искусство" --set city=СПб. \
    --set publishing_house=Просвещение --set year=2020 --set pages=999`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := model.ParseKind(recordType)
		if err != nil {
			log.Fatalf("❌ Invalid record type: %s. Must be one of %v", recordType, model.Kinds)
		}

		config, err := store.LoadConfig()
		if err != nil {
			log.Fatalf("❌ Error loading config: %v", err)
		}

		entry, err := store.AppendRecord(recordsFile(*config, args), kind, recordFields)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}

		log.Printf("✅ Added new record: %s [%s] (%s)", entry.Record.Label(), entry.ID, kind)
	},
}

var recordsEditCmd = &cobra.Command{
	Use:   "edit [records-file]",
	Short: "Open the records file in the configured editor",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Fatalf("❌ Error loading config: %v", err)
		}

		path := recordsFile(*config, args)
		if err := util.OpenEditor(path, *config); err != nil {
			log.Fatalf("❌ %v", err)
		}

		if _, err := store.LoadRecords(path); err != nil {
			log.Printf("⚠️ Records file has problems: %v", err)
			return
		}
		log.Printf("✅ Records file is valid: %s", path)
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)
	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsNewCmd)
	recordsCmd.AddCommand(recordsEditCmd)

	recordsListCmd.Flags().StringSliceVarP(&recordListTypes, "type", "t", nil, "Only list records of these types")
	recordsListCmd.Flags().StringVarP(&recordQuery, "query", "q", "", "Only list records whose title contains this text")
	recordsListCmd.Flags().IntVarP(&recordPageSize, "limit", "l", 20, "Rows per page, -1 for all")

	recordsNewCmd.Flags().StringVarP(&recordType, "type", "t", "", "Record type (book, internet_resource, articles_collection, dissertation, article)")
	recordsNewCmd.Flags().StringToStringVar(&recordFields, "set", nil, "Field value as key=value, repeatable")
	recordsNewCmd.MarkFlagRequired("type")
}
