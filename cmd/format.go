/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/nakachan-ing/bibfmt/internal/citation"
	"github.com/nakachan-ing/bibfmt/internal/model"
	"github.com/nakachan-ing/bibfmt/internal/render"
	"github.com/nakachan-ing/bibfmt/internal/store"
	"github.com/nakachan-ing/bibfmt/internal/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var formatStyle, formatOutputFormat, formatOutputPath, formatTitle string
var formatTypes []string
var formatCopy bool

// formatJob is everything one run of `format` needs, with flags already
// merged over the config file.
type formatJob struct {
	RecordsFile string
	Style       string
	Format      string
	Output      string
	Title       string
	Types       []string
	Copy        bool
	Concurrency int
}

// formatResult reports where the reference list went.
type formatResult struct {
	Path  string
	Count int
}

func newFormatJob(config model.Config, args []string) formatJob {
	job := formatJob{
		RecordsFile: config.RecordsFile,
		Style:       config.Style,
		Format:      config.Output.Format,
		Output:      config.Output.Path,
		Title:       config.Output.Title,
		Types:       formatTypes,
		Copy:        formatCopy,
		Concurrency: config.Concurrency,
	}
	if len(args) > 0 {
		job.RecordsFile = args[0]
	}
	if formatStyle != "" {
		job.Style = formatStyle
	}
	if formatOutputFormat != "" {
		job.Format = formatOutputFormat
	}
	if formatOutputPath != "" {
		job.Output = formatOutputPath
	}
	if formatTitle != "" {
		job.Title = formatTitle
	}
	return job
}

// outputPath keeps the file name but swaps in the renderer's extension
// when the configured one does not match the chosen format.
func outputPath(path string, renderer render.Renderer) string {
	ext := renderer.Extension()
	if path == "-" || ext == "" {
		return "-"
	}
	if path == "" {
		return "references" + ext
	}
	path = store.ExpandHomeDir(path)
	if !strings.EqualFold(filepath.Ext(path), ext) {
		return strings.TrimSuffix(path, filepath.Ext(path)) + ext
	}
	return path
}

func runFormat(ctx context.Context, job formatJob, stdout io.Writer, logger *zap.Logger) (formatResult, error) {
	style, err := citation.ParseStyle(job.Style)
	if err != nil {
		return formatResult{}, err
	}

	renderer, err := render.ForFormat(job.Format)
	if err != nil {
		return formatResult{}, err
	}

	kinds, err := util.ParseKinds(job.Types)
	if err != nil {
		return formatResult{}, err
	}

	entries, err := store.LoadRecords(store.ExpandHomeDir(job.RecordsFile))
	if err != nil {
		return formatResult{}, fmt.Errorf("failed to load records: %w", err)
	}
	entries = util.FilterByKind(entries, kinds)
	logger.Debug("records loaded",
		zap.String("file", job.RecordsFile),
		zap.Int("count", len(entries)),
	)

	aggregator, err := citation.NewAggregator(style,
		citation.WithLogger(logger),
		citation.WithConcurrency(job.Concurrency),
	)
	if err != nil {
		return formatResult{}, err
	}

	rows, err := aggregator.Strings(ctx, store.Records(entries))
	if err != nil {
		return formatResult{}, err
	}

	doc := render.Document{
		Title:  job.Title,
		Layout: render.LayoutFor(style),
		Rows:   rows,
	}

	path := outputPath(job.Output, renderer)
	if path == "-" {
		err = renderer.Render(stdout, doc)
	} else {
		err = writeDocument(path, renderer, doc)
	}
	if err != nil {
		return formatResult{}, err
	}

	if job.Copy {
		if err := util.CopyRows(rows); err != nil {
			return formatResult{}, err
		}
	}

	return formatResult{Path: path, Count: len(rows)}, nil
}

// writeDocument renders into a temp file next to path and renames it, so a
// failed render never leaves a truncated document behind.
func writeDocument(path string, renderer render.Renderer, doc render.Document) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".bibfmt-*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := renderer.Render(tmp, doc); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// formatCmd represents the format command
var formatCmd = &cobra.Command{
	Use:   "format [records-file]",
	Short: "Format records into a reference list",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Fatalf("❌ Error loading config: %v", err)
		}

		result, err := runFormat(cmd.Context(), newFormatJob(*config, args), os.Stdout, logger)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}

		if result.Path != "-" {
			log.Printf("✅ %d references written to %s", result.Count, result.Path)
		}
		if formatCopy {
			log.Printf("📋 Copied %d references to clipboard", result.Count)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.Flags().StringVarP(&formatStyle, "style", "s", "", "Citation style (apa, gost)")
	formatCmd.Flags().StringVarP(&formatOutputFormat, "format", "f", "", "Output format (docx, markdown, text, term)")
	formatCmd.Flags().StringVarP(&formatOutputPath, "output", "o", "", "Output file, - for stdout")
	formatCmd.Flags().StringVar(&formatTitle, "title", "", "Heading of the reference list")
	formatCmd.Flags().StringSliceVarP(&formatTypes, "type", "t", nil, "Only format records of these types")
	formatCmd.Flags().BoolVarP(&formatCopy, "copy", "c", false, "Copy the plain-text list to the clipboard")
}
