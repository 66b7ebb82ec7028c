package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Row is one raw record as read from a records file, keyed by snake_case
// field name.
type Row map[string]any

var ErrUnsupportedFormat = errors.New("unsupported records file format")

func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}

// LoadRows reads every row of a records file. CSV files are picked by
// extension; anything else is parsed as YAML, which also covers JSON.
// A missing file yields no rows.
func LoadRows(filePath string) ([]Row, error) {
	f, err := os.Open(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return []Row{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("❌ Failed to open records file: %w", err)
	}
	defer f.Close()

	if isCSV(filePath) {
		return readCSVRows(f)
	}
	return readYAMLRows(f)
}

func readYAMLRows(r io.Reader) ([]Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to read records file: %w", err)
	}

	rows := []Row{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return rows, nil
	}
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("❌ Failed to parse records: %w", err)
	}
	return rows, nil
}

// readCSVRows expects a header row. Empty cells are left out of the row so
// optional fields stay absent.
func readCSVRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []Row{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("❌ Failed to read CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	rows := []Row{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("❌ Failed to read CSV row %d: %w", len(rows)+1, err)
		}
		row := Row{}
		for i, cell := range record {
			if cell == "" {
				continue
			}
			row[header[i]] = cell
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// SaveRows writes rows back as YAML.
func SaveRows(rows []Row, filePath string) error {
	if isCSV(filePath) {
		return fmt.Errorf("%w: cannot write %s", ErrUnsupportedFormat, filePath)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("❌ Failed to create records directory: %w", err)
	}

	data, err := yaml.Marshal(rows)
	if err != nil {
		return fmt.Errorf("❌ Failed to convert to YAML: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("❌ Failed to write records file: %w", err)
	}
	return nil
}
