package store

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/nakachan-ing/bibfmt/internal/model"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

const (
	typeKey = "type"
	idKey   = "id"
)

var ErrMissingType = errors.New("record has no type")

// Entry is a loaded, validated record with its identifier.
type Entry struct {
	ID     string
	Record model.Record
}

// RowError points at the row that failed to load.
type RowError struct {
	Row int
	ID  string
	Err error
}

func (e *RowError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("row %d (id %s): %v", e.Row, e.ID, e.Err)
	}
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// LoadRecords reads, decodes and validates every row of a records file.
// The first invalid row stops the load.
func LoadRecords(filePath string) ([]Entry, error) {
	rows, err := LoadRows(filePath)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		entry, err := DecodeEntry(row)
		if err != nil {
			return nil, &RowError{Row: i + 1, ID: rowID(row), Err: err}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Records strips the IDs off entries.
func Records(entries []Entry) []model.Record {
	records := make([]model.Record, len(entries))
	for i, e := range entries {
		records[i] = e.Record
	}
	return records
}

// DecodeEntry turns one raw row into a validated record. Rows without an id
// get a random one.
func DecodeEntry(row Row) (Entry, error) {
	rawType, ok := row[typeKey]
	if !ok {
		return Entry{}, ErrMissingType
	}
	kind, err := model.ParseKind(fmt.Sprint(rawType))
	if err != nil {
		return Entry{}, err
	}

	fields := make(map[string]any, len(row))
	for k, v := range row {
		if k == typeKey || k == idKey {
			continue
		}
		fields[k] = normalize(v)
	}

	record, err := decodeRecord(kind, fields)
	if err != nil {
		return Entry{}, err
	}

	id := rowID(row)
	if id == "" {
		id = uuid.NewString()
	}
	return Entry{ID: id, Record: record}, nil
}

func decodeRecord(kind model.Kind, fields map[string]any) (model.Record, error) {
	target, err := model.New(kind)
	if err != nil {
		return nil, err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(fields); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", kind, err)
	}

	record := model.Deref(target)
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

// normalize trims strings and puts them in Unicode NFC so that spreadsheets
// exported with decomposed Cyrillic sort like typed text.
func normalize(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return norm.NFC.String(strings.TrimSpace(s))
}

func rowID(row Row) string {
	v, ok := row[idKey]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// AppendRecord validates a new record built from string fields and appends
// it to a YAML records file, creating the file if needed.
func AppendRecord(filePath string, kind model.Kind, fields map[string]string) (Entry, error) {
	raw := make(map[string]any, len(fields))
	for k, v := range fields {
		raw[strings.ToLower(k)] = normalize(v)
	}
	record, err := decodeRecord(kind, raw)
	if err != nil {
		return Entry{}, err
	}

	rows, err := LoadRows(filePath)
	if err != nil {
		return Entry{}, err
	}

	row, err := toRow(record)
	if err != nil {
		return Entry{}, err
	}
	id := GetNextRecordID(rows)
	row[idKey] = id
	row[typeKey] = kind.String()

	if err := SaveRows(append(rows, row), filePath); err != nil {
		return Entry{}, err
	}
	return Entry{ID: id, Record: record}, nil
}

// toRow converts a typed record into its YAML mapping, dropping empty
// optional fields.
func toRow(record model.Record) (Row, error) {
	data, err := yaml.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to convert record to YAML: %w", err)
	}
	row := Row{}
	if err := yaml.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("❌ Failed to convert record to YAML: %w", err)
	}
	return row, nil
}

var recordIDPattern = regexp.MustCompile(`^r(\d+)$`)

// GetNextRecordID returns r001, r002, ... one past the highest sequential
// id in rows. Other ids are ignored.
func GetNextRecordID(rows []Row) string {
	maxSeqID := 0
	for _, row := range rows {
		match := recordIDPattern.FindStringSubmatch(rowID(row))
		if match != nil {
			seq, err := strconv.Atoi(match[1])
			if err == nil && seq > maxSeqID {
				maxSeqID = seq
			}
		}
	}

	newSeqID := maxSeqID + 1

	// Zero-pad up to 999
	if newSeqID < 1000 {
		return fmt.Sprintf("r%03d", newSeqID)
	}
	return fmt.Sprintf("r%d", newSeqID)
}
