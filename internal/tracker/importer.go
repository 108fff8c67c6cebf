package tracker

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

// CSV header names understood by ImportCSV.
const (
	HeaderAssignmentTitle = "assignment_title"
	HeaderDueDate         = "due_date"
	HeaderNotes           = "notes"
)

// ImportRecord is one assignment to import.
type ImportRecord struct {
	Title   string
	DueDate string
	Notes   string
}

// Import adds records to tab. Each record is validated on its own; invalid
// records are skipped and a failed write is logged without stopping the
// batch. It returns how many assignments were created.
func (m *Manager) Import(ctx context.Context, tab string, records []ImportRecord) (int, error) {
	exists, err := m.HasTab(ctx, tab)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("importing into %q: %w", tab, ErrUnknownTab)
	}

	imported := 0
	for i, r := range records {
		in := Input{
			Tab:     tab,
			Title:   strings.TrimSpace(r.Title),
			DueDate: strings.TrimSpace(r.DueDate),
			Notes:   strings.TrimSpace(r.Notes),
		}
		if validateInput(in) != nil {
			continue
		}
		if _, err := m.store.AddAssignment(ctx, in.Tab, in.Title, in.DueDate, in.Notes); err != nil {
			log.Printf("tracker: importing record %d into %q: %v", i+1, tab, err)
			continue
		}
		imported++
	}
	return imported, nil
}

// ImportCSV reads a CSV document with a header row and imports its rows
// into tab. The assignment_title and due_date columns are required; notes
// is optional. Rows that cannot be parsed are skipped.
func (m *Manager) ImportCSV(ctx context.Context, tab string, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return 0, &MissingColumnsError{Missing: []string{HeaderAssignmentTitle, HeaderDueDate}}
	}
	if err != nil {
		return 0, fmt.Errorf("reading csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range []string{HeaderAssignmentTitle, HeaderDueDate} {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return 0, &MissingColumnsError{Missing: missing}
	}

	field := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []ImportRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			log.Printf("tracker: skipping csv line %d: %v", parseErr.Line, parseErr.Err)
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("reading csv: %w", err)
		}
		records = append(records, ImportRecord{
			Title:   field(row, HeaderAssignmentTitle),
			DueDate: field(row, HeaderDueDate),
			Notes:   field(row, HeaderNotes),
		})
	}

	return m.Import(ctx, tab, records)
}
