// Package ingest parses uploaded delimited files into the in-memory table
// model. CSV is the primary path; Excel workbooks are routed through
// excelize and normalized to the same shape.
package ingest

import (
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"disasterscope/domain/table"
	"disasterscope/internal/errors"
)

// Reader loads one uploaded file into a Table. Ingestion is all-or-nothing:
// any parse failure halts the run before a downstream stage sees the data.
type Reader struct{}

// NewReader creates a new file reader
func NewReader() *Reader {
	return &Reader{}
}

// Load routes by file extension and parses the payload. The header row is
// required; column types are inferred per column.
func (r *Reader) Load(filename string, src io.Reader) (table.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return r.loadCSV(src)
	case ".xlsx":
		return r.loadExcel(src)
	default:
		return table.Table{}, errors.InvalidInput("only .csv and .xlsx files are supported")
	}
}

// buildTable converts header tokens plus raw string records into a typed
// Table. Empty and whitespace-only tokens become null cells. A column is
// numeric iff every non-empty token parses as a float.
func buildTable(headers []string, records [][]string) (table.Table, error) {
	if len(headers) == 0 {
		return table.Table{}, errors.IngestFailed("file has no header row", nil)
	}

	cols := make([]table.Column, len(headers))
	for c, name := range headers {
		cells := make([]table.Cell, len(records))
		numeric := true
		sawValue := false
		for rIdx, record := range records {
			token := ""
			if c < len(record) {
				token = strings.TrimSpace(record[c])
			}
			if token == "" {
				cells[rIdx] = table.NullCell()
				continue
			}
			sawValue = true
			if v, err := strconv.ParseFloat(token, 64); err == nil {
				cells[rIdx] = table.NumCell(token, v)
			} else {
				numeric = false
				cells[rIdx] = table.TextCell(token)
			}
		}

		kind := table.KindText
		if numeric && sawValue {
			kind = table.KindNumeric
		} else {
			// Revisit cells parsed as numbers in a column that turned
			// out to be text: they keep their token as text
			for i := range cells {
				if !cells[i].Null {
					cells[i] = table.TextCell(cells[i].Text)
				}
			}
		}
		cols[c] = table.Column{Name: strings.TrimSpace(name), Kind: kind, Cells: cells}
	}

	t, err := table.New(cols...)
	if err != nil {
		return table.Table{}, errors.IngestFailed("file could not be assembled into a table", err)
	}
	return t, nil
}
