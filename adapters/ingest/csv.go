package ingest

import (
	"encoding/csv"
	"io"

	"disasterscope/domain/table"
	"disasterscope/internal/errors"
)

// loadCSV parses comma-separated text with a header row. Inconsistent
// column counts or undecodable input are fatal ingestion failures.
func (r *Reader) loadCSV(src io.Reader) (table.Table, error) {
	reader := csv.NewReader(src)

	records, err := reader.ReadAll()
	if err != nil {
		return table.Table{}, errors.IngestFailed("failed to read CSV data", err)
	}
	if len(records) == 0 {
		return table.Table{}, errors.IngestFailed("CSV file is empty", nil)
	}

	return buildTable(records[0], records[1:])
}
